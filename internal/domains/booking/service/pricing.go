package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"campnest/internal/domains/booking/model"
)

const hoursPerNight = 24

// Overlaps reports whether two date ranges share at least one day. Bounds are
// inclusive, so a stay ending on the day another begins still overlaps.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Nights converts a stay window to a billable night count. Partial days round
// up. Callers reject windows where checkOut is not after checkIn before
// pricing; the floor keeps the count at one night should such a window reach
// this point anyway.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()

	nights := int(math.Ceil(hours / hoursPerNight))
	if nights < 1 {
		nights = 1
	}

	return nights
}

// ComputeTotal sums the nightly rate over the stay plus the frozen add-on
// line totals. Lines with a non-positive quantity are skipped.
func ComputeTotal(pricePerNight decimal.Decimal, nights int, addons []model.BookingAddon) decimal.Decimal {
	total := pricePerNight.Mul(decimal.NewFromInt(int64(nights)))

	for _, addon := range addons {
		if addon.Quantity <= 0 {
			continue
		}

		total = total.Add(addon.Price)
	}

	return total
}
