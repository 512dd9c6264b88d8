package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"campnest/internal/domains/booking/model"
	"campnest/internal/domains/booking/service"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:     "disjoint ranges",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-03"),
			bStart:   day("2026-06-10"),
			bEnd:     day("2026-06-12"),
			expected: false,
		},
		{
			name:     "identical ranges",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-03"),
			bStart:   day("2026-06-01"),
			bEnd:     day("2026-06-03"),
			expected: true,
		},
		{
			name:     "partial overlap",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-05"),
			bStart:   day("2026-06-04"),
			bEnd:     day("2026-06-08"),
			expected: true,
		},
		{
			name:     "contained range",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-10"),
			bStart:   day("2026-06-03"),
			bEnd:     day("2026-06-05"),
			expected: true,
		},
		{
			name:     "back to back stays share the turnover day",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-03"),
			bStart:   day("2026-06-03"),
			bEnd:     day("2026-06-05"),
			expected: true,
		},
		{
			name:     "adjacent but not touching",
			aStart:   day("2026-06-01"),
			aEnd:     day("2026-06-03"),
			bStart:   day("2026-06-04"),
			bEnd:     day("2026-06-06"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.expected, result)

			// Overlap is symmetric.
			mirrored := service.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd)
			assert.Equal(t, tt.expected, mirrored)
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "single night",
			checkIn:  day("2026-06-01"),
			checkOut: day("2026-06-02"),
			expected: 1,
		},
		{
			name:     "week long stay",
			checkIn:  day("2026-06-01"),
			checkOut: day("2026-06-08"),
			expected: 7,
		},
		{
			name:     "partial day rounds up",
			checkIn:  day("2026-06-01"),
			checkOut: day("2026-06-02").Add(6 * time.Hour),
			expected: 2,
		},
		{
			name:     "same instant floors at one night",
			checkIn:  day("2026-06-01"),
			checkOut: day("2026-06-01"),
			expected: 1,
		},
		{
			name:     "inverted window floors at one night",
			checkIn:  day("2026-06-02"),
			checkOut: day("2026-06-01"),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	nightly := decimal.NewFromInt(50)

	tests := []struct {
		name     string
		nights   int
		addons   []model.BookingAddon
		expected string
	}{
		{
			name:     "no addons",
			nights:   3,
			addons:   nil,
			expected: "150",
		},
		{
			name:   "addon line totals are added as frozen amounts",
			nights: 2,
			addons: []model.BookingAddon{
				{Quantity: 2, Price: decimal.NewFromInt(30)},
				{Quantity: 1, Price: decimal.NewFromFloat(12.5)},
			},
			expected: "142.5",
		},
		{
			name:   "non positive quantities are skipped",
			nights: 1,
			addons: []model.BookingAddon{
				{Quantity: 0, Price: decimal.NewFromInt(30)},
				{Quantity: -1, Price: decimal.NewFromInt(30)},
				{Quantity: 1, Price: decimal.NewFromInt(10)},
			},
			expected: "60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := service.ComputeTotal(nightly, tt.nights, tt.addons)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, total.String())
		})
	}
}
