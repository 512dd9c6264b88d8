package model

import (
	"time"

	"github.com/shopspring/decimal"

	"campnest/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldCampsiteID = "campsite_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"

	AddonTableName  = "booking_addons"
	AddonEntityName = "booking_addon"

	FieldBookingID = "booking_id"
	FieldAddonID   = "addon_id"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID           string          `db:"id"`
	UserID       string          `db:"user_id"`
	CampsiteID   string          `db:"campsite_id"`
	CheckIn      time.Time       `db:"check_in"`
	CheckOut     time.Time       `db:"check_out"`
	TotalPrice   decimal.Decimal `db:"total_price"`
	Status       string          `db:"status"`
	CampsiteName string          `db:"campsite_name" table:"campsites" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN campsites ON campsites.id = bookings.campsite_id"
}

type BookingAddon struct {
	ID        string          `db:"id"`
	BookingID string          `db:"booking_id"`
	AddonID   string          `db:"addon_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	AddonName string          `db:"addon_name" table:"addons" column:"name"`
	model.Metadata
}

func (BookingAddon) GetJoinQuery() string {
	return "LEFT JOIN addons ON addons.id = booking_addons.addon_id"
}
