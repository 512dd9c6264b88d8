package model

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"campnest/shared/model"
)

const (
	TableName  = "campsites"
	EntityName = "campsite"

	FieldID            = "id"
	FieldName          = "name"
	FieldType          = "type"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldDescription   = "description"
	FieldAmenities     = "amenities"
	FieldStatus        = "status"
	FieldAverageRating = "average_rating"
)

const (
	TypeTent     = "tent"
	TypeRV       = "rv"
	TypeCabin    = "cabin"
	TypeGlamping = "glamping"
)

const (
	StatusActive      = "active"
	StatusMaintenance = "maintenance"
	StatusInactive    = "inactive"
)

type Campsite struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Type          string          `db:"type"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Capacity      int             `db:"capacity"`
	Description   string          `db:"description"`
	Amenities     pq.StringArray  `db:"amenities"`
	Status        string          `db:"status"`
	AverageRating decimal.Decimal `db:"average_rating"`
	model.Metadata
}
