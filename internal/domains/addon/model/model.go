package model

import (
	"github.com/shopspring/decimal"

	"campnest/shared/model"
)

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	CategoryGearRental = "gear_rental"
	CategoryActivity   = "activity"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Addon is a bookable extra such as rented gear or a guided activity.
type Addon struct {
	ID          string          `db:"id"`
	Name        string          `db:"name"`
	Category    string          `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Description string          `db:"description"`
	Status      string          `db:"status"`
	model.Metadata
}
