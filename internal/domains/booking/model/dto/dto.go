package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campnest/internal/domains/booking/model"
	"campnest/shared"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
	gModel "campnest/shared/model"
	"campnest/shared/timezone"
)

type BookingAddonRequest struct {
	AddonID  string `json:"addon_id" validate:"required,uuid"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type CreateBookingRequest struct {
	CampsiteID string                `json:"campsite_id" validate:"required,uuid"`
	CheckIn    string                `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string                `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Addons     []BookingAddonRequest `json:"addons"      validate:"omitempty,dive"`
}

func (r *CreateBookingRequest) ToModel(userID string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		CampsiteID: r.CampsiteID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: decimal.Zero,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingAddonResponse struct {
	ID       string          `json:"id"`
	AddonID  string          `json:"addon_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func (r *BookingAddonResponse) FromModel(model model.BookingAddon) {
	r.ID = model.ID
	r.AddonID = model.AddonID
	r.Name = model.AddonName
	r.Quantity = model.Quantity
	r.Price = model.Price
}

type BookingResponse struct {
	ID           string                 `json:"id"`
	CampsiteID   string                 `json:"campsite_id"`
	CampsiteName string                 `json:"campsite_name"`
	CheckIn      string                 `json:"check_in"`
	CheckOut     string                 `json:"check_out"`
	TotalPrice   decimal.Decimal        `json:"total_price"`
	Status       string                 `json:"status"`
	Addons       []BookingAddonResponse `json:"addons,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CampsiteID = model.CampsiteID
	r.CampsiteName = model.CampsiteName
	r.CheckIn = timezone.Format(model.CheckIn, constant.BookingDateFmt)
	r.CheckOut = timezone.Format(model.CheckOut, constant.BookingDateFmt)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) WithAddons(models []model.BookingAddon) {
	r.Addons = make([]BookingAddonResponse, len(models))
	for i, m := range models {
		r.Addons[i].FromModel(m)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

type BookingStatsResponse struct {
	TotalBookings   int             `json:"total_bookings"`
	PendingBookings int             `json:"pending_bookings"`
	ActiveCampsites int             `json:"active_campsites"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}
