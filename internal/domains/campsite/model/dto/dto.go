package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"campnest/internal/domains/campsite/model"
	"campnest/shared"
	gDto "campnest/shared/dto"
	gModel "campnest/shared/model"
	"campnest/shared/timezone"
)

type CreateCampsiteRequest struct {
	Name          string          `json:"name"            validate:"required,max=100"`
	Type          string          `json:"type"            validate:"required,oneof=tent rv cabin glamping"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"required"`
	Capacity      int             `json:"capacity"        validate:"required,gte=1"`
	Description   string          `json:"description"     validate:"required"`
	Amenities     []string        `json:"amenities"       validate:"omitempty,dive,max=50"`
	Status        string          `json:"status"          validate:"omitempty,oneof=active maintenance inactive"`
}

func (c *CreateCampsiteRequest) ToModel(user string) model.Campsite {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	return model.Campsite{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Type:          c.Type,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Description:   c.Description,
		Amenities:     pq.StringArray(c.Amenities),
		Status:        status,
		AverageRating: decimal.Zero,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCampsiteRequest struct {
	Name          string          `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Type          string          `db:"type"            json:"type"            validate:"omitempty,oneof=tent rv cabin glamping"`
	PricePerNight decimal.Decimal `db:"price_per_night" json:"price_per_night" validate:"omitempty"`
	Capacity      int             `db:"capacity"        json:"capacity"        validate:"omitempty,gte=1"`
	Description   string          `db:"description"     json:"description"     validate:"omitempty"`
	Amenities     pq.StringArray  `db:"amenities"       json:"amenities"       validate:"omitempty,dive,max=50"`
	Status        string          `db:"status"          json:"status"          validate:"omitempty,oneof=active maintenance inactive"`
}

// DateWindow is an optional availability window for campsite listings.
type DateWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

type AvailabilityResponse struct {
	CampsiteID string `json:"campsite_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Available  bool   `json:"available"`
}

type CampsiteResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Capacity      int             `json:"capacity"`
	Description   string          `json:"description"`
	Amenities     []string        `json:"amenities"`
	Status        string          `json:"status"`
	AverageRating decimal.Decimal `json:"average_rating"`
	gDto.Metadata
}

func (r *CampsiteResponse) FromModel(model model.Campsite) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Amenities = model.Amenities
	r.Status = model.Status
	r.AverageRating = model.AverageRating
	r.Metadata.FromModel(model.Metadata)
}

type GetCampsitesResponse struct {
	Campsites []CampsiteResponse `json:"campsites"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCampsitesResponse) FromModels(models []model.Campsite, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Campsites = make([]CampsiteResponse, len(models))
	for i, m := range models {
		r.Campsites[i].FromModel(m)
	}
}

type FeaturedCampsitesResponse struct {
	Campsites []CampsiteResponse `json:"campsites"`
}

func (r *FeaturedCampsitesResponse) FromModels(models []model.Campsite) {
	r.Campsites = make([]CampsiteResponse, len(models))
	for i, m := range models {
		r.Campsites[i].FromModel(m)
	}
}
