package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"campnest/internal/domains/addon/model"
	"campnest/shared"
	gDto "campnest/shared/dto"
	gModel "campnest/shared/model"
	"campnest/shared/timezone"
)

type CreateAddonRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Category    string          `json:"category"    validate:"required,oneof=gear_rental activity"`
	Price       decimal.Decimal `json:"price"       validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=255"`
	Status      string          `json:"status"      validate:"omitempty,oneof=active inactive"`
}

func (c *CreateAddonRequest) ToModel(user string) model.Addon {
	status := c.Status
	if status == "" {
		status = model.StatusActive
	}

	return model.Addon{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Category:    c.Category,
		Price:       c.Price,
		Description: c.Description,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAddonRequest struct {
	Name        string          `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Category    string          `db:"category"    json:"category"    validate:"omitempty,oneof=gear_rental activity"`
	Price       decimal.Decimal `db:"price"       json:"price"       validate:"omitempty"`
	Description string          `db:"description" json:"description" validate:"omitempty,max=255"`
	Status      string          `db:"status"      json:"status"      validate:"omitempty,oneof=active inactive"`
}

type AddonResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	gDto.Metadata
}

func (r *AddonResponse) FromModel(model model.Addon) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Price = model.Price
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetAddonsResponse struct {
	Addons    []AddonResponse `json:"addons"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAddonsResponse) FromModels(models []model.Addon, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Addons = make([]AddonResponse, len(models))
	for i, m := range models {
		r.Addons[i].FromModel(m)
	}
}
