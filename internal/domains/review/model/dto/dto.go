package dto

import (
	"strings"

	"github.com/google/uuid"

	"campnest/internal/domains/review/model"
	"campnest/shared"
	gDto "campnest/shared/dto"
	gModel "campnest/shared/model"
	"campnest/shared/timezone"
)

type CreateReviewRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Rating    int    `json:"rating"     validate:"required,gte=1,lte=5"`
	Title     string `json:"title"      validate:"required,notblank,max=100"`
	Comment   string `json:"comment"    validate:"required,notblank,max=2000"`
}

func (r *CreateReviewRequest) ToModel(userID, campsiteID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		BookingID:  r.BookingID,
		UserID:     userID,
		CampsiteID: campsiteID,
		Rating:     r.Rating,
		Title:      strings.TrimSpace(r.Title),
		Comment:    strings.TrimSpace(r.Comment),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ReviewResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	CampsiteID   string `json:"campsite_id"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Comment      string `json:"comment"`
	ReviewerName string `json:"reviewer_name"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.CampsiteID = model.CampsiteID
	r.Rating = model.Rating
	r.Title = model.Title
	r.Comment = model.Comment
	r.ReviewerName = model.ReviewerName
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		r.Reviews[i].FromModel(m)
	}
}
