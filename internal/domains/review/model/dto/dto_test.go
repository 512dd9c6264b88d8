package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"campnest/internal/domains/review/model/dto"
	"campnest/shared/validator"
)

func TestCreateReviewRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 5, "title": "A quiet weekend", "comment": "Wonderful pitch by the river."}`,
			wantErr: false,
		},
		{
			name:    "missing title",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 5, "comment": "Wonderful pitch by the river."}`,
			wantErr: true,
		},
		{
			name:    "whitespace only title",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 5, "title": "   ", "comment": "Wonderful pitch by the river."}`,
			wantErr: true,
		},
		{
			name:    "missing comment",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 5, "title": "A quiet weekend"}`,
			wantErr: true,
		},
		{
			name:    "whitespace only comment",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 5, "title": "A quiet weekend", "comment": "   "}`,
			wantErr: true,
		},
		{
			name:    "rating out of range",
			body:    `{"booking_id": "5f3a7c2e-8a1b-4f6d-9c0e-2b7d4a1e8f3c", "rating": 6, "title": "A quiet weekend", "comment": "Wonderful pitch by the river."}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateReviewRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateReviewRequestToModel(t *testing.T) {
	req := dto.CreateReviewRequest{
		BookingID: "booking-1",
		Rating:    4,
		Title:     "  A quiet weekend  ",
		Comment:   "  Wonderful pitch by the river.  ",
	}

	review := req.ToModel("user-1", "campsite-1")

	assert.Equal(t, "booking-1", review.BookingID)
	assert.Equal(t, "user-1", review.UserID)
	assert.Equal(t, "campsite-1", review.CampsiteID)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, "A quiet weekend", review.Title)
	assert.Equal(t, "Wonderful pitch by the river.", review.Comment)
	assert.Equal(t, "user-1", review.CreatedBy)
	assert.NotEmpty(t, review.ID)
}
