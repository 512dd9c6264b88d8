package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campnest/config"
	kafkaMocks "campnest/infras/kafka/mocks"
	"campnest/infras/otel/mocks"
	bookingMocks "campnest/internal/domains/booking/mocks"
	bookingModel "campnest/internal/domains/booking/model"
	reviewMocks "campnest/internal/domains/review/mocks"
	"campnest/internal/domains/review/model"
	"campnest/internal/domains/review/model/dto"
	"campnest/internal/domains/review/service"
	cacheMocks "campnest/shared/cache/mocks"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
)

type reviewMockSet struct {
	repo     *reviewMocks.MockReview
	booking  *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	producer *kafkaMocks.MockClient
}

func newReviewService(ctrl *gomock.Controller) (service.Review, reviewMockSet) {
	m := reviewMockSet{
		repo:     reviewMocks.NewMockReview(ctrl),
		booking:  bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		producer: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.booking, cfg, m.cache, mocks.NewOtel(), m.producer)

	return svc, m
}

// allowAfterWrite tolerates the asynchronous invalidation a successful write
// kicks off.
func allowAfterWrite(m reviewMockSet) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestReviewService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReviewService(ctrl)

	completedBooking := bookingModel.Booking{
		ID:         "booking-1",
		UserID:     "user-1",
		CampsiteID: "campsite-1",
		Status:     bookingModel.StatusCompleted,
	}

	req := dto.CreateReviewRequest{
		BookingID: "booking-1",
		Rating:    5,
		Title:     "  A quiet weekend  ",
		Comment:   "Wonderful pitch by the river.",
	}

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "successful review",
			userID: "user-1",
			setupMock: func() {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					InsertAndRefreshRating(gomock.Any(), gomock.Any()).
					Return(nil)

				allowAfterWrite(m)
			},
			wantErr: false,
		},
		{
			name:   "booking not found",
			userID: "user-1",
			setupMock: func() {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "not the booking owner",
			userID: "user-2",
			setupMock: func() {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "stay not completed yet",
			userID: "user-1",
			setupMock: func() {
				upcoming := completedBooking
				upcoming.Status = bookingModel.StatusConfirmed

				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcoming, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "booking already reviewed",
			userID: "user-1",
			setupMock: func() {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedBooking, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name:   "repository error",
			userID: "user-1",
			setupMock: func() {
				m.booking.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "campsite-1", res.CampsiteID)
			assert.Equal(t, 5, res.Rating)
			assert.Equal(t, "A quiet weekend", res.Title)
		})
	}
}

func TestReviewService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReviewService(ctrl)

	reviews := []model.Review{
		{ID: "review-1", CampsiteID: "campsite-1", Rating: 4},
		{ID: "review-2", CampsiteID: "campsite-1", Rating: 5},
	}

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reviews, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	res, err := svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Reviews, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReviewService(ctrl)

	review := model.Review{
		ID:         "review-1",
		BookingID:  "booking-1",
		CampsiteID: "campsite-1",
		Rating:     2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(review, nil)

				m.repo.EXPECT().
					DeleteAndRefreshRating(gomock.Any(), "review-1", "campsite-1").
					Return(nil)

				allowAfterWrite(m)
			},
			wantErr: false,
		},
		{
			name: "review not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Review{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "review-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
