package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campnest/infras/otel/mocks"
	bookingMocks "campnest/internal/domains/booking/mocks"
	"campnest/internal/domains/booking/model"
	"campnest/internal/domains/booking/model/dto"
	"campnest/internal/handlers/booking"
	"campnest/shared/constant"
	gDto "campnest/shared/dto"
)

func newBookingRouter(service *bookingMocks.MockBookingService) *chi.Mux {
	handler := booking.New(service, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestBookingHandler_GetMyBookings_Sorting(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantParams gDto.QueryParams
	}{
		{
			name:   "defaults to most recent stay first",
			target: "/bookings/mybookings",
			wantParams: gDto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  model.FieldCheckIn,
				SortDir: gDto.SortDirDesc,
			},
		},
		{
			name:   "explicit sort wins",
			target: "/bookings/mybookings?sort_by=created_at&sort_dir=ASC",
			wantParams: gDto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "created_at",
				SortDir: gDto.SortDirAsc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := bookingMocks.NewMockBookingService(ctrl)
			router := newBookingRouter(service)

			service.EXPECT().
				GetAll(gomock.Any(), tt.wantParams, gomock.Any()).
				Return(dto.GetBookingsResponse{}, nil)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "user-1"))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestBookingHandler_GetMyBookings_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := bookingMocks.NewMockBookingService(ctrl)
	router := newBookingRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/bookings/mybookings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
