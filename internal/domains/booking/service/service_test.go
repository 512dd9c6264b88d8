package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campnest/config"
	kafkaMocks "campnest/infras/kafka/mocks"
	mailerMocks "campnest/infras/mailer/mocks"
	"campnest/infras/otel/mocks"
	addonMocks "campnest/internal/domains/addon/mocks"
	addonModel "campnest/internal/domains/addon/model"
	bookingMocks "campnest/internal/domains/booking/mocks"
	"campnest/internal/domains/booking/model"
	"campnest/internal/domains/booking/model/dto"
	"campnest/internal/domains/booking/repository"
	"campnest/internal/domains/booking/service"
	campsiteMocks "campnest/internal/domains/campsite/mocks"
	campsiteModel "campnest/internal/domains/campsite/model"
	userMocks "campnest/internal/domains/user/mocks"
	userModel "campnest/internal/domains/user/model"
	cacheMocks "campnest/shared/cache/mocks"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
)

type bookingMockSet struct {
	repo     *bookingMocks.MockBooking
	campsite *campsiteMocks.MockCampsite
	addon    *addonMocks.MockAddon
	user     *userMocks.MockUser
	cache    *cacheMocks.MockRedisCache
	mailer   *mailerMocks.MockMailer
	producer *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	m := bookingMockSet{
		repo:     bookingMocks.NewMockBooking(ctrl),
		campsite: campsiteMocks.NewMockCampsite(ctrl),
		addon:    addonMocks.NewMockAddon(ctrl),
		user:     userMocks.NewMockUser(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		producer: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.campsite, m.addon, m.user, cfg, m.cache, mocks.NewOtel(), m.mailer, m.producer)

	return svc, m
}

// allowAfterCreate tolerates the asynchronous confirmation work that a
// successful creation kicks off.
func allowAfterCreate(m bookingMockSet) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil).AnyTimes()
	m.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil).AnyTimes()
	m.mailer.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.producer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	activeCampsite := campsiteModel.Campsite{
		ID:            "campsite-1",
		Name:          "Pine Hollow",
		Status:        campsiteModel.StatusActive,
		PricePerNight: decimal.NewFromInt(50),
	}

	activeAddon := addonModel.Addon{
		ID:     "addon-1",
		Name:   "Firewood Bundle",
		Status: addonModel.StatusActive,
		Price:  decimal.NewFromInt(15),
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking with addons",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
				Addons:     []dto.BookingAddonRequest{{AddonID: "addon-1", Quantity: 2}},
			},
			setupMock: func() {
				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCampsite, nil)

				m.repo.EXPECT().
					IsAvailable(gomock.Any(), "campsite-1", gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.addon.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeAddon, nil)

				m.repo.EXPECT().
					CreateWithAddons(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowAfterCreate(m)
			},
			wantErr: false,
		},
		{
			name: "invalid check_in",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "not-a-date",
				CheckOut:   "2026-07-04",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check_out before check_in",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-04",
				CheckOut:   "2026-07-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "campsite not found",
			req: dto.CreateBookingRequest{
				CampsiteID: "missing",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
			},
			setupMock: func() {
				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(campsiteModel.Campsite{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "campsite not open for booking",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
			},
			setupMock: func() {
				closed := activeCampsite
				closed.Status = campsiteModel.StatusInactive

				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(closed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "dates not available",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
			},
			setupMock: func() {
				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCampsite, nil)

				m.repo.EXPECT().
					IsAvailable(gomock.Any(), "campsite-1", gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "inactive addon rejects the booking",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
				Addons:     []dto.BookingAddonRequest{{AddonID: "addon-1", Quantity: 1}},
			},
			setupMock: func() {
				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCampsite, nil)

				m.repo.EXPECT().
					IsAvailable(gomock.Any(), "campsite-1", gomock.Any(), gomock.Any()).
					Return(true, nil)

				retired := activeAddon
				retired.Status = addonModel.StatusInactive

				m.addon.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(retired, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "lost the race for the date window",
			req: dto.CreateBookingRequest{
				CampsiteID: "campsite-1",
				CheckIn:    "2026-07-01",
				CheckOut:   "2026-07-04",
			},
			setupMock: func() {
				m.campsite.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeCampsite, nil)

				m.repo.EXPECT().
					IsAvailable(gomock.Any(), "campsite-1", gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					CreateWithAddons(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrDateConflict)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Pine Hollow", res.CampsiteName)
			assert.Equal(t, model.StatusPending, res.Status)

			// 3 nights at 50 plus two firewood bundles at 15 each.
			assert.True(t, res.TotalPrice.Equal(decimal.NewFromInt(180)),
				"expected total 180, got %s", res.TotalPrice.String())
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	booking := model.Booking{
		ID:     "booking-1",
		UserID: "user-1",
		Status: model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		userID    string
		role      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner can view",
			userID: "user-1",
			role:   "client",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.repo.EXPECT().
					GetAddons(gomock.Any(), gomock.Any()).
					Return([]model.BookingAddon{}, nil)
			},
			wantErr: false,
		},
		{
			name:   "admin can view any booking",
			userID: "admin-1",
			role:   "admin",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.repo.EXPECT().
					GetAddons(gomock.Any(), gomock.Any()).
					Return([]model.BookingAddon{}, nil)
			},
			wantErr: false,
		},
		{
			name:   "other client is rejected",
			userID: "user-2",
			role:   "client",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "booking not found",
			userID: "user-1",
			role:   "client",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "booking-1", tt.userID, tt.role)

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

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	pending := model.Booking{
		ID:     "booking-1",
		UserID: "user-1",
		Status: model.StatusPending,
	}

	tests := []struct {
		name      string
		userID    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "owner cancels a pending booking",
			userID: "user-1",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "non owner cannot cancel",
			userID: "user-2",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:   "completed booking cannot be cancelled",
			userID: "user-1",
			setupMock: func() {
				done := pending
				done.Status = model.StatusCompleted

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(done, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "booking not found",
			userID: "user-1",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(context.Background(), "booking-1", tt.userID)

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

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful status update",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}
			err := svc.UpdateStatus(context.Background(), req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.repo.EXPECT().
		Count(gomock.Any(), gDto.FilterGroup{}).
		Return(42, nil)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(7, nil)

	m.campsite.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(12, nil)

	m.repo.EXPECT().
		Revenue(gomock.Any()).
		Return(decimal.NewFromInt(12345), nil)

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 42, res.TotalBookings)
	assert.Equal(t, 7, res.PendingBookings)
	assert.Equal(t, 12, res.ActiveCampsites)
	assert.True(t, res.TotalRevenue.Equal(decimal.NewFromInt(12345)))
}

func TestBookingService_SendReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	booking := model.Booking{
		ID:           "booking-1",
		UserID:       "user-1",
		CampsiteName: "Pine Hollow",
		TotalPrice:   decimal.NewFromInt(150),
	}

	guest := userModel.User{
		ID:        "user-1",
		Email:     "guest@example.com",
		FirstName: "Alex",
		LastName:  "Walker",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "reminder sent",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.user.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guest, nil)

				m.mailer.EXPECT().
					SendBookingReminder(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "mailer failure surfaces",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				m.user.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guest, nil)

				m.mailer.EXPECT().
					SendBookingReminder(gomock.Any(), gomock.Any()).
					Return(errors.New("smtp unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.SendReminder(context.Background(), "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
