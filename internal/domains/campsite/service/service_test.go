package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campnest/config"
	"campnest/infras/otel/mocks"
	campsiteMocks "campnest/internal/domains/campsite/mocks"
	"campnest/internal/domains/campsite/model"
	"campnest/internal/domains/campsite/model/dto"
	"campnest/internal/domains/campsite/service"
	cacheMocks "campnest/shared/cache/mocks"
	gDto "campnest/shared/dto"
	"campnest/shared/failure"
)

func newCampsiteService(ctrl *gomock.Controller) (service.Campsite, *campsiteMocks.MockCampsite, *cacheMocks.MockRedisCache) {
	mockRepo := campsiteMocks.NewMockCampsite(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

// allowInvalidation tolerates the asynchronous cache invalidation a
// successful write kicks off.
func allowInvalidation(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func riversideCampsite() model.Campsite {
	return model.Campsite{
		ID:            "campsite-1",
		Name:          "Riverside Pines",
		Type:          "tent",
		PricePerNight: decimal.NewFromInt(50),
		Capacity:      4,
		Description:   "Shaded pitches along the river bend.",
		Amenities:     []string{"fire_pit", "potable_water"},
		Status:        model.StatusActive,
		AverageRating: decimal.NewFromFloat(4.5),
	}
}

func TestCampsiteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCampsiteService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateCampsiteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create",
			req: dto.CreateCampsiteRequest{
				Name:          "Riverside Pines",
				Type:          "tent",
				PricePerNight: decimal.NewFromInt(50),
				Capacity:      4,
				Description:   "Shaded pitches along the river bend.",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation(mockCache)
			},
			wantErr: false,
		},
		{
			name: "non positive nightly price",
			req: dto.CreateCampsiteRequest{
				Name:          "Free Meadow",
				Type:          "tent",
				PricePerNight: decimal.Zero,
				Capacity:      2,
				Description:   "Too good to be true.",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreateCampsiteRequest{
				Name:          "Riverside Pines",
				Type:          "tent",
				PricePerNight: decimal.NewFromInt(50),
				Capacity:      4,
				Description:   "Shaded pitches along the river bend.",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

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

func TestCampsiteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCampsiteService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls back to repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(riversideCampsite(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "campsite not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Campsite{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "campsite-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Riverside Pines", res.Name)
			assert.True(t, res.PricePerNight.Equal(decimal.NewFromInt(50)))
		})
	}
}

func TestCampsiteService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCampsiteService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Campsite{riversideCampsite()}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), params, filter, nil)

	assert.NoError(t, err)
	assert.Len(t, res.Campsites, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestCampsiteService_GetAllWithDateWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCampsiteService(ctrl)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	window := &dto.DateWindow{
		CheckIn:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
	}

	// Availability windows bypass the cache entirely.
	mockRepo.EXPECT().
		GetAvailable(gomock.Any(), params, filter, window.CheckIn, window.CheckOut).
		Return([]model.Campsite{riversideCampsite()}, nil)

	res, err := svc.GetAll(context.Background(), params, filter, window)

	assert.NoError(t, err)
	assert.Len(t, res.Campsites, 1)
}

func TestCampsiteService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCampsiteService(ctrl)

	window := dto.DateWindow{
		CheckIn:  time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantAvailable bool
	}{
		{
			name: "free for the window",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(riversideCampsite(), nil)

				mockRepo.EXPECT().
					GetAvailable(gomock.Any(), gomock.Any(), gomock.Any(), window.CheckIn, window.CheckOut).
					Return([]model.Campsite{riversideCampsite()}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "conflicting booking in the window",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(riversideCampsite(), nil)

				mockRepo.EXPECT().
					GetAvailable(gomock.Any(), gomock.Any(), gomock.Any(), window.CheckIn, window.CheckOut).
					Return(nil, nil)
			},
			wantAvailable: false,
		},
		{
			name: "campsite under maintenance is never bookable",
			setupMock: func() {
				maintained := riversideCampsite()
				maintained.Status = model.StatusMaintenance

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(maintained, nil)
			},
			wantAvailable: false,
		},
		{
			name: "campsite not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Campsite{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Availability(context.Background(), "campsite-1", window)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, "2026-07-10", res.CheckIn)
			assert.Equal(t, "2026-07-13", res.CheckOut)
		})
	}
}

func TestCampsiteService_Featured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newCampsiteService(ctrl)

	mockRepo.EXPECT().
		Featured(gomock.Any(), gomock.Any()).
		Return([]model.Campsite{riversideCampsite()}, nil)

	res, err := svc.Featured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Campsites, 1)
	assert.Equal(t, "campsite-1", res.Campsites[0].ID)
}

func TestCampsiteService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCampsiteService(ctrl)

	req := dto.UpdateCampsiteRequest{Status: model.StatusMaintenance}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation(mockCache)
			},
			wantErr: false,
		},
		{
			name: "campsite not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), req, "campsite-1")

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

func TestCampsiteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newCampsiteService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation(mockCache)
			},
			wantErr: false,
		},
		{
			name: "campsite not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "campsite-1")

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
