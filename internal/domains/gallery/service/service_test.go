package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campnest/config"
	"campnest/infras/otel/mocks"
	s3Mocks "campnest/infras/s3/mocks"
	campsiteMocks "campnest/internal/domains/campsite/mocks"
	galleryMocks "campnest/internal/domains/gallery/mocks"
	"campnest/internal/domains/gallery/model"
	"campnest/internal/domains/gallery/model/dto"
	"campnest/internal/domains/gallery/service"
	cacheMocks "campnest/shared/cache/mocks"
	"campnest/shared/failure"
)

type galleryMockSet struct {
	repo     *galleryMocks.MockGallery
	campsite *campsiteMocks.MockCampsite
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newGalleryService(ctrl *gomock.Controller) (service.Gallery, galleryMockSet) {
	m := galleryMockSet{
		repo:     galleryMocks.NewMockGallery(ctrl),
		campsite: campsiteMocks.NewMockCampsite(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "campnest-media"

	svc := service.New(m.repo, m.campsite, cfg, m.cache, mocks.NewOtel(), m.s3)

	return svc, m
}

// allowInvalidation tolerates the asynchronous cache invalidation a
// successful write kicks off.
func allowInvalidation(m galleryMockSet) {
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestGalleryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGalleryService(ctrl)

	req := dto.CreateGalleryRequest{
		CampsiteID:  "campsite-1",
		Title:       "Summer at the river bend",
		Description: "Shots from the July season.",
		Images:      []string{"https://cdn.example.com/galleries/river-1.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create",
			setupMock: func() {
				m.campsite.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation(m)
			},
			wantErr: false,
		},
		{
			name: "campsite not found",
			setupMock: func() {
				m.campsite.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.campsite.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), req)

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

func TestGalleryService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGalleryService(ctrl)

	gallery := model.Gallery{
		ID:         "gallery-1",
		CampsiteID: "campsite-1",
		Title:      "Summer at the river bend",
		Images:     []string{"https://cdn.example.com/galleries/river-1.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss falls back to repository",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gallery, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gallery not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gallery{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "gallery-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "campsite-1", res.CampsiteID)
			assert.Len(t, res.Images, 1)
		})
	}
}

func TestGalleryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGalleryService(ctrl)

	gallery := model.Gallery{
		ID:         "gallery-1",
		CampsiteID: "campsite-1",
		Images:     []string{"https://cdn.example.com/galleries/river-1.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful delete cleans up stored images",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(gallery, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation(m)

				m.s3.EXPECT().
					GetObjectNameFromURL("campnest-media", gallery.Images[0]).
					Return("river-1.jpg").
					AnyTimes()

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "campnest-media", gomock.Any(), "river-1.jpg").
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gallery not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gallery{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "gallery-1")

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

func TestGalleryService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGalleryService(ctrl)

	req := dto.UploadImageRequest{
		Image: &multipart.FileHeader{Filename: "river-2.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful upload",
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "campnest-media", gomock.Any(), gomock.Any(), req.Image, "river-2.jpg").
					Return("https://cdn.example.com/galleries/river-2.jpg", nil)
			},
			wantErr: false,
		},
		{
			name: "upload failure",
			setupMock: func() {
				m.s3.EXPECT().
					UploadFile(gomock.Any(), "campnest-media", gomock.Any(), gomock.Any(), req.Image, "river-2.jpg").
					Return("", errors.New("s3 unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UploadImage(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "https://cdn.example.com/galleries/river-2.jpg", res.URL)
			assert.Equal(t, "river-2.jpg", res.FileName)
		})
	}
}

func TestGalleryService_DeleteImagesFromS3(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newGalleryService(ctrl)

	req := dto.DeleteImagesRequest{
		ImageURLs: []string{
			"https://cdn.example.com/galleries/river-1.jpg",
			"https://cdn.example.com/galleries/river-2.jpg",
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "all images deleted",
			setupMock: func() {
				m.s3.EXPECT().
					GetObjectNameFromURL("campnest-media", gomock.Any()).
					Return("river.jpg").
					Times(2)

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "campnest-media", gomock.Any(), "river.jpg").
					Return(nil).
					Times(2)
			},
			wantErr: false,
		},
		{
			name: "unresolvable URLs are skipped",
			setupMock: func() {
				m.s3.EXPECT().
					GetObjectNameFromURL("campnest-media", gomock.Any()).
					Return("").
					Times(2)
			},
			wantErr: false,
		},
		{
			name: "delete failure is reported",
			setupMock: func() {
				m.s3.EXPECT().
					GetObjectNameFromURL("campnest-media", gomock.Any()).
					Return("river.jpg").
					Times(2)

				m.s3.EXPECT().
					DeleteFile(gomock.Any(), "campnest-media", gomock.Any(), "river.jpg").
					Return(errors.New("s3 unavailable")).
					Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.DeleteImagesFromS3(context.Background(), req)

			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrDeleteImagesFromS3)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
