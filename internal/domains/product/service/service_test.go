package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wbrent/config"
	"wbrent/infras/otel/mocks"
	s3Mocks "wbrent/infras/s3/mocks"
	productMocks "wbrent/internal/domains/product/mocks"
	"wbrent/internal/domains/product/model"
	"wbrent/internal/domains/product/model/dto"
	"wbrent/internal/domains/product/service"
	cacheMocks "wbrent/shared/cache/mocks"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"
)

type fixture struct {
	repo      *productMocks.MockProduct
	imageRepo *productMocks.MockImage
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
	svc       service.Product
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      productMocks.NewMockProduct(ctrl),
		imageRepo: productMocks.NewMockImage(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.imageRepo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

var drill = model.Product{
	ID:               "wiertarka-udarowa",
	CategoryID:       "elektronarzedzia",
	Name:             "Wiertarka udarowa",
	PricePerDay:      4500,
	PriceNextDay:     4500,
	PriceWeekend:     15000,
	TransportPrice:   2500,
	WeekendPickupFee: 3000,
	Available:        true,
}

func TestProductService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Product{drill}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.TotalData)
			assert.Equal(t, 1, result.TotalPage)
			assert.Equal(t, drill.ID, result.Products[0].ID)
			assert.Equal(t, int64(15000), result.Products[0].PriceWeekend)
		})
	}
}

func TestProductService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "product:get:wiertarka-udarowa", gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantID: drill.ID,
		},
		{
			name: "product not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Product{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Get(context.Background(), drill.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, result.ID)
		})
	}
}

func TestProductService_GetImages(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "product:images:wiertarka-udarowa", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.imageRepo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: "product_images.position", SortDir: gDto.SortDirAsc}, gomock.Any()).
		Return([]model.Image{{ID: "img-1", ProductID: drill.ID, URL: "https://cdn/a.jpg", Position: 0}}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	result, err := f.svc.GetImages(context.Background(), drill.ID)

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Len(t, result.Images, 1)
	assert.Equal(t, "https://cdn/a.jpg", result.Images[0].URL)
}

func TestProductService_UploadImage(t *testing.T) {
	req := dto.UploadImageRequest{
		Image: &multipart.FileHeader{Filename: "front.jpg"},
		Alt:   "Front",
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upload",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), drill.ID, gomock.Any(), gomock.Any(), req.Image).
					Return("https://cdn/products/wiertarka-udarowa/x.jpg", nil)
				f.imageRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), "product:images:wiertarka-udarowa").Return(nil).AnyTimes()
			},
		},
		{
			name: "unknown product",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "upload error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 upload error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
		{
			name: "insert error removes the uploaded object",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn/products/wiertarka-udarowa/x.jpg", nil)
				f.imageRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.s3.EXPECT().ObjectKeyFromURL("https://cdn/products/wiertarka-udarowa/x.jpg").
					Return("products/wiertarka-udarowa/x.jpg")
				f.s3.EXPECT().DeleteFile(gomock.Any(), "products/wiertarka-udarowa/x.jpg").Return(nil)
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
			result, err := f.svc.UploadImage(ctx, drill.ID, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, "Front", result.Alt)
			assert.Equal(t, drill.ID, result.ProductID)
		})
	}
}

func TestProductService_DeleteImage(t *testing.T) {
	image := model.Image{ID: "img-1", ProductID: drill.ID, URL: "https://cdn/products/wiertarka-udarowa/x.jpg"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(f fixture) {
				f.imageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(image, nil)
				f.imageRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				f.s3.EXPECT().ObjectKeyFromURL(image.URL).Return("products/wiertarka-udarowa/x.jpg").AnyTimes()
				f.s3.EXPECT().DeleteFile(gomock.Any(), "products/wiertarka-udarowa/x.jpg").Return(nil).AnyTimes()
			},
		},
		{
			name: "image not found",
			setupMock: func(f fixture) {
				f.imageRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.DeleteImage(context.Background(), drill.ID, image.ID)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
