package service_test

import (
	"context"
	"errors"
	"testing"
	"time"
	"wbrent/config"
	"wbrent/infras/geocoder"
	geocoderMocks "wbrent/infras/geocoder/mocks"
	"wbrent/infras/otel/mocks"
	"wbrent/internal/domains/distance/model"
	"wbrent/internal/domains/distance/service"
	cacheMocks "wbrent/shared/cache/mocks"
	"wbrent/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Delivery.DepotLatitude = 50.0412
	cfg.Delivery.DepotLongitude = 21.9991
	cfg.Delivery.MaxRadiusKm = 30
	cfg.Geocoder.CacheTTL = 3600

	return cfg
}

func TestGate_Check(t *testing.T) {
	cacheMiss := errors.New("redis: nil")

	tests := []struct {
		name       string
		city       string
		address    string
		setupMock  func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache)
		wantStatus model.Status
		wantKm     *float64
		wantErr    bool
	}{
		{
			name: "nearby city is deliverable",
			city: "Rzeszów",
			setupMock: func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "geocode:rzeszów, polska", gomock.Any()).Return(cacheMiss)
				g.EXPECT().Geocode(gomock.Any(), "rzeszów, polska").
					Return(geocoder.Location{Latitude: 50.0194, Longitude: 21.9867}, nil)
				c.EXPECT().Save(gomock.Any(), "geocode:rzeszów, polska", gomock.Any(), 3600).Return(nil).AnyTimes()
			},
			wantStatus: model.StatusOK,
			wantKm:     ptr(2.58),
		},
		{
			name:    "address is part of the query",
			city:    "Łańcut",
			address: " ul. Piłsudskiego 1 ",
			setupMock: func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "geocode:ul. piłsudskiego 1, łańcut, polska", gomock.Any()).Return(cacheMiss)
				g.EXPECT().Geocode(gomock.Any(), "ul. piłsudskiego 1, łańcut, polska").
					Return(geocoder.Location{Latitude: 50.0687, Longitude: 22.2291}, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantStatus: model.StatusOK,
		},
		{
			name: "far city is rejected",
			city: "Kraków",
			setupMock: func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				g.EXPECT().Geocode(gomock.Any(), gomock.Any()).
					Return(geocoder.Location{Latitude: 50.0647, Longitude: 19.9450}, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantStatus: model.StatusTooFar,
			wantKm:     ptr(146.67),
		},
		{
			name: "cached coordinates skip the geocoder",
			city: "Rzeszów",
			setupMock: func(_ *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Coordinates) = model.Coordinates{Latitude: 50.0412, Longitude: 21.9991}

						return nil
					})
			},
			wantStatus: model.StatusOK,
			wantKm:     ptr(0),
		},
		{
			name: "unknown place",
			city: "Nigdziebądź",
			setupMock: func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				g.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocoder.Location{}, geocoder.ErrNotFound)
			},
			wantStatus: model.StatusUnresolved,
		},
		{
			name: "geocoder down",
			city: "Rzeszów",
			setupMock: func(g *geocoderMocks.MockGeocoder, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				g.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocoder.Location{}, geocoder.ErrUnavailable)
			},
			wantStatus: model.StatusUnavailable,
		},
		{
			name:      "missing city",
			city:      "  ",
			setupMock: func(*geocoderMocks.MockGeocoder, *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGeocoder := geocoderMocks.NewMockGeocoder(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockGeocoder, mockCache)

			tracer := &mocks.Otel{}
			svc := service.New(mockGeocoder, newConfig(), mockCache, tracer)

			res, err := svc.Check(context.Background(), tt.city, tt.address)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				require.Error(t, err)

				var f *failure.Failure
				require.ErrorAs(t, err, &f)
				assert.Equal(t, 400, f.Code)

				scope := tracer.Scope("service.Check")
				require.NotNil(t, scope)
				assert.True(t, scope.Ended)
				assert.Equal(t, []error{err}, scope.Errors)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.InDelta(t, 30.0, res.MaxKm, 0)

			if tt.wantKm != nil {
				require.NotNil(t, res.DistanceKm)
				assert.InDelta(t, *tt.wantKm, *res.DistanceKm, 0.01)
			}

			if !res.Verified() {
				assert.Nil(t, res.DistanceKm)
			}
		})
	}
}

func ptr(v float64) *float64 {
	return &v
}
