package geocoder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"wbrent/config"
	"wbrent/infras/geocoder"
	"wbrent/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocoder(baseURL string) geocoder.Geocoder {
	cfg := &config.Config{}
	cfg.Geocoder.BaseURL = baseURL
	cfg.Geocoder.UserAgent = "wbrent-test"
	cfg.Geocoder.CountryCodes = "pl"
	cfg.Geocoder.TimeoutSeconds = 2

	return geocoder.New(cfg, mocks.NewOtel())
}

func TestGeocode(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    geocoder.Location
		wantErr error
	}{
		{
			name:   "first match",
			status: http.StatusOK,
			body:   `[{"lat":"50.0412","lon":"21.9991","display_name":"Rzeszów"}]`,
			want:   geocoder.Location{Latitude: 50.0412, Longitude: 21.9991, DisplayName: "Rzeszów"},
		},
		{
			name:    "no match",
			status:  http.StatusOK,
			body:    `[]`,
			wantErr: geocoder.ErrNotFound,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{}`,
			wantErr: geocoder.ErrUnavailable,
		},
		{
			name:    "garbage payload",
			status:  http.StatusOK,
			body:    `<html>`,
			wantErr: geocoder.ErrUnavailable,
		},
		{
			name:    "unparsable coordinates",
			status:  http.StatusOK,
			body:    `[{"lat":"north","lon":"21.9"}]`,
			wantErr: geocoder.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search", r.URL.Path)
				assert.Equal(t, "Rzeszów", r.URL.Query().Get("q"))
				assert.Equal(t, "pl", r.URL.Query().Get("countrycodes"))
				assert.Equal(t, "wbrent-test", r.Header.Get("User-Agent"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := newGeocoder(server.URL).Geocode(context.Background(), "Rzeszów")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeocode_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := newGeocoder(server.URL).Geocode(context.Background(), "Rzeszów")

	assert.ErrorIs(t, err, geocoder.ErrUnavailable)
}
