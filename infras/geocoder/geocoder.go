package geocoder

//go:generate go run go.uber.org/mock/mockgen -source=./geocoder.go -destination=./mocks/geocoder_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	searchPath   = "/search"
	resultFormat = "jsonv2"
	resultLimit  = "1"

	otelAttrQuery = "geocoder.query"
)

var (
	ErrNotFound    = errors.New("location not found")
	ErrUnavailable = errors.New("geocoding service unavailable")
)

type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Location, error)
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type nominatimImpl struct {
	client *http.Client
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Geocoder {
	return &nominatimImpl{
		client: &http.Client{Timeout: time.Duration(config.Geocoder.TimeoutSeconds) * time.Second},
		config: config,
		otel:   otel,
	}
}

func (n *nominatimImpl) Geocode(ctx context.Context, query string) (loc Location, err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelGeocoderScopeName, constant.OtelGeocoderScopeName+".Geocode")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrQuery, query)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", resultFormat)
	params.Set("limit", resultLimit)

	if n.config.Geocoder.CountryCodes != "" {
		params.Set("countrycodes", n.config.Geocoder.CountryCodes)
	}

	endpoint := n.config.Geocoder.BaseURL + searchPath + "?" + params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return loc, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	// Nominatim's usage policy requires an identifying agent.
	request.Header.Set(constant.RequestHeaderUserAgent, n.config.Geocoder.UserAgent)

	response, err := n.client.Do(request)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocoding request failed")

		return loc, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		log.Warn().Int("status", response.StatusCode).Str("query", query).Msg("geocoding service returned an error")

		return loc, fmt.Errorf("%w: status %d", ErrUnavailable, response.StatusCode)
	}

	var places []place
	if err = json.NewDecoder(response.Body).Decode(&places); err != nil {
		return loc, fmt.Errorf("%w: failed to decode response: %w", ErrUnavailable, err)
	}

	if len(places) == 0 {
		return loc, ErrNotFound
	}

	loc.Latitude, err = strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return loc, fmt.Errorf("%w: invalid latitude %q", ErrUnavailable, places[0].Lat)
	}

	loc.Longitude, err = strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return loc, fmt.Errorf("%w: invalid longitude %q", ErrUnavailable, places[0].Lon)
	}

	loc.DisplayName = places[0].DisplayName

	return loc, nil
}
