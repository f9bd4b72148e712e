package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"wbrent/config"
	"wbrent/infras/geocoder"
	"wbrent/infras/otel"
	"wbrent/internal/domains/distance/model"
	"wbrent/shared"
	"wbrent/shared/cache"
	"wbrent/shared/constant"
	"wbrent/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGeocode = "geocode"

	queryCountry = "Polska"
)

type Gate interface {
	Check(ctx context.Context, city, address string) (model.Result, error)
}

type serviceImpl struct {
	geocoder geocoder.Geocoder
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(geocoder geocoder.Geocoder, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Gate {
	return &serviceImpl{
		geocoder: geocoder,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context, city, address string) (res model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(&err)

	city = strings.TrimSpace(city)
	if city == constant.Empty {
		return res, failure.BadRequestFromString("city is required for delivery")
	}

	res.MaxKm = s.cfg.Delivery.MaxRadiusKm
	query := buildQuery(city, address)

	coordinates, status := s.locate(ctx, query)
	if status != constant.Empty {
		res.Status = status

		return res, nil
	}

	depot := model.Coordinates{
		Latitude:  s.cfg.Delivery.DepotLatitude,
		Longitude: s.cfg.Delivery.DepotLongitude,
	}

	distance := model.HaversineKm(depot, coordinates)
	res.DistanceKm = &distance
	res.Status = model.Classify(distance, res.MaxKm)

	scope.SetAttributes(map[string]any{
		"distance.km":     distance,
		"distance.status": string(res.Status),
	})

	return res, nil
}

// locate returns the coordinates for query, or the status to report when it
// could not be resolved.
func (s *serviceImpl) locate(ctx context.Context, query string) (model.Coordinates, model.Status) {
	var coordinates model.Coordinates

	cacheKey := shared.BuildCacheKey(cacheGeocode, query)

	if err := s.cache.Get(ctx, cacheKey, &coordinates); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for geocode")

		return coordinates, constant.Empty
	}

	location, err := s.geocoder.Geocode(ctx, query)
	if errors.Is(err, geocoder.ErrNotFound) {
		log.Info().Str("query", query).Msg("address could not be geocoded")

		return coordinates, model.StatusUnresolved
	}

	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocoder unavailable")

		return coordinates, model.StatusUnavailable
	}

	coordinates = model.Coordinates{Latitude: location.Latitude, Longitude: location.Longitude}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, coordinates, s.cfg.Geocoder.CacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save geocode to cache")
		}
	}()

	return coordinates, constant.Empty
}

func buildQuery(city, address string) string {
	parts := []string{}

	if address = strings.TrimSpace(address); address != constant.Empty {
		parts = append(parts, address)
	}

	parts = append(parts, city, queryCountry)

	return strings.ToLower(strings.Join(parts, ", "))
}
