package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wbrent/config"
	"wbrent/infras/otel"
	distanceModel "wbrent/internal/domains/distance/model"
	distance "wbrent/internal/domains/distance/service"
	notification "wbrent/internal/domains/notification/service"
	"wbrent/internal/domains/pricing"
	productModel "wbrent/internal/domains/product/model"
	productRepo "wbrent/internal/domains/product/repository"
	quote "wbrent/internal/domains/quote/service"
	"wbrent/internal/domains/reservation/event"
	"wbrent/internal/domains/reservation/model"
	"wbrent/internal/domains/reservation/model/dto"
	"wbrent/internal/domains/reservation/repository"
	"wbrent/shared"
	"wbrent/shared/cache"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"
	"wbrent/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
	cacheReservation       = "reservation:"
)

const (
	msgProductNotFound     = "product not found"
	msgProductUnavailable  = "product is currently unavailable"
	msgPeriodTaken         = "product is already reserved in the requested period"
	msgPriceMismatch       = "submitted total price does not match the current price"
	msgTooFar              = "delivery address is outside the delivery area"
	msgDistanceUnverified  = "delivery distance could not be verified, confirm the address or contact us"
	msgReservationNotFound = "reservation not found"
	msgConcurrentUpdate    = "reservation status was changed by someone else, reload and try again"
)

type Reservation interface {
	Availability(ctx context.Context, productID, startDate, endDate string) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	SendPickupReminders(ctx context.Context, now time.Time) (int, error)
}

type serviceImpl struct {
	repo        repository.Reservation
	productRepo productRepo.Product
	quote       quote.Quote
	distance    distance.Gate
	notifier    notification.Notifier
	publisher   event.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Reservation,
	productRepo productRepo.Product,
	quote quote.Quote,
	distance distance.Gate,
	notifier notification.Notifier,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:        repo,
		productRepo: productRepo,
		quote:       quote,
		distance:    distance,
		notifier:    notifier,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Availability lists the active reservations that overlap the given dates.
func (s *serviceImpl) Availability(ctx context.Context, productID, startDate, endDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	period, err := pricing.ParseRange(startDate, endDate, constant.Empty, constant.Empty)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.productRepo.Exist(ctx, shared.FilterByID(productID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("productId", productID).Msg("failed to check if product exists")

		return res, fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgProductNotFound) // nolint:wrapcheck
	}

	conflicts, err := s.repo.FindConflicts(ctx, productID, period)
	if err != nil {
		log.Error().Err(err).Str("productId", productID).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	res.FromModels(conflicts)

	return res, nil
}

// Create prices the request on the server, checks delivery reach and stores
// the reservation unless its period is already taken.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	q, err := s.quote.Calculate(ctx, req.ToQuoteInput())
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !q.Product.Available {
		return res, failure.Conflict(msgProductUnavailable) // nolint:wrapcheck
	}

	if req.TotalPrice != nil && *req.TotalPrice != 0 && *req.TotalPrice != q.Breakdown.Total {
		log.Warn().
			Str("productId", req.ProductID).
			Int64("expected", q.Breakdown.Total).
			Int64("received", *req.TotalPrice).
			Msg("client total price mismatch")

		return res, failure.Unprocessable(msgPriceMismatch, dto.PriceMismatch{ // nolint:wrapcheck
			Expected: q.Breakdown.Total,
			Received: *req.TotalPrice,
		})
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	reservation := req.ToModel(q, user)

	if req.Delivery {
		if err = s.checkDistance(ctx, req, &reservation); err != nil {
			return res, err
		}
	}

	conflicts, err := s.repo.InsertIfAvailable(ctx, reservation)
	if errors.Is(err, repository.ErrConflictAtCommit) || (err == nil && len(conflicts) > 0) {
		log.Info().Str("productId", reservation.ProductID).Int("conflicts", len(conflicts)).Msg("reservation period already taken")

		return res, failure.ConflictWithDetails(msgPeriodTaken, dto.FromConflicts(conflicts)) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("productId", reservation.ProductID).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	scope.SetAttribute("reservation.id", reservation.ID)

	go func() {
		c := context.WithoutCancel(ctx)
		shared.InvalidateCaches(c, s.cache, cacheReservation)
	}()

	s.notifier.ReservationCreated(ctx, reservation)

	res.ID = reservation.ID
	res.Message = dto.MessageCreated

	return res, nil
}

// checkDistance fills the distance fields of reservation or rejects the
// delivery address.
func (s *serviceImpl) checkDistance(ctx context.Context, req dto.CreateReservationRequest, reservation *model.Reservation) error {
	result, err := s.distance.Check(ctx, req.City, req.Address)
	if err != nil {
		return err // nolint:wrapcheck
	}

	var details dto.DistanceDetails
	details.FromModel(result)

	switch result.Status {
	case distanceModel.StatusOK:
		reservation.DistanceStatus = model.DistanceOK
		reservation.DistanceKm = result.DistanceKm
	case distanceModel.StatusTooFar:
		return failure.BadRequestWithDetails(msgTooFar, details) // nolint:wrapcheck
	default:
		if !req.AcknowledgeUnverifiedDistance {
			return failure.Unprocessable(msgDistanceUnverified, details) // nolint:wrapcheck
		}

		log.Info().Str("city", req.City).Str("status", string(result.Status)).Msg("accepting unverified delivery distance")

		reservation.DistanceStatus = model.DistanceUnverified
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, err
	}

	reservations, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(reservations, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return total, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// UpdateStatus applies one lifecycle transition. Setting the current status
// again succeeds without side effects.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	reservation, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	from, next := reservation.Status, model.Status(req.Status)

	if from == next {
		log.Info().Str("reservationId", id).Str("status", next.String()).Msg("reservation already in requested status")

		return nil
	}

	if !from.CanTransitionTo(next) {
		return failure.Conflict(fmt.Sprintf("cannot change reservation status from %s to %s", from, next)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updated, err := s.repo.UpdateStatus(ctx, id, from, next, user)
	if err != nil {
		log.Error().Err(err).Str("reservationId", id).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	if !updated {
		return failure.Conflict(msgConcurrentUpdate) // nolint:wrapcheck
	}

	reservation.Status = next

	scope.SetAttributes(map[string]any{
		"reservation.from": from.String(),
		"reservation.to":   next.String(),
	})

	go func() {
		c := context.WithoutCancel(ctx)
		shared.InvalidateCaches(c, s.cache, cacheReservation)
	}()

	s.notifier.StatusChanged(ctx, reservation, from)

	// returned -> cancelled frees nothing new.
	if next.Releases() && !from.Releases() {
		s.publisher.Released(ctx, reservation, from)
	}

	return nil
}

// SendPickupReminders reminds customers whose confirmed pickup is
// ReminderLeadDays after now. Each reservation is claimed before the email is
// queued, so a rerun never sends twice.
func (s *serviceImpl) SendPickupReminders(ctx context.Context, now time.Time) (sent int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendPickupReminders")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day := timezone.DateOf(now).AddDate(0, 0, s.cfg.Scheduler.ReminderLeadDays)

	filter := dto.DueReminderFilter(day)

	due, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations due for reminder")

		return 0, fmt.Errorf("failed to get reservations due for reminder: %w", err)
	}

	for _, reservation := range due {
		claimed, err := s.repo.MarkReminderSent(ctx, reservation.ID, now)
		if err != nil {
			log.Error().Err(err).Str("reservationId", reservation.ID).Msg("failed to mark reminder sent")

			continue
		}

		if !claimed {
			continue
		}

		s.notifier.PickupReminder(ctx, reservation)
		sent++
	}

	scope.SetAttribute("reminders.sent", sent)

	return sent, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("reservationId", id).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound(msgReservationNotFound) // nolint:wrapcheck
	}

	return reservation, nil
}
