package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"wbrent/config"
	"wbrent/infras/otel"
	notification "wbrent/internal/domains/notification/service"
	productModel "wbrent/internal/domains/product/model"
	productRepo "wbrent/internal/domains/product/repository"
	"wbrent/internal/domains/stocknotify/model/dto"
	"wbrent/internal/domains/stocknotify/repository"
	"wbrent/shared"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"
	"wbrent/shared/timezone"

	"github.com/rs/zerolog/log"
)

type StockNotification interface {
	// Subscribe reports whether a new subscription was stored.
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (bool, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSubscriptionsResponse, error)
	// NotifyReleased tells everyone waiting for productID that it freed up.
	NotifyReleased(ctx context.Context, productID string) (int, error)
}

type serviceImpl struct {
	repo        repository.Subscription
	productRepo productRepo.Product
	notifier    notification.Notifier
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.Subscription, productRepo productRepo.Product, notifier notification.Notifier, cfg *config.Config, otel otel.Otel) StockNotification {
	return &serviceImpl{
		repo:        repo,
		productRepo: productRepo,
		notifier:    notifier,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	exist, err := s.productRepo.Exist(ctx, shared.FilterByID(req.ProductID, productModel.FieldID, productModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if product exists")

		return false, fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return false, failure.BadRequestFromString("product not found") // nolint:wrapcheck
	}

	pending, err := s.repo.Exist(ctx, dto.PendingFilter(req.ProductID, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing stock notification")

		return false, fmt.Errorf("failed to check existing stock notification: %w", err)
	}

	if pending {
		return false, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	err = s.repo.Insert(ctx, req.ToModel(user))
	if errors.Is(err, repository.ErrAlreadySubscribed) {
		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create stock notification")

		return false, fmt.Errorf("failed to create stock notification: %w", err)
	}

	return true, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSubscriptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stock notifications")

		return res, fmt.Errorf("failed to count stock notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock notifications")

		return res, fmt.Errorf("failed to get stock notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) NotifyReleased(ctx context.Context, productID string) (notified int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyReleased")
	defer scope.End()
	defer scope.TraceIfError(&err)

	waiting, err := s.repo.GetAll(ctx, gDto.QueryParams{}, dto.PendingFilter(productID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("productId", productID).Msg("failed to get waiting subscriptions")

		return 0, fmt.Errorf("failed to get waiting subscriptions: %w", err)
	}

	now := timezone.Now()

	for _, subscription := range waiting {
		claimed, err := s.repo.MarkNotified(ctx, subscription.ID, now)
		if err != nil {
			log.Error().Err(err).Str("subscriptionId", subscription.ID).Msg("failed to mark stock notification")

			continue
		}

		if !claimed {
			continue
		}

		s.notifier.StockAvailable(ctx, subscription)
		notified++
	}

	log.Info().Str("productId", productID).Int("notified", notified).Msg("stock notifications sent")

	return notified, nil
}
