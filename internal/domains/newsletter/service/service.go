package service

import (
	"context"
	"errors"
	"fmt"
	"wbrent/config"
	"wbrent/infras/otel"
	"wbrent/internal/domains/newsletter/model"
	"wbrent/internal/domains/newsletter/model/dto"
	"wbrent/internal/domains/newsletter/repository"
	"wbrent/shared"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/failure"
	"wbrent/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Newsletter interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) error
	Unsubscribe(ctx context.Context, token string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSubscribersResponse, error)
}

type serviceImpl struct {
	repo repository.Subscriber
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Subscriber, cfg *config.Config, otel otel.Otel) Newsletter {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Subscribe is idempotent: a known address is reactivated, an active one is left alone.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextGuest
	}

	filter := shared.FilterByID(req.NormalizedEmail(), model.FieldEmail, model.TableName)

	subscriber, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter subscriber")

		return fmt.Errorf("failed to get newsletter subscriber: %w", err)
	}

	if subscriber.ID != constant.Empty {
		if subscriber.Active {
			return nil
		}

		return s.setActive(ctx, filter, true, user)
	}

	err = s.repo.Insert(ctx, req.ToModel(user))
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create newsletter subscriber")

		return fmt.Errorf("failed to create newsletter subscriber: %w", err)
	}

	return nil
}

func (s *serviceImpl) Unsubscribe(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unsubscribe")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := shared.FilterByID(token, model.FieldToken, model.TableName)

	subscriber, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter subscriber")

		return fmt.Errorf("failed to get newsletter subscriber: %w", err)
	}

	if subscriber.ID == constant.Empty {
		return failure.NotFound("newsletter subscription not found") // nolint:wrapcheck
	}

	if !subscriber.Active {
		return nil
	}

	return s.setActive(ctx, filter, false, subscriber.Email)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSubscribersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count newsletter subscribers")

		return res, fmt.Errorf("failed to count newsletter subscribers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get newsletter subscribers")

		return res, fmt.Errorf("failed to get newsletter subscribers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) setActive(ctx context.Context, filter gDto.FilterGroup, active bool, user string) error {
	fields := map[string]any{
		model.FieldActive:        active,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Bool("active", active).Msg("failed to update newsletter subscriber")

		return fmt.Errorf("failed to update newsletter subscriber: %w", err)
	}

	return nil
}
