package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wbrent/infras/otel"
	"wbrent/infras/postgres"
	"wbrent/internal/domains/stocknotify/model"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/logger"
	gRepo "wbrent/shared/repository"
)

const markNotifiedQuery = "UPDATE stock_notifications SET notified_at = $1, modified_at = $1 " +
	"WHERE id = $2 AND notified_at IS NULL"

// ErrAlreadySubscribed means the address already waits for the product.
var ErrAlreadySubscribed = errors.New("already subscribed")

type Subscription interface {
	Insert(ctx context.Context, model model.Subscription) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Subscription, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	MarkNotified(ctx context.Context, id string, at time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Subscription]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Subscription {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Subscription](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, subscription model.Subscription) error {
	err := r.Repository.Insert(ctx, subscription)
	if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
		return ErrAlreadySubscribed
	}

	return err
}

// MarkNotified closes a pending subscription. It reports false when another
// worker closed it first.
func (r *repositoryImpl) MarkNotified(ctx context.Context, id string, at time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stock_notification.MarkNotified")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, markNotifiedQuery)

	result, err := r.db.Write.ExecContext(ctx, markNotifiedQuery, at, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark stock notification sent: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows == 1, nil
}
