package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wbrent/infras/otel"
	"wbrent/infras/postgres"
	"wbrent/internal/domains/pricing"
	"wbrent/internal/domains/reservation/model"
	"wbrent/shared/constant"
	gDto "wbrent/shared/dto"
	"wbrent/shared/logger"
	gRepo "wbrent/shared/repository"
	"wbrent/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	lockProductQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

	// A same-day reservation has end_date = start_date and still occupies that day.
	conflictQuery = "SELECT id, start_date, end_date, status FROM reservations " +
		"WHERE product_id = $1 AND status = ANY($2) AND start_date < $3 AND GREATEST(end_date, start_date + 1) > $4 " +
		"ORDER BY start_date"

	updateStatusQuery = "UPDATE reservations SET status = $1, modified_at = $2, modified_by = $3 " +
		"WHERE id = $4 AND status = $5"

	markReminderQuery = "UPDATE reservations SET reminder_sent_at = $1, modified_at = $1 " +
		"WHERE id = $2 AND reminder_sent_at IS NULL"
)

// ErrConflictAtCommit means the database rejected an overlapping insert that
// passed the in-transaction check.
var ErrConflictAtCommit = errors.New("reservation overlaps an existing booking")

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindConflicts(ctx context.Context, productID string, period pricing.Range) ([]model.Conflict, error)
	InsertIfAvailable(ctx context.Context, reservation model.Reservation) ([]model.Conflict, error)
	UpdateStatus(ctx context.Context, id string, from, to model.Status, user string) (bool, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindConflicts lists active reservations of productID overlapping period.
func (r *repositoryImpl) FindConflicts(ctx context.Context, productID string, period pricing.Range) ([]model.Conflict, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindConflicts")
	defer scope.End()

	return r.findConflicts(ctx, r.db.Read, productID, period)
}

func (r *repositoryImpl) findConflicts(ctx context.Context, q sqlx.QueryerContext, productID string, period pricing.Range) ([]model.Conflict, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.findConflicts")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	statuses := make([]string, len(model.ActiveStatuses))
	for i, s := range model.ActiveStatuses {
		statuses[i] = s.String()
	}

	conflicts := []model.Conflict{}

	err := sqlx.SelectContext(ctx, q, &conflicts, conflictQuery,
		productID,
		pq.Array(statuses),
		period.OccupiedEnd().Format(constant.DateOnlyFormat),
		period.Start.Format(constant.DateOnlyFormat),
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find conflicting reservations: %w", err)
	}

	return conflicts, nil
}

// InsertIfAvailable stores reservation unless it overlaps an active one.
// Creates for the same product are serialised by a transaction-scoped advisory
// lock, so the conflict check and the insert see the same data. A non-empty
// result means nothing was written.
func (r *repositoryImpl) InsertIfAvailable(ctx context.Context, reservation model.Reservation) (conflicts []model.Conflict, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertIfAvailable")
	defer scope.End()
	defer scope.TraceIfError(&err)

	period := pricing.Range{Start: reservation.StartDate, End: reservation.EndDate}

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	committed := false

	defer func() {
		if committed {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Str("reservationId", reservation.ID).Msg("failed to rollback reservation transaction")
		}
	}()

	if _, err = tx.ExecContext(ctx, lockProductQuery, reservation.ProductID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to lock product %s: %w", reservation.ProductID, err)
	}

	conflicts, err = r.findConflicts(ctx, tx, reservation.ProductID, period)
	if err != nil {
		return nil, err
	}

	if len(conflicts) > 0 {
		return conflicts, nil
	}

	if err = r.InsertTx(ctx, tx, reservation); err == nil {
		// Commit ends the transaction whether or not it succeeds.
		committed = true
		err = tx.Commit()
	}

	if gRepo.IsViolation(err, constant.PqErrorCodeExclusion) {
		log.Warn().Str("productId", reservation.ProductID).Msg("reservation rejected by overlap constraint")

		return r.conflictsAfterViolation(ctx, reservation.ProductID, period), ErrConflictAtCommit
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil, nil
}

func (r *repositoryImpl) conflictsAfterViolation(ctx context.Context, productID string, period pricing.Range) []model.Conflict {
	conflicts, err := r.findConflicts(ctx, r.db.Read, productID, period)
	if err != nil {
		log.Warn().Err(err).Str("productId", productID).Msg("failed to list conflicts after overlap violation")

		return nil
	}

	return conflicts
}

// UpdateStatus moves a reservation from one status to another. It reports false
// when the reservation is no longer in status from.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id string, from, to model.Status, user string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.UpdateStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, updateStatusQuery)

	result, err := r.db.Write.ExecContext(ctx, updateStatusQuery, to.String(), timezone.Now(), user, id, from.String())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update reservation status: %w", err)
	}

	return affectedOne(result.RowsAffected())
}

// MarkReminderSent claims the pickup reminder of a reservation. Only the first
// caller gets true.
func (r *repositoryImpl) MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.MarkReminderSent")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, markReminderQuery)

	result, err := r.db.Write.ExecContext(ctx, markReminderQuery, at, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to mark reminder as sent: %w", err)
	}

	return affectedOne(result.RowsAffected())
}

func affectedOne(rows int64, err error) (bool, error) {
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows == 1, nil
}
