package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrent/infras/otel/mocks"
	"wbrent/infras/postgres"
	"wbrent/internal/domains/pricing"
	"wbrent/internal/domains/reservation/model"
	"wbrent/internal/domains/reservation/model/dto"
	"wbrent/internal/domains/reservation/repository"
	gDto "wbrent/shared/dto"
)

const (
	lockSQL     = "SELECT pg_advisory_xact_lock(hashtext($1))"
	conflictSQL = "FROM reservations WHERE product_id = $1 AND status = ANY($2) AND start_date < $3 AND GREATEST(end_date, start_date + 1) > $4"
)

var conflictColumns = []string{"id", "start_date", "end_date", "status"}

func newRepository(t *testing.T) (repository.Reservation, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func date(value string) time.Time {
	d, _ := time.Parse(time.DateOnly, value)

	return d
}

func newReservation() model.Reservation {
	return model.Reservation{
		ID:             "res-1",
		ProductID:      "wiertarka-udarowa",
		StartDate:      date("2026-01-21"),
		EndDate:        date("2026-01-24"),
		DistanceStatus: model.DistanceNotRequired,
		Days:           3,
		BasePrice:      13500,
		TotalPrice:     13500,
		Status:         model.StatusPending,
	}
}

func TestFindConflicts(t *testing.T) {
	tests := []struct {
		name      string
		period    pricing.Range
		wantStart string
		wantEnd   string
	}{
		{
			name:      "multi-day period",
			period:    pricing.Range{Start: date("2026-01-21"), End: date("2026-01-24")},
			wantStart: "2026-01-21",
			wantEnd:   "2026-01-24",
		},
		{
			name:      "same-day period occupies its day",
			period:    pricing.Range{Start: date("2026-01-21"), End: date("2026-01-21")},
			wantStart: "2026-01-21",
			wantEnd:   "2026-01-22",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectQuery(regexp.QuoteMeta(conflictSQL)).
				WithArgs("wiertarka-udarowa", sqlmock.AnyArg(), tt.wantEnd, tt.wantStart).
				WillReturnRows(sqlmock.NewRows(conflictColumns).
					AddRow("res-0", date("2026-01-20"), date("2026-01-22"), "confirmed"))

			conflicts, err := repo.FindConflicts(context.Background(), "wiertarka-udarowa", tt.period)

			require.NoError(t, err)
			require.Len(t, conflicts, 1)
			assert.Equal(t, model.StatusConfirmed, conflicts[0].Status)
			assert.Equal(t, date("2026-01-22"), conflicts[0].EndDate)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertIfAvailable(t *testing.T) {
	t.Run("free period is inserted", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).
			WithArgs("wiertarka-udarowa").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(conflictSQL)).
			WithArgs("wiertarka-udarowa", sqlmock.AnyArg(), "2026-01-24", "2026-01-21").
			WillReturnRows(sqlmock.NewRows(conflictColumns))
		mock.ExpectExec("INSERT INTO reservations").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		conflicts, err := repo.InsertIfAvailable(context.Background(), newReservation())

		assert.NoError(t, err)
		assert.Empty(t, conflicts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlap found inside the transaction", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).
			WithArgs("wiertarka-udarowa").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(conflictSQL)).
			WillReturnRows(sqlmock.NewRows(conflictColumns).
				AddRow("res-0", date("2026-01-23"), date("2026-01-25"), "pending"))
		mock.ExpectRollback()

		conflicts, err := repo.InsertIfAvailable(context.Background(), newReservation())

		assert.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "res-0", conflicts[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("overlap rejected by the exclusion constraint", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(conflictSQL)).
			WillReturnRows(sqlmock.NewRows(conflictColumns))
		mock.ExpectExec("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})
		mock.ExpectQuery(regexp.QuoteMeta(conflictSQL)).
			WillReturnRows(sqlmock.NewRows(conflictColumns).
				AddRow("res-9", date("2026-01-22"), date("2026-01-23"), "pending"))
		mock.ExpectRollback()

		conflicts, err := repo.InsertIfAvailable(context.Background(), newReservation())

		assert.ErrorIs(t, err, repository.ErrConflictAtCommit)
		require.Len(t, conflicts, 1)
		assert.Equal(t, "res-9", conflicts[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database failure", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockSQL)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		conflicts, err := repo.InsertIfAvailable(context.Background(), newReservation())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrConflictAtCommit)
		assert.Nil(t, conflicts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "status still matches", affected: 1, want: true},
		{name: "changed concurrently", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4 AND status = $5")).
				WithArgs("confirmed", sqlmock.AnyArg(), "admin", "res-1", "pending").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.UpdateStatus(context.Background(), "res-1", model.StatusPending, model.StatusConfirmed, "admin")

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkReminderSent(t *testing.T) {
	repo, mock := newRepository(t)

	at := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET reminder_sent_at = $1, modified_at = $1 WHERE id = $2 AND reminder_sent_at IS NULL")).
		WithArgs(at, "res-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET reminder_sent_at")).
		WithArgs(at, "res-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.MarkReminderSent(context.Background(), "res-1", at)
	require.NoError(t, err)

	second, err := repo.MarkReminderSent(context.Background(), "res-1", at)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_DueReminders(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM reservations LEFT JOIN products ON products.id = reservations.product_id")).
		ExpectQuery().
		WithArgs("confirmed", "2026-01-22").
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "product_name", "start_date", "end_date", "status", "email"}).
			AddRow("res-1", "wiertarka-udarowa", "Wiertarka udarowa", date("2026-01-22"), date("2026-01-24"), "confirmed", "jan@example.com"))

	reservations, err := repo.GetAll(context.Background(), gDto.QueryParams{}, dto.DueReminderFilter(date("2026-01-22")))

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "Wiertarka udarowa", reservations[0].ProductName)
	assert.Equal(t, model.StatusConfirmed, reservations[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
