package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbrent/infras/otel/mocks"
	"wbrent/infras/postgres"
	"wbrent/shared/dto"
	"wbrent/shared/repository"
)

type item struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func newRepository(t *testing.T) (repository.Repository[item], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.NewRepository[item]("item", "items", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestRepository_GetAll_Ordering(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		wantOrder string
	}{
		{
			name:      "known column",
			params:    dto.QueryParams{Page: 2, Limit: 10, SortBy: "name", SortDir: dto.SortDirAsc},
			wantOrder: "ORDER BY items.name ASC LIMIT $1 OFFSET $2",
		},
		{
			name:      "unknown column falls back to created_at",
			params:    dto.QueryParams{Page: 2, Limit: 10, SortBy: "name; DROP TABLE items", SortDir: dto.SortDirAsc},
			wantOrder: "ORDER BY items.created_at ASC LIMIT $1 OFFSET $2",
		},
		{
			name:      "no sort defaults to newest first",
			params:    dto.QueryParams{Page: 2, Limit: 10},
			wantOrder: "ORDER BY items.created_at DESC LIMIT $1 OFFSET $2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectPrepare(regexp.QuoteMeta(tt.wantOrder)).
				ExpectQuery().
				WithArgs(10, 10).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
					AddRow("item-1", "Wiertarka", time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)))

			items, err := repo.GetAll(context.Background(), tt.params, dto.FilterGroup{})
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Wiertarka", items[0].Name)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "name", Value: "wiert", Operator: dto.FilterOperatorLike, Table: "items"},
		},
	}

	mock.ExpectPrepare(regexp.QuoteMeta("LOWER(items.name) LIKE LOWER($1)")).
		ExpectQuery().
		WithArgs("%wiert%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
