package dto_test

import (
	"testing"
	"wbrent/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "reservations"},
			wantWhere: "reservations.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "strictly less with arg name",
			filter:    dto.Filter{Field: "start_date", ArgName: "range_end", Value: "2026-02-05", Operator: dto.FilterOperatorLess},
			wantWhere: "start_date < :range_end",
			wantArgs:  map[string]any{"range_end": "2026-02-05"},
		},
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "end_date", Value: "2026-02-01", Operator: dto.FilterOperatorGreater},
			wantWhere: "end_date > :end_date",
			wantArgs:  map[string]any{"end_date": "2026-02-01"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:      "in single value",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0)",
			wantArgs:  map[string]any{"status_0": "pending"},
		},
		{
			name:      "in empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "like escapes wildcards",
			filter:    dto.Filter{Field: "name", Value: "50%_off", Operator: dto.FilterOperatorLike, Table: "products"},
			wantWhere: "LOWER(products.name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": `%50\%\_off%`},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "regex"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "notified_at", Operator: dto.FilterIsNull},
			wantWhere: "notified_at IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "product_id", Value: "drill", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "notified_at", Operator: dto.FilterIsNull},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(product_id = :product_id AND notified_at IS NULL)", where)
	assert.Equal(t, map[string]any{"product_id": "drill"}, args)

	nested := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{Filters: []any{dto.Filter{Field: "city", Value: "Warszawa", Operator: dto.FilterOperatorEq}}},
			dto.Filter{Field: "name", Value: "x", Operator: "regex"},
		},
	}

	where, args = nested.GetWhereClause()
	assert.Equal(t, "(status = :status OR (city = :city))", where)
	assert.Equal(t, map[string]any{"status": "pending", "city": "Warszawa"}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
