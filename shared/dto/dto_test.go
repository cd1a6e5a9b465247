package dto_test

import (
	"hotel/shared/dto"
	"testing"

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
			name:      "equality",
			filter:    dto.Filter{Field: "id", Value: "r-1", Operator: dto.FilterOperatorEq},
			wantWhere: "id = :id",
			wantArgs:  map[string]any{"id": "r-1"},
		},
		{
			name:      "equality with table and arg name",
			filter:    dto.Filter{Field: "id", ArgName: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.id = :room_id",
			wantArgs:  map[string]any{"room_id": "r-1"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "number", Value: "101", Operator: dto.FilterOperatorNotEq},
			wantWhere: "number != :number",
			wantArgs:  map[string]any{"number": "101"},
		},
		{
			name:      "in expands one placeholder per element",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "in with scalar is ignored",
			filter:    dto.Filter{Field: "id", Value: "a", Operator: dto.FilterOperatorIn},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "room_id", Operator: dto.FilterIsNull},
			wantWhere: "room_id IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "id", Value: "x", Operator: "like"},
			wantWhere: "",
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
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "r-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "customer_id", Value: "c-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "customer_id", ArgName: "other", Value: "c-2", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (customer_id = :customer_id OR customer_id = :other))", where)
	assert.Equal(t, map[string]any{"room_id": "r-1", "customer_id": "c-1", "other": "c-2"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
