package apiconfig

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"travelplanner/internal/domain/budget"
	"travelplanner/internal/domain/checklist"
	"travelplanner/internal/domain/packing"
)

func TestSchemaName(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want string
	}{
		{"same name in two packages", reflect.TypeOf(checklist.Item{}), "ChecklistItem"},
		{"other package", reflect.TypeOf(packing.Item{}), "PackingItem"},
		{"already prefixed", reflect.TypeOf(budget.Budget{}), "Budget"},
		{"pointer", reflect.TypeOf(&budget.Category{}), "BudgetCategory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SchemaName(tt.typ, ""))
		})
	}
}

func TestNew_DeclaresBearer(t *testing.T) {
	cfg := New()

	assert.Contains(t, cfg.Components.SecuritySchemes, "bearer")
	assert.Empty(t, cfg.Transformers)
}
