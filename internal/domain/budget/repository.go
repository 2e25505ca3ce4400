package budget

import (
	"context"

	"github.com/google/uuid"

	"travelplanner/internal/domain/reconcile"
)

type Plan = reconcile.Plan[Category, Category]

// Repository хранит бюджеты вместе с категориями.
type Repository interface {
	// Create inserts the budget and its categories, filling in generated ids.
	Create(ctx context.Context, b *Budget) error
	List(ctx context.Context, userID uuid.UUID) ([]Budget, error)
	Get(ctx context.Context, id uuid.UUID) (Budget, error)
	// Update writes the budget fields and applies the category plan atomically,
	// then reloads b.Categories.
	Update(ctx context.Context, b *Budget, plan Plan) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (Category, error)
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, budgetID, categoryID uuid.UUID) error
}
