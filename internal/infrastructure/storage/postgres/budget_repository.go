package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/budget"
	"travelplanner/internal/domain/reconcile"
)

type BudgetRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewBudgetRepository(pool *pgxpool.Pool, log *slog.Logger) *BudgetRepository {
	return &BudgetRepository{
		pool: pool,
		log:  log.With("component", "budget_repository"),
	}
}

const (
	budgetColumns   = `id, user_id, name, trip_type, currency, date, amount, created_at, updated_at`
	categoryColumns = `id, budget_id, name, budgeted, actual, difference`
)

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO budgets (user_id, name, trip_type, currency, date, amount)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at, updated_at`,
			b.UserID, b.Name, b.TripType, b.Currency, b.Date, b.Amount,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert budget: %w", err)
		}

		for i := range b.Categories {
			b.Categories[i].BudgetID = b.ID
			if err := insertCategory(ctx, tx, &b.Categories[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BudgetRepository) List(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	budgets, err := pgx.CollectRows(rows, scanBudget)
	if err != nil {
		return nil, fmt.Errorf("scan budgets: %w", err)
	}
	if len(budgets) == 0 {
		return []budget.Budget{}, nil
	}

	ids := make([]uuid.UUID, len(budgets))
	for i, b := range budgets {
		ids[i] = b.ID
	}
	byBudget, err := categoriesOf(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range budgets {
		budgets[i].Categories = nonNil(byBudget[budgets[i].ID])
	}
	return budgets, nil
}

func (r *BudgetRepository) Get(ctx context.Context, id uuid.UUID) (budget.Budget, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = $1`, id)
	if err != nil {
		return budget.Budget{}, fmt.Errorf("get budget: %w", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBudget)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget.Budget{}, budget.ErrNotFound
		}
		return budget.Budget{}, fmt.Errorf("scan budget: %w", err)
	}

	byBudget, err := categoriesOf(ctx, r.pool, []uuid.UUID{id})
	if err != nil {
		return budget.Budget{}, err
	}
	b.Categories = nonNil(byBudget[id])
	return b, nil
}

// Update writes the budget row and applies the category plan in one
// transaction. Every child statement is scoped by budget id.
func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget, plan budget.Plan) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`UPDATE budgets
			 SET name = $1, trip_type = $2, currency = $3, date = $4, amount = $5, updated_at = NOW()
			 WHERE id = $6
			 RETURNING created_at, updated_at`,
			b.Name, b.TripType, b.Currency, b.Date, b.Amount, b.ID,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return budget.ErrNotFound
			}
			return fmt.Errorf("update budget: %w", err)
		}

		if err := reconcile.Apply(ctx, plan, categoryWriter{q: tx, budgetID: b.ID}); err != nil {
			return err
		}

		byBudget, err := categoriesOf(ctx, tx, []uuid.UUID{b.ID})
		if err != nil {
			return err
		}
		b.Categories = nonNil(byBudget[b.ID])
		return nil
	})
}

func (r *BudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return budget.ErrNotFound
	}
	return nil
}

func (r *BudgetRepository) CreateCategory(ctx context.Context, c *budget.Category) error {
	return insertCategory(ctx, r.pool, c)
}

func (r *BudgetRepository) GetCategory(ctx context.Context, id uuid.UUID) (budget.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM budget_categories WHERE id = $1`, id)
	if err != nil {
		return budget.Category{}, fmt.Errorf("get category: %w", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget.Category{}, budget.ErrCategoryNotFound
		}
		return budget.Category{}, fmt.Errorf("scan category: %w", err)
	}
	return c, nil
}

func (r *BudgetRepository) UpdateCategory(ctx context.Context, c *budget.Category) error {
	return categoryWriter{q: r.pool, budgetID: c.BudgetID}.UpdateChild(ctx, *c)
}

func (r *BudgetRepository) DeleteCategory(ctx context.Context, budgetID, categoryID uuid.UUID) error {
	return categoryWriter{q: r.pool, budgetID: budgetID}.DeleteChild(ctx, budget.Category{ID: categoryID})
}

// categoryWriter applies reconcile plans to budget_categories of one budget.
type categoryWriter struct {
	q        querier
	budgetID uuid.UUID
}

func (w categoryWriter) DeleteChild(ctx context.Context, c budget.Category) error {
	tag, err := w.q.Exec(ctx,
		`DELETE FROM budget_categories WHERE id = $1 AND budget_id = $2`, c.ID, w.budgetID)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return budget.ErrCategoryNotFound
	}
	return nil
}

func (w categoryWriter) UpdateChild(ctx context.Context, c budget.Category) error {
	tag, err := w.q.Exec(ctx,
		`UPDATE budget_categories SET name = $1, budgeted = $2, actual = $3, difference = $4
		 WHERE id = $5 AND budget_id = $6`,
		c.Name, c.Budgeted, c.Actual, c.Difference, c.ID, w.budgetID)
	if err != nil {
		return fmt.Errorf("update category %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return budget.ErrCategoryNotFound
	}
	return nil
}

func (w categoryWriter) CreateChild(ctx context.Context, c budget.Category) error {
	c.BudgetID = w.budgetID
	return insertCategory(ctx, w.q, &c)
}

func insertCategory(ctx context.Context, q querier, c *budget.Category) error {
	err := q.QueryRow(ctx,
		`INSERT INTO budget_categories (budget_id, name, budgeted, actual, difference)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		c.BudgetID, c.Name, c.Budgeted, c.Actual, c.Difference,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func categoriesOf(ctx context.Context, q querier, budgetIDs []uuid.UUID) (map[uuid.UUID][]budget.Category, error) {
	rows, err := q.Query(ctx,
		`SELECT `+categoryColumns+` FROM budget_categories
		 WHERE budget_id = ANY($1) ORDER BY name, id`, budgetIDs)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	cats, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}

	out := make(map[uuid.UUID][]budget.Category, len(budgetIDs))
	for _, c := range cats {
		out[c.BudgetID] = append(out[c.BudgetID], c)
	}
	return out, nil
}

func scanBudget(row pgx.CollectableRow) (budget.Budget, error) {
	var b budget.Budget
	err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.TripType, &b.Currency, &b.Date, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanCategory(row pgx.CollectableRow) (budget.Category, error) {
	var c budget.Category
	err := row.Scan(&c.ID, &c.BudgetID, &c.Name, &c.Budgeted, &c.Actual, &c.Difference)
	return c, err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
