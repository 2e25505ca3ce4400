package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/reconcile"
	"travelplanner/internal/metrics"
	"travelplanner/internal/utils/dateparse"
)

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID, in Input) (Budget, error)
	List(ctx context.Context, userID uuid.UUID) ([]Budget, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Budget, error)
	Update(ctx context.Context, userID, id uuid.UUID, in Input) (Budget, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	AddCategory(ctx context.Context, userID, budgetID uuid.UUID, in CategoryInput) (Category, error)
	UpdateCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID, in CategoryInput) (Category, error)
	DeleteCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "budget_service"),
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (Budget, error) {
	b, err := fromInput(userID, in)
	if err != nil {
		return Budget{}, err
	}

	b.Categories = make([]Category, 0, len(in.Categories))
	for _, ci := range in.Categories {
		c, err := ci.toCategory(uuid.Nil)
		if err != nil {
			return Budget{}, err
		}
		c.ID = uuid.Nil
		b.Categories = append(b.Categories, c)
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		s.log.Error("failed to create budget", "user_id", userID, "error", err)
		return Budget{}, fmt.Errorf("create budget: %w", err)
	}

	s.log.Info("budget created", "budget_id", b.ID, "user_id", userID, "categories", len(b.Categories))
	return b, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	budgets, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (Budget, error) {
	return s.owned(ctx, userID, id)
}

// Update replaces the budget fields and converges its categories to in.Categories.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (Budget, error) {
	current, err := s.owned(ctx, userID, id)
	if err != nil {
		return Budget{}, err
	}

	b, err := fromInput(userID, in)
	if err != nil {
		return Budget{}, err
	}
	b.ID = current.ID
	b.CreatedAt = current.CreatedAt

	submitted := make([]Category, 0, len(in.Categories))
	for _, ci := range in.Categories {
		c, err := ci.toCategory(id)
		if err != nil {
			return Budget{}, err
		}
		submitted = append(submitted, c)
	}

	plan := reconcile.Diff(current.Categories, submitted, categoryID, categoryID)
	if len(plan.Unknown) > 0 {
		// ids the budget never had; they are created fresh, never matched elsewhere
		s.log.Warn("unknown category ids submitted, treating as new",
			"budget_id", id, "user_id", userID, "ids", plan.Unknown)
	}
	for i := range plan.Create {
		plan.Create[i].ID = uuid.Nil
	}

	if err := s.repo.Update(ctx, &b, plan); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Budget{}, ErrNotFound
		}
		s.log.Error("failed to update budget", "budget_id", id, "error", err)
		return Budget{}, fmt.Errorf("update budget: %w", err)
	}

	metrics.ObserveReconcile("budget", len(plan.Create), len(plan.Update), len(plan.Delete))
	s.log.Info("budget updated", "budget_id", id,
		"created", len(plan.Create), "updated", len(plan.Update), "deleted", len(plan.Delete))
	return b, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete budget: %w", err)
	}
	s.log.Info("budget deleted", "budget_id", id, "user_id", userID)
	return nil
}

func (s *Service) AddCategory(ctx context.Context, userID, budgetID uuid.UUID, in CategoryInput) (Category, error) {
	if _, err := s.owned(ctx, userID, budgetID); err != nil {
		return Category{}, err
	}

	c, err := in.toCategory(budgetID)
	if err != nil {
		return Category{}, err
	}
	c.ID = uuid.Nil

	if err := s.repo.CreateCategory(ctx, &c); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID, in CategoryInput) (Category, error) {
	if err := s.ownedCategory(ctx, userID, budgetID, categoryID); err != nil {
		return Category{}, err
	}

	c, err := in.toCategory(budgetID)
	if err != nil {
		return Category{}, err
	}
	c.ID = categoryID

	if err := s.repo.UpdateCategory(ctx, &c); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return Category{}, ErrCategoryNotFound
		}
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID) error {
	if err := s.ownedCategory(ctx, userID, budgetID, categoryID); err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, budgetID, categoryID); err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// owned loads a budget and checks it belongs to userID.
func (s *Service) owned(ctx context.Context, userID, id uuid.UUID) (Budget, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Budget{}, ErrNotFound
		}
		return Budget{}, fmt.Errorf("get budget: %w", err)
	}
	if b.UserID != userID {
		s.log.Warn("budget access denied", "budget_id", id, "user_id", userID)
		return Budget{}, ErrForbidden
	}
	return b, nil
}

func (s *Service) ownedCategory(ctx context.Context, userID, budgetID, categoryID uuid.UUID) error {
	if _, err := s.owned(ctx, userID, budgetID); err != nil {
		return err
	}
	c, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("get category: %w", err)
	}
	if c.BudgetID != budgetID {
		return ErrCategoryNotFound
	}
	return nil
}

func fromInput(userID uuid.UUID, in Input) (Budget, error) {
	date, err := dateparse.Parse(in.Date)
	if err != nil {
		return Budget{}, ErrInvalidDate
	}
	return Budget{
		UserID:   userID,
		Name:     in.Name,
		TripType: in.TripType,
		Currency: in.Currency,
		Date:     date,
		Amount:   in.Amount,
	}, nil
}
