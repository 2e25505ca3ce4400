package checklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/apperr"
	"travelplanner/internal/utils/dateparse"
)

var (
	ErrNotFound    = apperr.NotFound("Checklist item not found")
	ErrInvalidDate = apperr.Validation("Invalid due date format")
)

type Item struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	DueDate   time.Time `json:"dueDate"`
}

type Input struct {
	Name      string `json:"name" minLength:"1" maxLength:"200"`
	Completed *bool  `json:"completed,omitempty" doc:"Игнорируется при создании; без поля PUT сохраняет текущее значение"`
	DueDate   string `json:"dueDate" example:"2026-06-30"`
}

// Repository scopes every write by owner: Update and Delete return
// ErrNotFound when the item does not exist or belongs to someone else.
// Update keeps the stored completed flag when completed is nil and fills
// it.Completed with the resulting value.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	List(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, it *Item, completed *bool) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID, in Input) (Item, error)
	List(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, userID, id uuid.UUID, in Input) (Item, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "checklist_service")}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (Item, error) {
	due, err := dateparse.Parse(in.DueDate)
	if err != nil {
		return Item{}, ErrInvalidDate
	}

	it := Item{UserID: userID, Name: in.Name, DueDate: due}
	if err := s.repo.Create(ctx, &it); err != nil {
		return Item{}, fmt.Errorf("create checklist item: %w", err)
	}
	return it, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list checklist: %w", err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (Item, error) {
	due, err := dateparse.Parse(in.DueDate)
	if err != nil {
		return Item{}, ErrInvalidDate
	}

	it := Item{ID: id, UserID: userID, Name: in.Name, DueDate: due}
	if err := s.repo.Update(ctx, &it, in.Completed); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("update checklist item: %w", err)
	}
	return it, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete checklist item: %w", err)
	}
	s.log.Debug("checklist item deleted", "item_id", id)
	return nil
}
