package packing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/apperr"
)

var ErrNotFound = apperr.NotFound("Packing item not found")

type Item struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Packed   bool      `json:"packed"`
	TripType string    `json:"tripType"`
}

type Input struct {
	Name     string `json:"name" minLength:"1" maxLength:"200"`
	Category string `json:"category,omitempty" example:"Clothes"`
	Packed   bool   `json:"packed,omitempty"`
	TripType string `json:"tripType,omitempty" example:"beach"`
}

func (in Input) item(userID uuid.UUID) Item {
	return Item{
		UserID:   userID,
		Name:     in.Name,
		Category: in.Category,
		Packed:   in.Packed,
		TripType: in.TripType,
	}
}

type Repository interface {
	Create(ctx context.Context, it *Item) error
	List(ctx context.Context, userID uuid.UUID) ([]Item, error)
	// Update returns ErrNotFound unless the item exists and belongs to it.UserID.
	Update(ctx context.Context, it *Item) error
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
	return &Service{repo: repo, log: log.With("component", "packing_service")}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (Item, error) {
	it := in.item(userID)
	if err := s.repo.Create(ctx, &it); err != nil {
		return Item{}, fmt.Errorf("create packing item: %w", err)
	}
	return it, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list packing items: %w", err)
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (Item, error) {
	it := in.item(userID)
	it.ID = id
	if err := s.repo.Update(ctx, &it); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("update packing item: %w", err)
	}
	return it, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete packing item", "item_id", id, "error", err)
		return fmt.Errorf("delete packing item: %w", err)
	}
	return nil
}
