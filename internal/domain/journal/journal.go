package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/apperr"
)

var ErrNotFound = apperr.NotFound("Journal entry not found")

type Entry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type Input struct {
	Title    string `json:"title" minLength:"1" maxLength:"200"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"imageUrl,omitempty" format:"uri"`
}

// Repository ограничивает Update и Delete владельцем записи.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	List(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID, in Input) (Entry, error)
	List(ctx context.Context, userID uuid.UUID) ([]Entry, error)
	Update(ctx context.Context, userID, id uuid.UUID, in Input) (Entry, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "journal_service")}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (Entry, error) {
	e := Entry{UserID: userID, Title: in.Title, Content: in.Content, ImageURL: in.ImageURL}
	if err := s.repo.Create(ctx, &e); err != nil {
		s.log.Error("failed to create journal entry", "user_id", userID, "error", err)
		return Entry{}, fmt.Errorf("create journal entry: %w", err)
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Entry, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return entries, nil
}

// Update rewrites title, content and image; CreatedAt is filled back from the store.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (Entry, error) {
	e := Entry{ID: id, UserID: userID, Title: in.Title, Content: in.Content, ImageURL: in.ImageURL}
	if err := s.repo.Update(ctx, &e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("update journal entry: %w", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return nil
}
