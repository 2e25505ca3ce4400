package itinerary

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
	Create(ctx context.Context, userID uuid.UUID, in Input) (Itinerary, error)
	List(ctx context.Context, userID uuid.UUID) ([]Itinerary, error)
	Get(ctx context.Context, userID, id uuid.UUID) (Itinerary, error)
	Update(ctx context.Context, userID, id uuid.UUID, in Input) (Itinerary, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "itinerary_service")}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (Itinerary, error) {
	it, err := fromInput(userID, in)
	if err != nil {
		return Itinerary{}, err
	}

	it.Activities = make([]Activity, 0, len(in.Activities))
	for _, ai := range in.Activities {
		a, err := ai.toActivity(uuid.Nil)
		if err != nil {
			return Itinerary{}, err
		}
		a.ID = uuid.Nil
		it.Activities = append(it.Activities, a)
	}

	if err := s.repo.Create(ctx, &it); err != nil {
		s.log.Error("failed to create itinerary", "user_id", userID, "error", err)
		return Itinerary{}, fmt.Errorf("create itinerary: %w", err)
	}
	s.log.Info("itinerary created", "itinerary_id", it.ID, "activities", len(it.Activities))
	return it, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Itinerary, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (Itinerary, error) {
	return s.owned(ctx, userID, id)
}

// Update перезаписывает поля маршрута и приводит список активностей к присланному.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (Itinerary, error) {
	current, err := s.owned(ctx, userID, id)
	if err != nil {
		return Itinerary{}, err
	}

	it, err := fromInput(userID, in)
	if err != nil {
		return Itinerary{}, err
	}
	it.ID = current.ID

	submitted := make([]Activity, 0, len(in.Activities))
	for _, ai := range in.Activities {
		a, err := ai.toActivity(id)
		if err != nil {
			return Itinerary{}, err
		}
		submitted = append(submitted, a)
	}

	plan := reconcile.Diff(current.Activities, submitted, activityID, activityID)
	if len(plan.Unknown) > 0 {
		s.log.Warn("unknown activity ids submitted, treating as new",
			"itinerary_id", id, "user_id", userID, "ids", plan.Unknown)
	}
	for i := range plan.Create {
		plan.Create[i].ID = uuid.Nil
	}

	if err := s.repo.Update(ctx, &it, plan); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Itinerary{}, ErrNotFound
		}
		s.log.Error("failed to update itinerary", "itinerary_id", id, "error", err)
		return Itinerary{}, fmt.Errorf("update itinerary: %w", err)
	}

	metrics.ObserveReconcile("itinerary", len(plan.Create), len(plan.Update), len(plan.Delete))
	s.log.Info("itinerary updated", "itinerary_id", id,
		"created", len(plan.Create), "updated", len(plan.Update), "deleted", len(plan.Delete))
	return it, nil
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete itinerary: %w", err)
	}
	return nil
}

func (s *Service) owned(ctx context.Context, userID, id uuid.UUID) (Itinerary, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Itinerary{}, ErrNotFound
		}
		return Itinerary{}, fmt.Errorf("get itinerary: %w", err)
	}
	if it.UserID != userID {
		s.log.Warn("itinerary access denied", "itinerary_id", id, "user_id", userID)
		return Itinerary{}, ErrForbidden
	}
	return it, nil
}

func fromInput(userID uuid.UUID, in Input) (Itinerary, error) {
	start, err := dateparse.Parse(in.StartDate)
	if err != nil {
		return Itinerary{}, ErrInvalidDate
	}
	end, err := dateparse.Parse(in.EndDate)
	if err != nil {
		return Itinerary{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Itinerary{}, ErrDateRange
	}
	date, err := dateparse.Parse(in.Date)
	if err != nil {
		return Itinerary{}, ErrInvalidDate
	}

	return Itinerary{
		UserID:      userID,
		TripName:    in.TripName,
		StartDate:   start,
		EndDate:     end,
		Type:        in.Type,
		Name:        in.Name,
		Description: in.Description,
		Date:        date,
		Time:        in.Time,
	}, nil
}
