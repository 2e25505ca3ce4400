package itinerary

import (
	"context"

	"github.com/google/uuid"

	"travelplanner/internal/domain/reconcile"
)

type Plan = reconcile.Plan[Activity, Activity]

type Repository interface {
	Create(ctx context.Context, it *Itinerary) error
	List(ctx context.Context, userID uuid.UUID) ([]Itinerary, error)
	Get(ctx context.Context, id uuid.UUID) (Itinerary, error)
	// Update writes the itinerary row and applies plan in one transaction,
	// then reloads it.Activities.
	Update(ctx context.Context, it *Itinerary, plan Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
}
