// Package reconcile converges the stored children of a parent record
// (activities of an itinerary, categories of a budget) to a client-submitted set.
package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Plan is the result of Diff. Create and Update hold submitted entries,
// Delete holds stored ones. Unknown lists identities the client sent that
// do not belong to the parent; those entries are in Create.
type Plan[E, S any] struct {
	Create  []S
	Update  []S
	Delete  []E
	Unknown []uuid.UUID
}

// Empty reports whether applying the plan would touch nothing.
func (p Plan[E, S]) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// Diff computes which submitted entries update an existing child, which are
// new, and which existing children are no longer wanted. uuid.Nil means the
// entry carries no identity.
func Diff[E, S any](existing []E, submitted []S, existingID func(E) uuid.UUID, submittedID func(S) uuid.UUID) Plan[E, S] {
	known := make(map[uuid.UUID]struct{}, len(existing))
	remaining := make(map[uuid.UUID]struct{}, len(existing))
	for _, e := range existing {
		id := existingID(e)
		known[id] = struct{}{}
		remaining[id] = struct{}{}
	}

	var plan Plan[E, S]
	for _, s := range submitted {
		id := submittedID(s)
		if id == uuid.Nil {
			plan.Create = append(plan.Create, s)
			continue
		}
		if _, ok := known[id]; ok {
			plan.Update = append(plan.Update, s)
			delete(remaining, id)
			continue
		}
		plan.Unknown = append(plan.Unknown, id)
		plan.Create = append(plan.Create, s)
	}

	for _, e := range existing {
		if _, ok := remaining[existingID(e)]; ok {
			plan.Delete = append(plan.Delete, e)
		}
	}

	return plan
}

// Applier performs the individual child writes of a plan, usually bound to a
// transaction and to the parent identity.
type Applier[E, S any] interface {
	DeleteChild(ctx context.Context, child E) error
	UpdateChild(ctx context.Context, child S) error
	CreateChild(ctx context.Context, child S) error
}

// Apply runs deletions, then updates, then creations, stopping at the first error.
func Apply[E, S any](ctx context.Context, plan Plan[E, S], a Applier[E, S]) error {
	for _, e := range plan.Delete {
		if err := a.DeleteChild(ctx, e); err != nil {
			return fmt.Errorf("delete child: %w", err)
		}
	}
	for _, s := range plan.Update {
		if err := a.UpdateChild(ctx, s); err != nil {
			return fmt.Errorf("update child: %w", err)
		}
	}
	for _, s := range plan.Create {
		if err := a.CreateChild(ctx, s); err != nil {
			return fmt.Errorf("create child: %w", err)
		}
	}
	return nil
}
