package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is implemented by the storage layer. Create and Update report
// ErrEmailTaken on a unique violation, lookups report ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
