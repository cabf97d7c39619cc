package store

import (
	"context"

	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
)

// UserStore defines the interface for user document persistence.
// Implementations perform exactly one round trip to the backing store per
// call and do no business validation.
type UserStore interface {
	// List returns every stored user in the store's default order.
	// An empty collection yields an empty, non-nil slice.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by its identifier.
	// Returns ErrUserNotFound if no user matches, including when id is not
	// in the store's identifier format.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Create inserts a new user document. The store assigns the identifier.
	// Returns the stored record including the generated ID.
	Create(ctx context.Context, fields domain.UserFields) (*domain.User, error)

	// Update writes every field in fields to the matching document, nil
	// values included, and returns the record as it is after the write.
	// Returns ErrUserNotFound if no user matches.
	Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error)

	// Delete removes the matching document permanently and returns the
	// record as it was immediately before deletion.
	// Returns ErrUserNotFound if no user matches.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
