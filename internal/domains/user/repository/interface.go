package repository

import (
	"context"

	"fotoscavet-backend/internal/domains/user/model"
)

// Repository is the Users table. Every call reads the backing store;
// nothing is cached between calls.
//
// All methods return an error wrapping shared.ErrTableNotFound when the
// table has not been provisioned.
type Repository interface {
	// List returns every user in row order.
	List(ctx context.Context) ([]model.User, error)

	// SetAdoptedCard writes AdoptedCard on the first row whose username
	// matches. A username with no row is a no-op.
	SetAdoptedCard(ctx context.Context, username, cardID string) error

	// Import creates the table when missing and upserts users by username,
	// appending new usernames after the existing rows.
	Import(ctx context.Context, users []model.User) error
}
