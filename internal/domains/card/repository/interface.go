package repository

import (
	"context"

	"fotoscavet-backend/internal/domains/card/model"
)

// Repository is the Cards table. Reads always hit the backing store.
//
// All methods except Seed return an error wrapping shared.ErrTableNotFound
// when the table has not been set up.
type Repository interface {
	// List returns all cards in seed order.
	List(ctx context.Context) ([]model.Card, error)

	// GetByID returns model.ErrCardNotFound when no row has cardID.
	GetByID(ctx context.Context, cardID string) (*model.Card, error)

	// Update writes the non-nil fields of upd on the row with cardID.
	// Returns model.ErrCardNotFound when no row has cardID.
	Update(ctx context.Context, cardID string, upd model.CardUpdate) error

	// Seed creates the table when missing and overwrites every row with
	// the blank cards of seeds, in order.
	Seed(ctx context.Context, seeds []model.CardSeed) error
}
