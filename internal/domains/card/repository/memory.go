package repository

import (
	"context"
	"fmt"
	"sync"

	"fotoscavet-backend/internal/domains/card/model"
	"fotoscavet-backend/internal/shared"
)

// MemoryRepository keeps the Cards table in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	cards  []model.Card
	exists bool
}

// NewMemoryRepository returns a repository whose table has not been set up.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// NewMemoryRepositoryWith returns a set-up table holding cards in order.
func NewMemoryRepositoryWith(cards []model.Card) *MemoryRepository {
	rows := make([]model.Card, len(cards))
	copy(rows, cards)
	return &MemoryRepository{cards: rows, exists: true}
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.exists {
		return nil, fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}

	out := make([]model.Card, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, cardID string) (*model.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.exists {
		return nil, fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}

	for _, c := range r.cards {
		if c.CardID == cardID {
			found := c
			return &found, nil
		}
	}
	return nil, model.ErrCardNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, cardID string, upd model.CardUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists {
		return fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}

	for i := range r.cards {
		if r.cards[i].CardID == cardID {
			upd.Apply(&r.cards[i])
			return nil
		}
	}
	return model.ErrCardNotFound
}

func (r *MemoryRepository) Seed(ctx context.Context, seeds []model.CardSeed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cards := make([]model.Card, 0, len(seeds))
	for _, s := range seeds {
		cards = append(cards, s.ToCard())
	}
	r.cards = cards
	r.exists = true
	return nil
}
