package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/shared"
)

// MemoryRepository keeps the Users table in process memory.
// The mutex serialises single writes; callers get no multi-step atomicity.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  []model.User
	exists bool
}

// NewMemoryRepository returns a repository whose table does not exist yet.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// NewMemoryRepositoryWith returns a provisioned table holding users in order.
func NewMemoryRepositoryWith(users []model.User) *MemoryRepository {
	rows := make([]model.User, len(users))
	copy(rows, users)
	return &MemoryRepository{users: rows, exists: true}
}

// LoadMemoryRepository reads a JSON array of users from path.
func LoadMemoryRepository(path string) (*MemoryRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}

	return NewMemoryRepositoryWith(users), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.exists {
		return nil, fmt.Errorf("users: %w", shared.ErrTableNotFound)
	}

	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) SetAdoptedCard(ctx context.Context, username, cardID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exists {
		return fmt.Errorf("users: %w", shared.ErrTableNotFound)
	}

	for i := range r.users {
		if r.users[i].Username == username {
			r.users[i].AdoptedCard = cardID
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Import(ctx context.Context, users []model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.exists = true
	for _, u := range users {
		replaced := false
		for i := range r.users {
			if r.users[i].Username == u.Username {
				r.users[i] = u
				replaced = true
				break
			}
		}
		if !replaced {
			r.users = append(r.users, u)
		}
	}
	return nil
}
