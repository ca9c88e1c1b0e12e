package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/shared"
)

func TestMemoryRepository_MissingTable(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.List(ctx)
	assert.True(t, errors.Is(err, shared.ErrTableNotFound))

	err = repo.SetAdoptedCard(ctx, "alice", "01FC05")
	assert.True(t, errors.Is(err, shared.ErrTableNotFound))
}

func TestMemoryRepository_SetAdoptedCard(t *testing.T) {
	repo := NewMemoryRepositoryWith([]model.User{
		{Username: "alice"},
		{Username: "bob"},
	})
	ctx := context.Background()

	require.NoError(t, repo.SetAdoptedCard(ctx, "bob", "02FC08"))
	require.NoError(t, repo.SetAdoptedCard(ctx, "ghost", "03FC12"))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users[0].AdoptedCard)
	assert.Equal(t, "02FC08", users[1].AdoptedCard)
	assert.Len(t, users, 2)
}

func TestMemoryRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryRepositoryWith([]model.User{{Username: "alice"}})

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	users[0].AdoptedCard = "tampered"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again[0].AdoptedCard)
}

func TestMemoryRepository_ImportUpserts(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, []model.User{
		{Username: "alice", Password: "1"},
		{Username: "bob", Password: "2"},
	}))
	require.NoError(t, repo.Import(ctx, []model.User{
		{Username: "carol", Password: "3"},
		{Username: "alice", Password: "changed"},
	}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "changed", users[0].Password)
	assert.Equal(t, "carol", users[2].Username)
}

func TestLoadMemoryRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name":"Alice Vidal","username":"alice","password":"secret","displayName":"Alice","adoptedCard":""}
	]`), 0o600))

	repo, err := LoadMemoryRepository(path)
	require.NoError(t, err)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].DisplayName)
}

func TestLoadMemoryRepository_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := LoadMemoryRepository(path)
	assert.Error(t, err)

	_, err = LoadMemoryRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
