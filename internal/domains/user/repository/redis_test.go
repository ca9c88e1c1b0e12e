package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/shared"
)

func newRedisRepo(t *testing.T) (Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRepository(client, "test"), mr
}

func TestRedisRepository_MissingTable(t *testing.T) {
	repo, _ := newRedisRepo(t)
	ctx := context.Background()

	_, err := repo.List(ctx)
	assert.True(t, errors.Is(err, shared.ErrTableNotFound))

	err = repo.SetAdoptedCard(ctx, "alice", "01FC05")
	assert.True(t, errors.Is(err, shared.ErrTableNotFound))
}

func TestRedisRepository_ImportAndList(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, []model.User{
		{Name: "Alice Vidal", Username: "alice", Password: "secret", DisplayName: "Alice"},
		{Username: "bob", Password: "pw"},
	}))
	require.NoError(t, repo.Import(ctx, []model.User{
		{Username: "alice", Password: "changed"},
		{Username: "carol", Password: "pw"},
	}))

	index, err := mr.List("test:users:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, index)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, model.User{Username: "alice", Password: "changed"}, users[0])
	assert.Equal(t, "carol", users[2].Username)
}

func TestRedisRepository_SetAdoptedCard(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, []model.User{{Username: "alice", Password: "secret"}}))

	require.NoError(t, repo.SetAdoptedCard(ctx, "alice", "01FC05"))
	assert.Equal(t, "01FC05", mr.HGet("test:user:alice", "adoptedCard"))

	require.NoError(t, repo.SetAdoptedCard(ctx, "ghost", "02FC08"))
	assert.False(t, mr.Exists("test:user:ghost"))
}

func TestRedisRepository_UsernameNamedLikeIndex(t *testing.T) {
	repo, mr := newRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, []model.User{
		{Username: "alice", Password: "secret"},
		{Username: "index", Password: "pw"},
	}))
	require.NoError(t, repo.SetAdoptedCard(ctx, "index", "03FC09"))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "index", users[1].Username)
	assert.Equal(t, "03FC09", users[1].AdoptedCard)

	index, err := mr.List("test:users:index")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "index"}, index)
}
