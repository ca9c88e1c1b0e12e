package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/shared"
)

// Hash fields of a user row.
const (
	fieldName        = "name"
	fieldUsername    = "username"
	fieldPassword    = "password"
	fieldDisplayName = "displayName"
	fieldAdoptedCard = "adoptedCard"
)

// redisRepository stores the table as a list of usernames (row order)
// at <prefix>:users:index plus one hash per user at <prefix>:user:<username>.
type redisRepository struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisRepository(client redis.UniversalClient, prefix string) Repository {
	return &redisRepository{client: client, prefix: prefix}
}

func (r *redisRepository) indexKey() string {
	return r.prefix + ":users:index"
}

func (r *redisRepository) userKey(username string) string {
	return r.prefix + ":user:" + username
}

func (r *redisRepository) List(ctx context.Context) ([]model.User, error) {
	usernames, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read users index: %w", err)
	}
	if len(usernames) == 0 {
		return nil, fmt.Errorf("users: %w", shared.ErrTableNotFound)
	}

	cmds := make([]*redis.MapStringStringCmd, len(usernames))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, username := range usernames {
			cmds[i] = pipe.HGetAll(ctx, r.userKey(username))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	users := make([]model.User, 0, len(usernames))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		users = append(users, model.User{
			Name:        fields[fieldName],
			Username:    fields[fieldUsername],
			Password:    fields[fieldPassword],
			DisplayName: fields[fieldDisplayName],
			AdoptedCard: fields[fieldAdoptedCard],
		})
	}
	return users, nil
}

func (r *redisRepository) SetAdoptedCard(ctx context.Context, username, cardID string) error {
	tables, err := r.client.Exists(ctx, r.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to read users index: %w", err)
	}
	if tables == 0 {
		return fmt.Errorf("users: %w", shared.ErrTableNotFound)
	}

	found, err := r.client.Exists(ctx, r.userKey(username)).Result()
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if found == 0 {
		return nil
	}

	if err := r.client.HSet(ctx, r.userKey(username), fieldAdoptedCard, cardID).Err(); err != nil {
		return fmt.Errorf("failed to update adopted card: %w", err)
	}
	return nil
}

func (r *redisRepository) Import(ctx context.Context, users []model.User) error {
	existing, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read users index: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, username := range existing {
		known[username] = true
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, u := range users {
			pipe.HSet(ctx, r.userKey(u.Username),
				fieldName, u.Name,
				fieldUsername, u.Username,
				fieldPassword, u.Password,
				fieldDisplayName, u.DisplayName,
				fieldAdoptedCard, u.AdoptedCard,
			)
			if !known[u.Username] {
				pipe.RPush(ctx, r.indexKey(), u.Username)
				known[u.Username] = true
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import users: %w", err)
	}
	return nil
}
