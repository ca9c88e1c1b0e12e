package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"fotoscavet-backend/internal/domains/card/model"
	"fotoscavet-backend/internal/shared"
)

// Hash fields of a card row.
const (
	fieldCardID         = "cardId"
	fieldPhotoID        = "photoId"
	fieldCommonName     = "commonName"
	fieldScientificName = "scientificName"
	fieldComment        = "comment"
	fieldFotoAuthor     = "fotoAuthor"
	fieldCardAuthor     = "cardAuthor"
	fieldLastModified   = "lastModified"
)

// redisRepository keeps card ids in seed order at <prefix>:cards:index
// and one hash per card at <prefix>:card:<cardId>. Rows live outside the
// index namespace so no card id can collide with the index key.
type redisRepository struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisRepository(client redis.UniversalClient, prefix string) Repository {
	return &redisRepository{client: client, prefix: prefix}
}

func (r *redisRepository) indexKey() string {
	return r.prefix + ":cards:index"
}

func (r *redisRepository) cardKey(cardID string) string {
	return r.prefix + ":card:" + cardID
}

func (r *redisRepository) List(ctx context.Context) ([]model.Card, error) {
	ids, err := r.client.LRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cards index: %w", err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.cardKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}

	cards := make([]model.Card, 0, len(ids))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		cards = append(cards, cardFromHash(fields))
	}
	return cards, nil
}

func (r *redisRepository) GetByID(ctx context.Context, cardID string) (*model.Card, error) {
	if err := r.requireTable(ctx); err != nil {
		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, r.cardKey(cardID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	if len(fields) == 0 {
		return nil, model.ErrCardNotFound
	}

	card := cardFromHash(fields)
	return &card, nil
}

func (r *redisRepository) Update(ctx context.Context, cardID string, upd model.CardUpdate) error {
	if err := r.requireTable(ctx); err != nil {
		return err
	}

	found, err := r.client.Exists(ctx, r.cardKey(cardID)).Result()
	if err != nil {
		return fmt.Errorf("failed to look up card: %w", err)
	}
	if found == 0 {
		return model.ErrCardNotFound
	}

	var values []any
	add := func(field string, value *string) {
		if value != nil {
			values = append(values, field, *value)
		}
	}
	add(fieldCommonName, upd.CommonName)
	add(fieldComment, upd.Comment)
	add(fieldCardAuthor, upd.CardAuthor)
	add(fieldLastModified, upd.LastModified)

	if len(values) == 0 {
		return nil
	}
	if err := r.client.HSet(ctx, r.cardKey(cardID), values...).Err(); err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}
	return nil
}

// Seed replaces the index and every seeded hash in one MULTI/EXEC, so
// readers never see a half-written table. MULTI/EXEC does not roll back:
// a command that fails inside EXEC leaves the others applied.
// Hashes of cards that drop out of the seed list are left behind but
// are no longer reachable through the index.
func (r *redisRepository) Seed(ctx context.Context, seeds []model.CardSeed) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.indexKey())
		for _, s := range seeds {
			c := s.ToCard()
			pipe.Del(ctx, r.cardKey(c.CardID))
			pipe.HSet(ctx, r.cardKey(c.CardID),
				fieldCardID, c.CardID,
				fieldPhotoID, c.PhotoID,
				fieldCommonName, c.CommonName,
				fieldScientificName, c.ScientificName,
				fieldComment, c.Comment,
				fieldFotoAuthor, c.FotoAuthor,
				fieldCardAuthor, c.CardAuthor,
				fieldLastModified, c.LastModified,
			)
			pipe.RPush(ctx, r.indexKey(), c.CardID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed cards: %w", err)
	}
	return nil
}

func (r *redisRepository) requireTable(ctx context.Context) error {
	n, err := r.client.Exists(ctx, r.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to read cards index: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}
	return nil
}

func cardFromHash(fields map[string]string) model.Card {
	return model.Card{
		CardID:         fields[fieldCardID],
		PhotoID:        fields[fieldPhotoID],
		CommonName:     fields[fieldCommonName],
		ScientificName: fields[fieldScientificName],
		Comment:        fields[fieldComment],
		FotoAuthor:     fields[fieldFotoAuthor],
		CardAuthor:     fields[fieldCardAuthor],
		LastModified:   fields[fieldLastModified],
	}
}
