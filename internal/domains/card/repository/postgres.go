package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"fotoscavet-backend/internal/domains/card/model"
	"fotoscavet-backend/internal/infrastructure/database"
	"fotoscavet-backend/internal/shared"
)

// Pool is what the PostgreSQL repository needs from pgxpool.
type Pool interface {
	database.DBTX
	database.TxBeginner
}

const (
	createCardsTable = `
        CREATE TABLE IF NOT EXISTS cards (
            position        INT NOT NULL,
            card_id         TEXT PRIMARY KEY,
            photo_id        TEXT NOT NULL DEFAULT '',
            common_name     TEXT NOT NULL DEFAULT '',
            scientific_name TEXT NOT NULL DEFAULT '',
            comment         TEXT NOT NULL DEFAULT '',
            foto_author     TEXT NOT NULL DEFAULT '',
            card_author     TEXT NOT NULL DEFAULT '',
            last_modified   TEXT NOT NULL DEFAULT ''
        )`

	selectCards = `
        SELECT card_id, photo_id, common_name, scientific_name, comment,
               foto_author, card_author, last_modified
        FROM cards`

	deleteCards = `DELETE FROM cards`

	insertCard = `
        INSERT INTO cards (position, card_id, photo_id)
        VALUES ($1, $2, $3)`
)

type postgresRepository struct {
	pool Pool
}

func NewPostgresRepository(pool Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Card, error) {
	rows, err := r.pool.Query(ctx, selectCards+" ORDER BY position")
	if err != nil {
		return nil, wrapErr("failed to list cards", err)
	}
	defer rows.Close()

	cards := []model.Card{}
	for rows.Next() {
		var c model.Card
		if err := scanCard(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate cards", err)
	}

	return cards, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, cardID string) (*model.Card, error) {
	var c model.Card
	err := scanCard(r.pool.QueryRow(ctx, selectCards+" WHERE card_id = $1", cardID), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCardNotFound
		}
		return nil, wrapErr("failed to get card", err)
	}
	return &c, nil
}

// Update builds the SET list from the non-nil fields only.
func (r *postgresRepository) Update(ctx context.Context, cardID string, upd model.CardUpdate) error {
	if upd.IsEmpty() {
		_, err := r.GetByID(ctx, cardID)
		return err
	}

	var sets []string
	var args []any
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("common_name", upd.CommonName)
	add("comment", upd.Comment)
	add("card_author", upd.CardAuthor)
	add("last_modified", upd.LastModified)

	args = append(args, cardID)
	query := fmt.Sprintf("UPDATE cards SET %s WHERE card_id = $%d", strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return wrapErr("failed to update card", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCardNotFound
	}
	return nil
}

func (r *postgresRepository) Seed(ctx context.Context, seeds []model.CardSeed) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createCardsTable); err != nil {
			return fmt.Errorf("failed to create cards table: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteCards); err != nil {
			return fmt.Errorf("failed to clear cards: %w", err)
		}
		for i, s := range seeds {
			if _, err := tx.Exec(ctx, insertCard, i+1, s.CardID, s.PhotoID); err != nil {
				return fmt.Errorf("failed to insert card %s: %w", s.CardID, err)
			}
		}
		return nil
	})
}

func scanCard(row pgx.Row, c *model.Card) error {
	return row.Scan(
		&c.CardID,
		&c.PhotoID,
		&c.CommonName,
		&c.ScientificName,
		&c.Comment,
		&c.FotoAuthor,
		&c.CardAuthor,
		&c.LastModified,
	)
}

func wrapErr(msg string, err error) error {
	if database.IsUndefinedTable(err) {
		return fmt.Errorf("cards: %w", shared.ErrTableNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
