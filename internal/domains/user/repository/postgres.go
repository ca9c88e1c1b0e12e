package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/infrastructure/database"
	"fotoscavet-backend/internal/shared"
)

// Pool is what the PostgreSQL repository needs from pgxpool.
type Pool interface {
	database.DBTX
	database.TxBeginner
}

const (
	createUsersTable = `
        CREATE TABLE IF NOT EXISTS users (
            position     BIGSERIAL,
            username     TEXT PRIMARY KEY,
            name         TEXT NOT NULL DEFAULT '',
            password     TEXT NOT NULL DEFAULT '',
            display_name TEXT NOT NULL DEFAULT '',
            adopted_card TEXT NOT NULL DEFAULT ''
        )`

	listUsers = `
        SELECT name, username, password, display_name, adopted_card
        FROM users
        ORDER BY position`

	updateAdoptedCard = `UPDATE users SET adopted_card = $1 WHERE username = $2`

	upsertUser = `
        INSERT INTO users (name, username, password, display_name, adopted_card)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (username) DO UPDATE SET
            name = EXCLUDED.name,
            password = EXCLUDED.password,
            display_name = EXCLUDED.display_name,
            adopted_card = EXCLUDED.adopted_card`
)

type postgresRepository struct {
	pool Pool
}

func NewPostgresRepository(pool Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, listUsers)
	if err != nil {
		return nil, wrapErr("failed to list users", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Name, &u.Username, &u.Password, &u.DisplayName, &u.AdoptedCard); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate users", err)
	}

	return users, nil
}

// SetAdoptedCard relies on username being the primary key, so at most one row matches.
func (r *postgresRepository) SetAdoptedCard(ctx context.Context, username, cardID string) error {
	if _, err := r.pool.Exec(ctx, updateAdoptedCard, cardID, username); err != nil {
		return wrapErr("failed to update adopted card", err)
	}
	return nil
}

func (r *postgresRepository) Import(ctx context.Context, users []model.User) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, createUsersTable); err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}
		for _, u := range users {
			if _, err := tx.Exec(ctx, upsertUser, u.Name, u.Username, u.Password, u.DisplayName, u.AdoptedCard); err != nil {
				return fmt.Errorf("failed to upsert user %s: %w", u.Username, err)
			}
		}
		return nil
	})
}

func wrapErr(msg string, err error) error {
	if database.IsUndefinedTable(err) {
		return fmt.Errorf("users: %w", shared.ErrTableNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
