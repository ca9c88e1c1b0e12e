package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fotoscavet-backend/internal/domains/user/model"
	"fotoscavet-backend/internal/shared"
)

func newPostgresRepoWithMock(t *testing.T) (Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock), mock
}

var userColumns = []string{"name", "username", "password", "display_name", "adopted_card"}

func TestPostgresList(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectQuery(`FROM users\s+ORDER BY position`).
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow("Alice Vidal", "alice", "secret", "Alice", "01FC05").
			AddRow("", "bob", "pw", "", ""))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.User{
		{Name: "Alice Vidal", Username: "alice", Password: "secret", DisplayName: "Alice", AdoptedCard: "01FC05"},
		{Username: "bob", Password: "pw"},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_UndefinedTable(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectQuery(`FROM users`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`})

	_, err := repo.List(context.Background())
	assert.True(t, errors.Is(err, shared.ErrTableNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList_OtherError(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectQuery(`FROM users`).WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, shared.ErrTableNotFound))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresSetAdoptedCard(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(updateAdoptedCard)).
		WithArgs("01FC05", "alice").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetAdoptedCard(context.Background(), "alice", "01FC05"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetAdoptedCard_UnknownUserIsNoop(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(updateAdoptedCard)).
		WithArgs("", "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.SetAdoptedCard(context.Background(), "ghost", ""))
}

func TestPostgresImport(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("Alice Vidal", "alice", "secret", "Alice", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("", "bob", "pw", "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := repo.Import(context.Background(), []model.User{
		{Name: "Alice Vidal", Username: "alice", Password: "secret", DisplayName: "Alice"},
		{Username: "bob", Password: "pw"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresImport_RollsBack(t *testing.T) {
	repo, mock := newPostgresRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("", "alice", "secret", "", "").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Import(context.Background(), []model.User{{Username: "alice", Password: "secret"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}
