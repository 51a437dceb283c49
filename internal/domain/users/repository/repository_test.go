package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Тест запускается только при заданном TEST_DATABASE_URL
func TestUserRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    telegram_id BIGINT NOT NULL UNIQUE,
    telegram_username TEXT NOT NULL DEFAULT '',
    telegram_first_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	require.NoError(t, err)

	const tgID = int64(-424242)
	cleanup := func() { _, _ = db.Exec(ctx, `DELETE FROM users WHERE telegram_id = $1`, tgID) }
	cleanup()
	t.Cleanup(cleanup)

	repo := NewUserRepository(db)

	u, err := repo.GetUserByTelegramID(ctx, tgID)
	require.NoError(t, err)
	assert.Nil(t, u)

	id, err := repo.CreateUser(ctx, tgID, "ann", "Ann")
	require.NoError(t, err)
	again, err := repo.CreateUser(ctx, tgID, "ann_q", "Anna")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	u, err = repo.GetUserByTelegramID(ctx, tgID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "ann_q", u.TelegramUsername)
	assert.Equal(t, "Anna", u.TelegramFirstName)
}
