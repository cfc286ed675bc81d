package users

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id           TEXT PRIMARY KEY,
  username     TEXT NOT NULL,
  username_key TEXT NOT NULL,
  email        TEXT NOT NULL,
  email_key    TEXT NOT NULL,
  password     TEXT NOT NULL,
  created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX users_username_key ON users (username_key);
CREATE UNIQUE INDEX users_email_key ON users (email_key);`)
	require.NoError(t, err)
	return db
}

func newUser(id, username, email string) *models.User {
	return &models.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "hash-" + id,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSQLite_CreateAndGetByID(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@x.com", got.Email)
	assert.Equal(t, "hash-u1", got.PasswordHash)
	assert.True(t, got.CreatedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestSQLite_GetByID_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_Create_DuplicatesAreCaseInsensitive(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)

	_, err = r.Create(ctx, newUser("u2", "ALICE", "other@x.com"))
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)

	_, err = r.Create(ctx, newUser("u3", "bob", "Alice@X.com"))
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)
}

func TestSQLite_NonASCIICaseVariants(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "Émile", "émile@x.com"))
	require.NoError(t, err)

	_, err = r.Create(ctx, newUser("u2", "émile", "other@x.com"))
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)

	_, err = r.Create(ctx, newUser("u3", "bob", "ÉMILE@x.com"))
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	ok, err := r.ExistsByUsername(ctx, "ÉMILE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsByEmail(ctx, "E\u0301mile@X.com")
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := r.FindByIdentity(ctx, "émile")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "u1", found[0].ID)
	assert.Equal(t, "Émile", found[0].Username)

	_, err = r.Create(ctx, newUser("u4", "Straße", "s@x.com"))
	require.NoError(t, err)
	require.NoError(t, r.Update(ctx, newUser("u4", "STRASSE", "s@x.com")))
	assert.ErrorIs(t, r.Update(ctx, newUser("u4", "ÉMILE", "s@x.com")), common.ErrDuplicateUsername)
}

func TestSQLite_FindByIdentity(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newUser("u2", "bob", "bob@x.com"))
	require.NoError(t, err)

	byName, err := r.FindByIdentity(ctx, "Alice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "u1", byName[0].ID)

	byEmail, err := r.FindByIdentity(ctx, "BOB@x.com")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "u2", byEmail[0].ID)

	none, err := r.FindByIdentity(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_Exists(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)

	ok, err := r.ExistsByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.ExistsByEmail(ctx, "alice@X.COM")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.ExistsByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_Update(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)
	_, err = r.Create(ctx, newUser("u2", "bob", "bob@x.com"))
	require.NoError(t, err)

	u := newUser("u1", "alicia", "alicia@x.com")
	u.PasswordHash = "new-hash"
	require.NoError(t, r.Update(ctx, u))

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alicia", got.Username)
	assert.Equal(t, "alicia@x.com", got.Email)
	assert.Equal(t, "new-hash", got.PasswordHash)

	assert.ErrorIs(t, r.Update(ctx, newUser("u1", "BOB", "alicia@x.com")), common.ErrDuplicateUsername)
	assert.ErrorIs(t, r.Update(ctx, newUser("u1", "alicia", "bob@x.com")), common.ErrDuplicateEmail)
	assert.ErrorIs(t, r.Update(ctx, newUser("ghost", "g", "g@x.com")), common.ErrorNotFound)
}

func TestSQLite_Delete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Create(ctx, newUser("u1", "alice", "alice@x.com"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, "u1"))
	assert.ErrorIs(t, r.Delete(ctx, "u1"), common.ErrorNotFound)

	_, err = r.GetByID(ctx, "u1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSQLite_ClosedDB_IsStorageError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.Create(context.Background(), newUser("u1", "alice", "alice@x.com"))
	assert.ErrorIs(t, err, common.ErrorStorage)

	_, err = r.ExistsByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, common.ErrorStorage)

	_, err = r.FindByIdentity(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrorStorage)
}
