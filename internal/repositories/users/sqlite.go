package users

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// mapSQLiteError turns unique index violations into duplicate errors.
// SQLite names the offending key column, not the index.
func mapSQLiteError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		msg := se.Error()
		switch {
		case strings.Contains(msg, "users.username_key"):
			return common.ErrDuplicateUsername
		case strings.Contains(msg, "users.email_key"):
			return common.ErrDuplicateEmail
		}
	}
	return storageError(err)
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, username_key, email, email_key, password, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, Key(user.Username), user.Email, Key(user.Email), user.PasswordHash, user.CreatedAt)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	return user, nil
}

func (r *SQLiteRepository) FindByIdentity(ctx context.Context, identity string) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email, password, created_at FROM users WHERE username_key = ? OR email_key = ?`,
		Key(identity), Key(identity))
	if err != nil {
		return nil, storageError(err)
	}
	return collectUsers(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password, created_at FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return u, nil
}

func (r *SQLiteRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username_key = ?)`, Key(username))
}

func (r *SQLiteRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email_key = ?)`, Key(email))
}

func (r *SQLiteRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, storageError(err)
	}
	return found, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, username_key = ?, email = ?, email_key = ?, password = ? WHERE id = ?`,
		user.Username, Key(user.Username), user.Email, Key(user.Email), user.PasswordHash, user.ID)
	if err != nil {
		return mapSQLiteError(err)
	}
	return checkAffected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return storageError(err)
	}
	return checkAffected(res)
}
