package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case usernameIndex:
			return common.ErrDuplicateUsername
		case emailIndex:
			return common.ErrDuplicateEmail
		}
	}
	return storageError(err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, username, username_key, email, email_key, password)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, Key(user.Username), user.Email, Key(user.Email), user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByIdentity(ctx context.Context, identity string) ([]*models.User, error) {
	query :=
		`SELECT id, username, email, password, created_at FROM users
		 WHERE username_key = $1 OR email_key = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, Key(identity))
	if err != nil {
		return nil, storageError(err)
	}
	return collectUsers(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password, created_at FROM users
		 WHERE id = $1
		 `

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return u, nil
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username_key = $1)`, Key(username))
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email_key = $1)`, Key(email))
}

func (r *PostgresRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, storageError(err)
	}
	return found, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users SET username = $1, username_key = $2, email = $3, email_key = $4, password = $5
		 WHERE id = $6
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.Username, Key(user.Username), user.Email, Key(user.Email), user.PasswordHash, user.ID)
	if err != nil {
		return mapPgError(err)
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return storageError(err)
	}
	return checkAffected(res)
}
