package users

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/models"
)

const (
	usernameIndex = "users_username_key"
	emailIndex    = "users_email_key"
)

func storageError(err error) error {
	return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func collectUsers(rows *sql.Rows) ([]*models.User, error) {
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageError(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err)
	}
	return result, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return storageError(err)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageError(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
