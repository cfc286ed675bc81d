package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertQ  = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*username,\s*username_key,\s*email,\s*email_key,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+created_at\s*$`
	findQ    = `(?s)^SELECT\s+id,\s*username,\s*email,\s*password,\s*created_at\s+FROM\s+users\s+WHERE\s+username_key\s*=\s*\$1\s+OR\s+email_key\s*=\s*\$1\s*$`
	getByIDQ = `(?s)^SELECT\s+id,\s*username,\s*email,\s*password,\s*created_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	existsUQ = `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+username_key\s*=\s*\$1\)$`
	existsEQ = `(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+email_key\s*=\s*\$1\)$`
	updateQ  = `(?s)^UPDATE\s+users\s+SET\s+username\s*=\s*\$1,\s*username_key\s*=\s*\$2,\s*email\s*=\s*\$3,\s*email_key\s*=\s*\$4,\s*password\s*=\s*\$5\s+WHERE\s+id\s*=\s*\$6\s*$`
	deleteQ  = `^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at"})
}

func TestPostgres_Create_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WithArgs("u1", "Alice", "alice", "Alice@X.com", "alice@x.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(fixedTime))

	u := &models.User{ID: "u1", Username: "Alice", Email: "Alice@X.com", PasswordHash: "hash"}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "u1" || !got.CreatedAt.Equal(fixedTime) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgres_Create_UniqueViolations(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{usernameIndex, common.ErrDuplicateUsername},
		{emailIndex, common.ErrDuplicateEmail},
	}

	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(insertQ).
				WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: tc.constraint})

			_, err := repo.Create(context.Background(), &models.User{ID: "u1", Username: "a", Email: "a@x.com", PasswordHash: "h"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPostgres_Create_OtherPgErrorIsStorage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23502", ConstraintName: "x"})

	_, err := repo.Create(context.Background(), &models.User{ID: "u1"})
	if !errors.Is(err, common.ErrorStorage) {
		t.Fatalf("want storage error, got %v", err)
	}
}

func TestPostgres_FindByIdentity(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(findQ).
		WithArgs("émile").
		WillReturnRows(userRows().AddRow("u1", "alice", "alice@x.com", "hash", fixedTime))

	got, err := repo.FindByIdentity(context.Background(), " ÉMILE ")
	if err != nil {
		t.Fatalf("FindByIdentity error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "u1" || got[0].Email != "alice@x.com" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestPostgres_FindByIdentity_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(findQ).WithArgs("alice").WillReturnError(errors.New("db down"))

	_, err := repo.FindByIdentity(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	if !errors.Is(err, common.ErrorStorage) {
		t.Fatalf("want ErrorStorage, got %v", err)
	}
}

func TestPostgres_GetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getByIDQ).
		WithArgs("u1").
		WillReturnRows(userRows().AddRow("u1", "alice", "alice@x.com", "hash", fixedTime))

	got, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestPostgres_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(getByIDQ).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestPostgres_Exists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(existsUQ).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(existsEQ).WithArgs("bob@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.ExistsByUsername(context.Background(), "ALICE")
	if err != nil || !ok {
		t.Fatalf("ExistsByUsername = %v, %v", ok, err)
	}
	ok, err = repo.ExistsByEmail(context.Background(), "Bob@X.com")
	if err != nil || ok {
		t.Fatalf("ExistsByEmail = %v, %v", ok, err)
	}
}

func TestPostgres_Update(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(updateQ).
		WithArgs("Alicia", "alicia", "alicia@x.com", "alicia@x.com", "h2", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateQ).
		WithArgs("ghost", "ghost", "g@x.com", "g@x.com", "h", "nope").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(updateQ).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: emailIndex})

	if err := repo.Update(context.Background(), &models.User{ID: "u1", Username: "Alicia", Email: "alicia@x.com", PasswordHash: "h2"}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	err := repo.Update(context.Background(), &models.User{ID: "nope", Username: "ghost", Email: "g@x.com", PasswordHash: "h"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	err = repo.Update(context.Background(), &models.User{ID: "u1", Username: "a", Email: "bob@x.com", PasswordHash: "h"})
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("want ErrDuplicateEmail, got %v", err)
	}
}

func TestPostgres_Delete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteQ).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteQ).WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteQ).WithArgs("u2").WillReturnError(errors.New("db err"))

	if err := repo.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), "u1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if err := repo.Delete(context.Background(), "u2"); !errors.Is(err, common.ErrorStorage) {
		t.Fatalf("want ErrorStorage, got %v", err)
	}
}
