// Package users persists credential records. SQLite and PostgreSQL
// implementations share one Repository contract; both enforce
// case-insensitive uniqueness of username and email with unique indexes
// and translate violations into common.ErrDuplicateUsername and
// common.ErrDuplicateEmail.
package users
