// Package common defines shared constants and sentinel errors used across
// ChefTube layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorStorage  = errors.New("storage error")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors, reported per field.
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrWrongCurrentPassword = errors.New("wrong current password")

	// Uniqueness violations.
	ErrDuplicateUsername = errors.New("username already in use")
	ErrDuplicateEmail    = errors.New("email already in use")

	// Settings errors.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
