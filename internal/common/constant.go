package common

// PasswordMinLength is the minimum password length, counted after trimming
// surrounding whitespace.
const PasswordMinLength = 5

// Field names used as keys in FieldErrors.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmation    = "confirmation"
	FieldCurrentPassword = "current_password"
)

// SessionPreferenceKey is the preferences key under which the
// "keep me logged in" token is stored.
const SessionPreferenceKey = "session_token"

// LanguagePreferenceKey is the preferences key holding the interface
// language as a BCP 47 tag.
const LanguagePreferenceKey = "language"
