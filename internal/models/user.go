package models

import "time"

// User is a stored credential record. PasswordHash holds the encoded
// argon2id hash, never the password itself.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
