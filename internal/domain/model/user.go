package model

import "time"

// User represents a registered account. PasswordHash holds the bcrypt digest
// of the credential; the plaintext is never persisted.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
