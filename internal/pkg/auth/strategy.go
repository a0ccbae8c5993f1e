package auth

import "time"

// Strategy issues and verifies signed bearer tokens carrying a user id.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

// Options tunes strategy construction. A zero TTL means tokens never expire.
type Options struct {
	TTL time.Duration
}
