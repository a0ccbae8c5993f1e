package repository

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// UserRepository describes persistence operations for users. Email lookups
// are exact-match; uniqueness is the caller's concern, not the store's.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}
