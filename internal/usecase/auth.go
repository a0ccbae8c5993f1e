package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/authgate/internal/domain/errors"
	"github.com/polkiloo/authgate/internal/domain/model"
	"github.com/polkiloo/authgate/internal/domain/repository"
	pkgAuth "github.com/polkiloo/authgate/internal/pkg/auth"
)

// AuthUseCase handles user registration, credential checks and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register validates registration input and creates the user. No token is
// issued on registration; clients log in afterwards.
//
// The duplicate-email check is a plain lookup before insert: two concurrent
// registrations for the same email can both pass it. The store carries no
// uniqueness constraint either, so the race is observable.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password, confirmPassword string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidName
	}
	if email == "" || !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}
	if password == "" || password != confirmPassword {
		return nil, domainErrors.ErrPasswordMismatch
	}

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, name, email, hash)
}

// Authenticate validates credentials and returns the user with a signed token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" {
		return nil, "", domainErrors.ErrInvalidEmail
	}
	if password == "" {
		return nil, "", domainErrors.ErrMissingPassword
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidPassword
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies the token signature and returns the embedded user id.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
