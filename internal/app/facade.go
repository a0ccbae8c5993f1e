package app

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
	"github.com/polkiloo/authgate/internal/usecase"
)

// AccountFacade is the single entry point the HTTP layer talks to.
type AccountFacade struct {
	auth *usecase.AuthUseCase
}

// NewAccountFacade constructs AccountFacade.
func NewAccountFacade(auth *usecase.AuthUseCase) *AccountFacade {
	return &AccountFacade{auth: auth}
}

// Register creates a new account from the registration payload.
func (f *AccountFacade) Register(ctx context.Context, name, email, password, confirmPassword string) error {
	_, err := f.auth.Register(ctx, name, email, password, confirmPassword)
	return err
}

// Authenticate validates credentials and returns a signed token.
func (f *AccountFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

// ParseToken verifies a bearer token and returns the id it carries.
func (f *AccountFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

// Profile fetches a user by identifier.
func (f *AccountFacade) Profile(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}
