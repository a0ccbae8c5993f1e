package handlers

import (
	"context"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// AuthFacade describes registration and login capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password, confirmPassword string) error
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (string, error)
}

// ProfileFacade exposes user lookup for the profile endpoint.
type ProfileFacade interface {
	Profile(ctx context.Context, id string) (*model.User, error)
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	AuthFacade
	ProfileFacade
}
