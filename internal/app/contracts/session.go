package contracts

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
)

// SessionReader is what page loaders and the navigation controller need
// from the session manager.
type SessionReader interface {
	Current() models.Session
	// Expire logs the session out after the backend answered 401 to a call
	// made with token. A token that is no longer active is ignored.
	Expire(ctx context.Context, token string)
}

// SessionListener is called after every session transition, outside the
// manager's lock.
type SessionListener func(ctx context.Context, event models.SessionEvent, session models.Session)

type SessionManager interface {
	SessionReader
	Restore(ctx context.Context) models.Session
	Login(ctx context.Context, request *requests.Login) error
	Register(ctx context.Context, request *requests.Register) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, fields models.ProfileFields) (*models.User, error)
	RefreshProfile(ctx context.Context) error
	Subscribe(listener SessionListener)
}
