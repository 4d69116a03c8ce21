package contracts

import (
	"context"
	"medora-portal/internal/app/models"
)

// PageLoader fetches what one page shows. It must not touch the session;
// a 401 is reported by returning the error.
type PageLoader interface {
	Load(ctx context.Context, session models.Session, params map[string]string) (interface{}, error)
}

type PageLoaderFunc func(ctx context.Context, session models.Session, params map[string]string) (interface{}, error)

func (f PageLoaderFunc) Load(ctx context.Context, session models.Session, params map[string]string) (interface{}, error) {
	return f(ctx, session, params)
}

type Navigator interface {
	Navigate(ctx context.Context, page models.Page, params map[string]string) (models.NavigationState, error)
	Refresh(ctx context.Context) (models.NavigationState, error)
	State() models.NavigationState
	HandleSessionEvent(ctx context.Context, event models.SessionEvent, session models.Session)
}
