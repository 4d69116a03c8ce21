package contracts

import (
	"context"
	"medora-portal/internal/app/models"
)

// ClientStorage persists one browser's token and user record under the
// medora_token and medora_user keys. Both are written together and cleared
// together; Load never returns one without the other.
type ClientStorage interface {
	Load(ctx context.Context, clientID string) (token string, user *models.User, err error)
	Save(ctx context.Context, clientID, token string, user *models.User) error
	SaveUser(ctx context.Context, clientID string, user *models.User) error
	Clear(ctx context.Context, clientID string) error
}
