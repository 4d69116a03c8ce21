package storage

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()
	user := &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}

	require.NoError(t, store.Save(ctx, "client-a", "token-a", user))

	t.Run("Load Returns Copy", func(t *testing.T) {
		_, loaded, err := store.Load(ctx, "client-a")
		require.NoError(t, err)
		loaded.FirstName = "mutated"

		_, again, _ := store.Load(ctx, "client-a")
		assert.Empty(t, again.FirstName)
	})

	t.Run("SaveUser Without Token Is Ignored", func(t *testing.T) {
		require.NoError(t, store.SaveUser(ctx, "client-x", user))

		token, loaded, err := store.Load(ctx, "client-x")
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.Nil(t, loaded)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx, "client-a"))

		token, loaded, err := store.Load(ctx, "client-a")
		require.NoError(t, err)
		assert.Empty(t, token)
		assert.Nil(t, loaded)
	})
}

func TestNewClientStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory Driver", func(t *testing.T) {
		store, err := NewClientStorage(ctx, Options{Driver: constvars.StorageDriverMemory}, zap.NewNop())

		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		store, err := NewClientStorage(ctx, Options{Driver: "etcd"}, zap.NewNop())

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("Keys", func(t *testing.T) {
		assert.Equal(t, "medora_token:abc", TokenKey("abc"))
		assert.Equal(t, "medora_user:abc", UserKey("abc"))
	})
}
