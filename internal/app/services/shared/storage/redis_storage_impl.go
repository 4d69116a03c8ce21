package storage

import (
	"context"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisStorage struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisStorage keeps both keys with the same expiry. A zero ttl keeps
// them until logout.
func NewRedisStorage(client *redis.Client, ttl time.Duration, logger *zap.Logger) contracts.ClientStorage {
	return &redisStorage{client: client, ttl: ttl, log: logger}
}

func (s *redisStorage) Load(ctx context.Context, clientID string) (string, *models.User, error) {
	values, err := s.client.MGet(ctx, TokenKey(clientID), UserKey(clientID)).Result()
	if err != nil {
		return "", nil, exceptions.ErrRedisGet(err)
	}

	token, _ := values[0].(string)
	rawUser, _ := values[1].(string)
	if token == "" && rawUser == "" {
		return "", nil, nil
	}
	if token == "" || rawUser == "" {
		s.log.Warn("Client storage half written, clearing",
			zap.Error(exceptions.ErrStorageHalfWritten(clientID)),
		)
		return "", nil, s.Clear(ctx, clientID)
	}

	user := new(models.User)
	if err := json.Unmarshal([]byte(rawUser), user); err != nil {
		s.log.Warn("Client storage user record unreadable, clearing",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		return "", nil, s.Clear(ctx, clientID)
	}
	return token, user, nil
}

func (s *redisStorage) Save(ctx context.Context, clientID, token string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, TokenKey(clientID), token, s.ttl)
		pipe.Set(ctx, UserKey(clientID), rawUser, s.ttl)
		return nil
	})
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// luaSaveUserIfToken writes the user key only while the token key exists,
// so a profile that lands after a logout cannot leave a user without a
// token. ARGV[2] is the ttl in milliseconds, zero for none.
const luaSaveUserIfToken = `
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
if tonumber(ARGV[2]) > 0 then
	redis.call("SET", KEYS[2], ARGV[1], "PX", ARGV[2])
	redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	redis.call("SET", KEYS[2], ARGV[1])
end
return 1
`

func (s *redisStorage) SaveUser(ctx context.Context, clientID string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	keys := []string{TokenKey(clientID), UserKey(clientID)}
	written, err := s.client.Eval(ctx, luaSaveUserIfToken, keys, string(rawUser), s.ttl.Milliseconds()).Int()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	if written == 0 {
		s.log.Info("Client storage has no token, user record dropped",
			zap.String("client_id", clientID),
		)
	}
	return nil
}

func (s *redisStorage) Clear(ctx context.Context, clientID string) error {
	err := s.client.Del(ctx, TokenKey(clientID), UserKey(clientID)).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
