package storage

import (
	"context"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/exceptions"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Options struct {
	Driver      string
	TTL         time.Duration
	Redis       *redis.Client
	MongoDB     *mongo.Client
	MongoDBName string
}

// NewClientStorage picks the backend named by opts.Driver.
func NewClientStorage(ctx context.Context, opts Options, logger *zap.Logger) (contracts.ClientStorage, error) {
	switch opts.Driver {
	case constvars.StorageDriverRedis:
		return NewRedisStorage(opts.Redis, opts.TTL, logger), nil
	case constvars.StorageDriverMongo:
		if err := EnsureIndexes(ctx, opts.MongoDB, opts.MongoDBName); err != nil {
			return nil, err
		}
		return NewMongoStorage(opts.MongoDB, opts.MongoDBName, opts.TTL, logger), nil
	case constvars.StorageDriverMemory:
		return NewMemoryStorage(), nil
	}
	return nil, exceptions.ErrUnknownStorageDriver(opts.Driver)
}
