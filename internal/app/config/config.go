package config

import (
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medora_portal"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			Database: utils.GetEnvInt("REDIS_DATABASE", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			MaxAuthRequestsPerMinute:   utils.GetEnvInt("APP_MAX_AUTH_REQUEST_PER_MINUTE", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:8080"),
		},
		Medora: Medora{
			BaseUrl:                 utils.GetEnvString("MEDORA_API_BASE_URL", "http://localhost:5000/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("MEDORA_API_REQUEST_TIMEOUT_IN_SECONDS", 8),
			MaxRequestsPerSecond:    utils.GetEnvInt("MEDORA_API_MAX_REQUESTS_PER_SECOND", 50),
			MaxBurst:                utils.GetEnvInt("MEDORA_API_MAX_BURST", 10),
		},
		Portal: Portal{
			StorageDriver:          utils.GetEnvString("PORTAL_STORAGE_DRIVER", constvars.StorageDriverRedis),
			StorageTTLInHours:      utils.GetEnvInt("PORTAL_STORAGE_TTL_IN_HOURS", 24*7),
			RegistrySize:           utils.GetEnvInt("PORTAL_REGISTRY_SIZE", 10000),
			RegistryIdleInMinutes:  utils.GetEnvInt("PORTAL_REGISTRY_IDLE_IN_MINUTES", 30),
			ClientCookieName:       utils.GetEnvString("PORTAL_CLIENT_COOKIE_NAME", constvars.DefaultClientCookieName),
			ClientCookieSecure:     utils.GetEnvBool("PORTAL_CLIENT_COOKIE_SECURE", false),
			ClientCookieHashKey:    utils.GetEnvString("PORTAL_CLIENT_COOKIE_HASH_KEY", "medora-portal-dev-hash-key-change-me-0123456789abcdef"),
			ClientCookieBlockKey:   utils.GetEnvString("PORTAL_CLIENT_COOKIE_BLOCK_KEY", ""),
			ClientCookieMaxAgeDays: utils.GetEnvInt("PORTAL_CLIENT_COOKIE_MAX_AGE_DAYS", 30),
		},
	}
}
