package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
)

const (
	REQUEST_ID_PREFIX = "MEDORA_PRTL_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	StorageDriverRedis  = "redis"
	StorageDriverMongo  = "mongo"
	StorageDriverMemory = "memory"
)
