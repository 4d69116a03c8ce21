package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingClientIDKey    = "client_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingErrorKey       = "error"
	LoggingPageKey        = "page"
	LoggingRoleKey        = "role"
	LoggingUserIDKey      = "user_id"
	LoggingGenerationKey  = "generation"
	LoggingStorageKey     = "storage"
	LoggingRemotePathKey  = "remote_path"
	LoggingRemoteStatus   = "remote_status"
	LoggingSessionEvent   = "session_event"
	LoggingRegistrySize   = "registry_size"
	LoggingRegistryReason = "reason"
)
