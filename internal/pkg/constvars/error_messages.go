package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"alphanum":       "must contain only alphanumeric characters",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"eqfield":        "must match %s",
	"numeric":        "must be a number",
	"len":            "must be %s characters long",
	"oneof":          "must be one of [%s]",
	"gt":             "must be greater than %s",
	"gte":            "must be greater than or equal to %s",
	"lt":             "must be less than %s",
	"lte":            "must be less than or equal to %s",
	"datetime":       "must be a date in %s format",
	"medora_phone":   "must be a valid phone number",
	"medora_role":    "must be one of admin, doctor, user or patient",
	"past_date":      "must not be in the future or before 1900-01-01",
	"medora_user_id": "must be a valid username",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"eqfield":  true,
	"gt":       true,
	"gte":      true,
	"lt":       true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPageNotFound                  = "the page you are looking for does not exist"
	ErrClientPortalClosed                  = "your portal was closed, please reload the page"
)

// Notification messages shown to portal users
const (
	MsgNetworkErrorCheckConnection = "Network error. Please check your connection and try again."
	MsgNetworkError                = "Network error"
	MsgNetworkErrorOccurred        = "Network error occurred"
	MsgNetworkErrorHealthData      = "Network error loading health data"
	MsgNetworkErrorUsers           = "Network error loading users"

	MsgLoginFailed          = "Login failed. Please check your credentials."
	MsgRegistrationFailed   = "Registration failed. Please try again."
	MsgUpdateFailed         = "Update failed"
	MsgOperationFailed      = "Operation failed"
	MsgDeleteFailed         = "Delete failed"
	MsgSearchFailed         = "Search failed"
	MsgCreatePatientFailed  = "Failed to create patient"
	MsgDeactivateUserFailed = "Failed to deactivate user"

	MsgLoadDashboardFailed    = "Failed to load dashboard"
	MsgLoadPatientsFailed     = "Failed to load patients"
	MsgLoadHealthDataFailed   = "Failed to load health data"
	MsgLoadUsersFailed        = "Failed to load users"
	MsgLoadUsersPageFailed    = "Failed to load users page"
	MsgLoadAppointmentsFailed = "Failed to load appointments"
	MsgNoPatientRecord        = "No patient record found. Please contact an administrator to create your patient record."

	MsgPermissionLoginRequired = "Please log in to access this page"
	MsgPermissionPatients      = "Only doctors and administrators can access the Patients page"
	MsgPermissionUsers         = "Only administrators can access the Users page"
	MsgPermissionGeneric       = "You do not have permission to access this page"
	MsgMissingRequiredFields   = "Please fill in required fields: %s"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseForm          = "cannot parse form body"
	ErrDevRenderTemplate           = "failed to render template %s"
	ErrDevParseTemplate            = "failed to parse templates"
	ErrDevPortalDisposed           = "portal already disposed"
	ErrDevPortalCreate             = "failed to create portal"
	ErrDevUnknownPage              = "unknown page identifier %q"
	ErrDevNavigationDenied         = "navigation to %s denied for role %q"
	ErrDevNotAuthenticated         = "operation requires an authenticated session"
	ErrDevMedoraRequestRejected    = "medora backend rejected %s %s with status %d"
	ErrDevMedoraNetworkFailure     = "medora backend unreachable on %s %s"
	ErrDevMedoraDecodeResponse     = "failed to decode medora response for %s"
	ErrDevStorageHalfWritten       = "client storage holds only one of token and user for %s"
	ErrDevUnknownStorageDriver     = "unknown client storage driver %q"
	ErrDevClientIDMissing          = "client id missing from request context"
	ErrDevURLParamIDValidation     = "parameter %s validation failed"
	ErrDevValidationFailed         = "validation failed"
	ErrDevMissingRequiredFields    = "missing required fields"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "server failed to process something related to machine system"

	// Database messages
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
)
