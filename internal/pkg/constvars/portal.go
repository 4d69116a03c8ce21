package constvars

// Client storage keys. The client id is appended after the colon.
const (
	StorageTokenKeyPrefix = "medora_token"
	StorageUserKeyPrefix  = "medora_user"
)

const (
	MongoCollectionClientStorage = "client_storage"
)

const (
	DefaultClientCookieName = "medora_client"
)

const (
	DefaultUsersPerPage    = 10
	DefaultPatientsPerPage = 50
)

// Registration side effect: the backend requires these for a new patient record.
const (
	DefaultPatientDateOfBirth = "1990-01-01"
	DefaultPatientGender      = "Not specified"
)

const (
	PatientIDPrefix       = "MED"
	PatientIDRandomLength = 6
	MinimumDateOfBirth    = "1900-01-01"
)

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationWarning = "warning"
	NotificationInfo    = "info"
)
