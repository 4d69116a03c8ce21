package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App    App
		Medora Medora
		Portal Portal
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		MaxRequests                int
		MaxAuthRequestsPerMinute   int
		ShutdownTimeoutInSeconds   int
		RequestTimeoutInSeconds    int
		RequestBodyLimitInMegabyte int
		AllowedOrigins             string
	}
	// Medora is the REST backend the portal talks to on behalf of browsers.
	Medora struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    int
		MaxBurst                int
	}
	Portal struct {
		StorageDriver          string
		StorageTTLInHours      int
		RegistrySize           int
		RegistryIdleInMinutes  int
		ClientCookieName       string
		ClientCookieSecure     bool
		ClientCookieHashKey    string
		ClientCookieBlockKey   string
		ClientCookieMaxAgeDays int
	}
)
