package config

type DriverConfig struct {
	MongoDB MongoDB
	Redis   Redis
	Logger  Logger
}

type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	SMS      AppSMS
	Identity AppIdentity
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	RequestTimeoutInSeconds  int
	CacheTTLInMinutes        int
}

type AppSMS struct {
	ApiKey                  string
	Username                string
	RequestTimeoutInSeconds int
	// Outbound dispatch quota, enforced per destination number with a
	// fixed Redis window. Zero disables the limiter.
	MaxSendsPerWindow   int
	SendWindowInSeconds int
}

type AppIdentity struct {
	BaseUrl   string
	JWTSecret string
}
