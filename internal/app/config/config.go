package config

import (
	"github.com/joho/godotenv"

	"github.com/r-weda/my-afya-link/internal/pkg/utils"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "afyalink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
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
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Africa/Nairobi"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 50),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			CacheTTLInMinutes:        utils.GetEnvInt("APP_CACHE_TTL_IN_MINUTES", 5),
		},
		SMS: AppSMS{
			ApiKey:                  utils.GetEnvString("AFRICASTALKING_API_KEY", ""),
			Username:                utils.GetEnvString("AFRICASTALKING_USERNAME", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("AFRICASTALKING_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxSendsPerWindow:       utils.GetEnvInt("AFRICASTALKING_MAX_SENDS_PER_WINDOW", 5),
			SendWindowInSeconds:     utils.GetEnvInt("AFRICASTALKING_SEND_WINDOW_IN_SECONDS", 60),
		},
		Identity: AppIdentity{
			BaseUrl:   utils.GetEnvString("IDENTITY_BASE_URL", "http://localhost:54321"),
			JWTSecret: utils.GetEnvString("IDENTITY_JWT_SECRET", "anyjwt"),
		},
	}
}
