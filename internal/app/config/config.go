package config

import (
	"reserv-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "reserv"),
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
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Reservation: Reservation{
			Timezone:              utils.GetEnvString("RESERVATION_TIMEZONE", "America/Los_Angeles"),
			MinDurationMinutes:    utils.GetEnvInt("RESERVATION_MIN_DURATION_MINUTES", 15),
			MaxDurationHours:      utils.GetEnvInt("RESERVATION_MAX_DURATION_HOURS", 4),
			AdvanceLimitDays:      utils.GetEnvInt("RESERVATION_ADVANCE_LIMIT_DAYS", 30),
			LockTTLSeconds:        utils.GetEnvInt("RESERVATION_LOCK_TTL_SECONDS", 5),
			LockWaitMilliseconds:  utils.GetEnvInt("RESERVATION_LOCK_WAIT_MILLISECONDS", 3000),
			LockRetryMilliseconds: utils.GetEnvInt("RESERVATION_LOCK_RETRY_MILLISECONDS", 50),
		},
	}
}
