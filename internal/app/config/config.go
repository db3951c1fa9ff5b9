package config

import (
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "hospital_booking"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
			PoolSize: utils.GetEnvInt("REDIS_POOL_SIZE", 20),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:      utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:         utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:         utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username:     utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password:     utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			DialAttempts: utils.GetEnvInt("RABBITMQ_DIAL_ATTEMPTS", 5),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:            utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			BookingRequestsPerMinute:  utils.GetEnvInt("APP_BOOKING_REQUESTS_PER_MINUTE", 30),
			BookingBlockTimeInMinutes: utils.GetEnvInt("APP_BOOKING_BLOCK_TIME_IN_MINUTES", 1),
			AccessLogFileName:         utils.GetEnvString("APP_ACCESS_LOG_FILENAME", "access.log"),
		},
		JWT: AppJWT{
			Secret:                utils.GetEnvString("JWT_SECRET", "anyjwt"),
			SessionExpTimeInHours: utils.GetEnvInt("JWT_SESSION_EXP_TIME_IN_HOURS", 12),
		},
		Storage: AppStorage{
			Driver:                utils.GetEnvString("APP_STORAGE_DRIVER", constvars.StorageDriverMongo),
			RecordStoreMaxRetries: utils.GetEnvInt("APP_RECORD_STORE_MAX_RETRIES", 5),
			RecordStoreKeyPrefix:  utils.GetEnvString("APP_RECORD_STORE_KEY_PREFIX", constvars.RedisKeyPrefixRecordStore),
		},
		Booking: AppBooking{
			LockExpirationInSeconds: utils.GetEnvInt("APP_BOOKING_LOCK_EXPIRATION_IN_SECONDS", 10),
		},
		Report: AppReport{
			BucketName:                    utils.GetEnvString("APP_REPORT_BUCKET_NAME", "earnings-reports"),
			WorkerCronSpec:                utils.GetEnvString("APP_REPORT_WORKER_CRON_SPEC", "@daily"),
			PresignedURLExpiryTimeInHours: utils.GetEnvInt("APP_REPORT_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 24),
			LeaderLockTTLInSeconds:        utils.GetEnvInt("APP_REPORT_LEADER_LOCK_TTL_IN_SECONDS", 120),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointments.booked"),
		},
	}
}
