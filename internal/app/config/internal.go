package config

type InternalConfig struct {
	App      App
	JWT      AppJWT
	Storage  AppStorage
	Booking  AppBooking
	Report   AppReport
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	AllowedOrigins            []string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
	BookingRequestsPerMinute  int
	BookingBlockTimeInMinutes int
	AccessLogFileName         string
}

type AppJWT struct {
	Secret                string
	SessionExpTimeInHours int
}

// AppStorage selects the repository backend: mongo, redis or memory.
type AppStorage struct {
	Driver                string
	RecordStoreMaxRetries int
	RecordStoreKeyPrefix  string
}

type AppBooking struct {
	LockExpirationInSeconds int
}

type AppReport struct {
	BucketName                    string
	WorkerCronSpec                string
	PresignedURLExpiryTimeInHours int
	LeaderLockTTLInSeconds        int
}

type AppRabbitMQ struct {
	AppointmentQueue string
}
