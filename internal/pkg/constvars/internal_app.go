package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HBS_SVC_"
)

const (
	RoleTypeHospitalAdmin = "hospital_admin"
	RoleTypeDoctor        = "doctor"
	RoleTypePatient       = "patient"
)

const (
	StorageDriverMongo  = "mongo"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

const (
	ServiceName = "hospital-booking-service"

	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	DateOnlyLayout        = "2006-01-02"
	ReportTimestampLayout = "20060102T150405"
)

const (
	DoctorShareRatio   = "0.6"
	HospitalShareRatio = "0.4"
)

const (
	URLParamHospitalPin   = "pin"
	URLParamDepartment    = "department"
	URLParamDoctorID      = "doctorID"
	QueryParamHospitalPin = "hospital_pin"
	QueryParamDepartment  = "department"
)
