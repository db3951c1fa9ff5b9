package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingSessionIDKey         = "session_id"
	LoggingRoleKey              = "role"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingErrorKey             = "error"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingQueueNameKey         = "queue_name"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
	LoggingCollectionKey        = "collection"
	LoggingAttemptKey           = "attempt"
	LoggingHospitalPinKey       = "hospital_pin"
	LoggingHospitalIDKey        = "hospital_id"
	LoggingDoctorIDKey          = "doctor_id"
	LoggingPatientIDKey         = "patient_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingDepartmentKey        = "department"
	LoggingSlotKey              = "slot"
	LoggingCountKey             = "count"
	LoggingIsNewKey             = "is_new"
	LoggingBusinessEventKey     = "business_event"
)

const (
	BusinessEventHospitalRegistered     = "hospital_registered"
	BusinessEventDoctorRegistered       = "doctor_registered"
	BusinessEventPatientRegistered      = "patient_registered"
	BusinessEventAssociationCreated     = "association_created"
	BusinessEventAssociationFeeUpdated  = "association_fee_updated"
	BusinessEventAppointmentBooked      = "appointment_booked"
	BusinessEventDoctorEarningsExported = "doctor_earnings_exported"
)
