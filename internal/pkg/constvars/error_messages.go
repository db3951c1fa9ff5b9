package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must contain at least %s item(s)",
	"max":       "must contain at most %s item(s)",
	"len":       "must be %s characters long",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"lt":        "must be less than %s",
	"lte":       "must be less than or equal to %s",
	"uuid":      "must be a valid UUID",
	"date_only": "must be a date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientHospitalNotFound              = "hospital not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientAssociationNotFound           = "doctor does not practice in this department at this hospital"
	ErrClientDepartmentNotAssociable       = "department is not offered by the hospital or does not match your specializations"
	ErrClientTimeSlotConflict              = "one or more time slots are already used in another association"
	ErrClientDuplicateTimeSlot             = "time slots must not contain duplicates"
	ErrClientEmptyTimeSlots                = "at least one time slot is required"
	ErrClientSlotUnavailable               = "the selected slot is no longer available"
	ErrClientBookingInProgress             = "another booking for this slot is in progress, please retry"
	ErrClientFeeChanged                    = "the consultation fee has changed, please review and try again"
	ErrClientPastAppointmentDate           = "appointment date cannot be in the past"
	ErrClientHospitalPinAlreadyUsed        = "this pin is already used by another hospital"
	ErrClientPatientAlreadyRegistered      = "a patient with this id is already registered"
	ErrClientPatientMismatch               = "you can only book appointments for yourself"
	ErrClientPatientIDRequired             = "patient_id is required"
	ErrClientHospitalMismatch              = "you can only book appointments at your own hospital"
	ErrClientReportExportDisabled          = "report export is not available right now"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseDate            = "cannot parse the requested date"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevMissingSessionData         = "session data missing from context"
	ErrDevURLParamValidationFailed   = "url param %s is empty or invalid"
	ErrDevAuthTokenMissing           = "authorization token is missing"
	ErrDevAuthTokenInvalid           = "authorization token is invalid"
	ErrDevAuthTokenGenerate          = "failed to generate authorization token"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthInvalidSession         = "session not found or expired"
	ErrDevRoleTypeDoesntMatch        = "session role does not match the required role"
	ErrDevHospitalNotFound           = "hospital with the given pin does not exist"
	ErrDevDoctorNotFound             = "doctor with the given id does not exist"
	ErrDevPatientNotFound            = "patient with the given id does not exist"
	ErrDevAssociationNotFound        = "no association matches doctor, hospital pin and department"
	ErrDevDepartmentNotAssociable    = "department not in hospital departments or doctor specializations"
	ErrDevTimeSlotConflict           = "time slot already held by the doctor"
	ErrDevDuplicateTimeSlot          = "duplicate time slot in request"
	ErrDevEmptyTimeSlots             = "no non-empty time slot in request"
	ErrDevSlotUnavailable            = "slot not present in the matching association"
	ErrDevBookingInProgress          = "booking lock for slot is held by another request"
	ErrDevFeeChanged                 = "fee snapshot does not match the association fee"
	ErrDevPastAppointmentDate        = "appointment date is before today"
	ErrDevHospitalPinAlreadyUsed     = "hospital pin belongs to a different hospital"
	ErrDevPatientAlreadyRegistered   = "patient unique id already registered"
	ErrDevPatientMismatch            = "patient id differs from session patient"
	ErrDevPatientIDRequired          = "front desk booking without patient id"
	ErrDevHospitalMismatch           = "hospital pin differs from session hospital"
	ErrDevReportStorageNotConfigured = "report storage is not configured"
	ErrDevRateLimited                = "client address exceeded the booking rate limit"
	ErrDevRecoveredPanic             = "recovered from panic"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevRecordStoreLoad            = "failed to load collection %s"
	ErrDevRecordStoreSave            = "failed to save collection %s"
	ErrDevRecordStoreConflict        = "collection %s changed during update, retries exhausted"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisGetNoData             = "no data in redis for key %s"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisExpire                = "failed to extend redis key expiration"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to create presigned url in bucket %s"
	ErrDevRabbitMQFailedToPublish    = "failed to publish message to queue %s"
)
