package constvars

// Mongo collections
const (
	MongoCollectionHospitals    = "hospitals"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

// Record store collections, one JSON text array per key.
const (
	RecordCollectionAdmins       = "admins"
	RecordCollectionDoctors      = "doctors"
	RecordCollectionPatients     = "patients"
	RecordCollectionAppointments = "appointments"
)

const (
	RedisKeyPrefixRecordStore = "records:"
	RedisKeyPrefixSession     = "session:"
	RedisKeyPrefixBookingLock = "booking:slot:"
	RedisKeyReportLeaderLock  = "reports:earnings:leader"
)

const (
	ReportObjectDoctorEarningsFormat   = "doctor-earnings/%s/%s.json"
	ReportObjectHospitalEarningsFormat = "hospital-earnings/%s/%s.json"
)

const (
	EventTypeAppointmentBooked = "appointment.booked"
)
