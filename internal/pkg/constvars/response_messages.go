package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth
	LoginSuccessMessage      = "successfully login"
	RegisterSuccessMessage   = "successfully registered"
	LogoutSuccessMessage     = "successfully logout"
	GetSessionSuccessMessage = "get session successfully"

	// Hospital
	GetHospitalsSuccessMessage           = "get hospitals successfully"
	GetHospitalSuccessMessage            = "get hospital successfully"
	GetHospitalDoctorsSuccessMessage     = "get hospital doctors successfully"
	GetEligibleDepartmentsSuccessMessage = "get eligible departments successfully"
	GetEligibleDoctorsSuccessMessage     = "get eligible doctors successfully"
	GetHospitalEarningsSuccessMessage    = "get hospital earnings successfully"

	// Doctor
	GetDoctorSuccessMessage                = "get doctor successfully"
	GetAvailableSlotsSuccessMessage        = "get available slots successfully"
	GetFeeSuccessMessage                   = "get consultation fee successfully"
	GetAssociableDepartmentsSuccessMessage = "get associable departments successfully"
	CreateAssociationSuccessMessage        = "association created successfully"
	UpdateAssociationFeeSuccessMessage     = "association fee updated successfully"
	GetDoctorEarningsSuccessMessage        = "get doctor earnings successfully"
	ExportDoctorEarningsSuccessMessage     = "doctor earnings exported successfully"

	// Patient
	GetPatientsSuccessMessage     = "get patients successfully"
	GetAppointmentsSuccessMessage = "get appointments successfully"

	// Appointment
	BookAppointmentSuccessMessage = "appointment booked successfully"
)
