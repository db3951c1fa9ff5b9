package requests

type BookAppointment struct {
	SessionData string   `json:"-"`
	PatientID   string   `json:"patient_id"`
	DoctorID    string   `json:"doctor_id" validate:"required"`
	HospitalPin string   `json:"hospital_pin" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Slot        string   `json:"slot" validate:"required"`
	Date        string   `json:"date" validate:"required,date_only"`
	Fee         *float64 `json:"fee" validate:"required,gte=0"`
}
