package responses

import "time"

type Appointment struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	HospitalPin string    `json:"hospital_pin"`
	Department  string    `json:"department"`
	Slot        string    `json:"slot"`
	Fee         float64   `json:"fee"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
