package models

import "time"

// Appointment is immutable once written. Fee is the association fee at booking
// time and DoctorName is copied from the doctor record.
type Appointment struct {
	ID          string    `json:"id" bson:"_id"`
	PatientID   string    `json:"patientId" bson:"patientId"`
	DoctorID    string    `json:"doctorId" bson:"doctorId"`
	DoctorName  string    `json:"doctorName" bson:"doctorName"`
	HospitalPin string    `json:"hospitalPin" bson:"hospitalPin"`
	Department  string    `json:"department" bson:"department"`
	Slot        string    `json:"slot" bson:"slot"`
	Fee         float64   `json:"fee" bson:"fee"`
	Date        string    `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type AppointmentBookedEvent struct {
	EventType     string    `json:"event_type"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	HospitalPin   string    `json:"hospital_pin"`
	Department    string    `json:"department"`
	Slot          string    `json:"slot"`
	Date          string    `json:"date"`
	Fee           float64   `json:"fee"`
	OccurredAt    time.Time `json:"occurred_at"`
}
