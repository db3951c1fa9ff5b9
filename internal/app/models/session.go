package models

import (
	"hospital-booking-service/internal/pkg/constvars"
	"time"
)

type Session struct {
	SessionID   string    `json:"session_id"`
	Role        string    `json:"role"`
	DoctorID    string    `json:"doctor_id,omitempty"`
	PatientID   string    `json:"patient_id,omitempty"`
	HospitalID  string    `json:"hospital_id,omitempty"`
	HospitalPin string    `json:"hospital_pin,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *Session) IsDoctor() bool {
	return s.Role == constvars.RoleTypeDoctor
}

func (s *Session) IsPatient() bool {
	return s.Role == constvars.RoleTypePatient
}

func (s *Session) IsHospitalAdmin() bool {
	return s.Role == constvars.RoleTypeHospitalAdmin
}
