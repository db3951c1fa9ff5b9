package responses

import "time"

type Auth struct {
	Token    string    `json:"token"`
	Role     string    `json:"role"`
	IsNew    bool      `json:"is_new"`
	Hospital *Hospital `json:"hospital,omitempty"`
	Doctor   *Doctor   `json:"doctor,omitempty"`
	Patient  *Patient  `json:"patient,omitempty"`
}

type Session struct {
	Role        string    `json:"role"`
	DoctorID    string    `json:"doctor_id,omitempty"`
	PatientID   string    `json:"patient_id,omitempty"`
	HospitalPin string    `json:"hospital_pin,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}
