package responses

type Doctor struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Qualifications  string        `json:"qualifications"`
	Specializations []string      `json:"specializations"`
	Experience      int           `json:"experience"`
	Associations    []Association `json:"associations"`
}

type Association struct {
	HospitalPin string   `json:"hospital_pin"`
	Department  string   `json:"department"`
	Fee         float64  `json:"fee"`
	TimeSlots   []string `json:"time_slots"`
}

type AvailableSlots struct {
	DoctorID    string   `json:"doctor_id"`
	HospitalPin string   `json:"hospital_pin"`
	Department  string   `json:"department"`
	TimeSlots   []string `json:"time_slots"`
}

type ConsultationFee struct {
	DoctorID    string  `json:"doctor_id"`
	HospitalPin string  `json:"hospital_pin"`
	Department  string  `json:"department"`
	Fee         float64 `json:"fee"`
}

type AssociableDepartments struct {
	HospitalPin string   `json:"hospital_pin"`
	Departments []string `json:"departments"`
}
