package requests

type RegisterHospital struct {
	AdminName    string   `json:"name" validate:"required"`
	HospitalName string   `json:"hospital_name" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Pin          string   `json:"pin" validate:"required"`
	Departments  []string `json:"departments" validate:"required,min=1"`
}
