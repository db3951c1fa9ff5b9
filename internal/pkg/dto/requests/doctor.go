package requests

type RegisterDoctor struct {
	Name            string   `json:"name" validate:"required"`
	Qualifications  string   `json:"qualifications" validate:"required"`
	Specializations []string `json:"specializations" validate:"required,min=1"`
	Experience      *int     `json:"experience" validate:"required,gte=0"`
}

type CreateAssociation struct {
	SessionData string   `json:"-"`
	HospitalPin string   `json:"hospital_pin" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Fee         *float64 `json:"fee" validate:"required,gte=0"`
	TimeSlots   []string `json:"time_slots" validate:"required"`
}

type UpdateAssociationFee struct {
	SessionData string   `json:"-"`
	HospitalPin string   `json:"hospital_pin" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Fee         *float64 `json:"fee" validate:"required,gte=0"`
}

// AssociationLookup addresses one doctor's terms at a hospital department.
type AssociationLookup struct {
	DoctorID    string `json:"doctor_id" validate:"required"`
	HospitalPin string `json:"hospital_pin" validate:"required"`
	Department  string `json:"department" validate:"required"`
}
