package requests

type RegisterPatient struct {
	Name        string `json:"name" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"dob" validate:"required,date_only"`
	UniqueID    string `json:"unique_id" validate:"required"`
}
