package responses

type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dob"`
	UniqueID    string `json:"unique_id"`
}
