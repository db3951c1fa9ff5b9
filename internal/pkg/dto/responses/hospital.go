package responses

type Hospital struct {
	ID           string   `json:"id"`
	AdminName    string   `json:"name"`
	HospitalName string   `json:"hospital_name"`
	Location     string   `json:"location"`
	Pin          string   `json:"pin"`
	Departments  []string `json:"departments"`
}

type EligibleDepartments struct {
	HospitalPin string   `json:"hospital_pin"`
	Departments []string `json:"departments"`
}
