package responses

import "time"

type EarningsEntry struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type DoctorEarnings struct {
	DoctorID      string          `json:"doctor_id"`
	DoctorName    string          `json:"doctor_name"`
	Count         int             `json:"count"`
	GrossFees     float64         `json:"gross_fees"`
	TotalEarnings float64         `json:"total_earnings"`
	ByHospital    []EarningsEntry `json:"by_hospital"`
}

type HospitalEarnings struct {
	HospitalPin  string          `json:"hospital_pin"`
	HospitalName string          `json:"hospital_name"`
	Count        int             `json:"count"`
	GrossFees    float64         `json:"gross_fees"`
	TotalRevenue float64         `json:"total_revenue"`
	ByDoctor     []EarningsEntry `json:"by_doctor"`
	ByDepartment []EarningsEntry `json:"by_department"`
}

type EarningsExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
