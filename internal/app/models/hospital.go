package models

import "strings"

// Hospital is registered by its admin. Pin is the access PIN and the key every
// association and appointment refers to.
type Hospital struct {
	ID           string   `json:"id" bson:"_id"`
	AdminName    string   `json:"name" bson:"name"`
	HospitalName string   `json:"hospitalName" bson:"hospitalName"`
	Location     string   `json:"location" bson:"location"`
	Pin          string   `json:"pin" bson:"pin"`
	Departments  []string `json:"departments" bson:"departments"`
	TimeModel    `bson:",inline"`
}

// Department returns the declared label matching department case-insensitively.
func (h *Hospital) Department(department string) (string, bool) {
	for _, declared := range h.Departments {
		if strings.EqualFold(declared, department) {
			return declared, true
		}
	}
	return "", false
}

// IsSameHospital reports whether name and location identify this hospital.
func (h *Hospital) IsSameHospital(hospitalName, location string) bool {
	return strings.EqualFold(strings.TrimSpace(h.HospitalName), strings.TrimSpace(hospitalName)) &&
		strings.EqualFold(strings.TrimSpace(h.Location), strings.TrimSpace(location))
}
