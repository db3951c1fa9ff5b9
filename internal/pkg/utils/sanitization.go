package utils

import (
	"hospital-booking-service/internal/pkg/dto/requests"
	"strings"
)

// TrimNonEmpty trims every entry and drops the ones left blank.
func TrimNonEmpty(input []string) []string {
	sanitized := make([]string, 0, len(input))
	for _, v := range input {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		sanitized = append(sanitized, v)
	}
	return sanitized
}

// FindDuplicate returns the first entry that appears twice in input.
func FindDuplicate(input []string) (string, bool) {
	seen := make(map[string]struct{}, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			return v, true
		}
		seen[v] = struct{}{}
	}
	return "", false
}

func SanitizeRegisterHospitalRequest(input *requests.RegisterHospital) {
	input.AdminName = strings.TrimSpace(input.AdminName)
	input.HospitalName = strings.TrimSpace(input.HospitalName)
	input.Location = strings.TrimSpace(input.Location)
	input.Pin = strings.TrimSpace(input.Pin)
	input.Departments = TrimNonEmpty(input.Departments)
}

func SanitizeRegisterDoctorRequest(input *requests.RegisterDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Qualifications = strings.TrimSpace(input.Qualifications)
	input.Specializations = TrimNonEmpty(input.Specializations)
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(input.Gender)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.UniqueID = strings.TrimSpace(input.UniqueID)
}

func SanitizeCreateAssociationRequest(input *requests.CreateAssociation) {
	input.HospitalPin = strings.TrimSpace(input.HospitalPin)
	input.Department = strings.TrimSpace(input.Department)
	input.TimeSlots = TrimNonEmpty(input.TimeSlots)
}

func SanitizeUpdateAssociationFeeRequest(input *requests.UpdateAssociationFee) {
	input.HospitalPin = strings.TrimSpace(input.HospitalPin)
	input.Department = strings.TrimSpace(input.Department)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.HospitalPin = strings.TrimSpace(input.HospitalPin)
	input.Department = strings.TrimSpace(input.Department)
	input.Slot = strings.TrimSpace(input.Slot)
	input.Date = strings.TrimSpace(input.Date)
}
