package booking

import "hospital-booking-service/internal/app/models"

// EligibleDepartments narrows a hospital to the departments a patient can
// book right now: declared by the hospital (case-insensitive) and offered by
// some doctor association at that hospital with an open slot. Labels keep
// the association casing, first occurrence wins.
func EligibleDepartments(hospital *models.Hospital, doctors []models.Doctor) []string {
	departments := make([]string, 0)
	if hospital == nil {
		return departments
	}

	seen := make(map[string]struct{})
	for _, doctor := range doctors {
		for _, association := range doctor.Associations {
			if association.HospitalPin != hospital.Pin || !association.HasOpenSlots() {
				continue
			}
			if _, declared := hospital.Department(association.Department); !declared {
				continue
			}
			if _, ok := seen[association.Department]; ok {
				continue
			}
			seen[association.Department] = struct{}{}
			departments = append(departments, association.Department)
		}
	}
	return departments
}

// EligibleDoctors keeps storage order. Department matches exactly.
func EligibleDoctors(doctors []models.Doctor, hospitalPin, department string) []models.Doctor {
	key := models.AssociationKey{HospitalPin: hospitalPin, Department: department}

	eligible := make([]models.Doctor, 0)
	for _, doctor := range doctors {
		for _, association := range doctor.Associations {
			if association.Matches(key) && association.HasOpenSlots() {
				eligible = append(eligible, doctor)
				break
			}
		}
	}
	return eligible
}

// AvailableSlots lists the open slots of the first association matching key.
func AvailableSlots(doctor *models.Doctor, key models.AssociationKey) []string {
	if doctor == nil {
		return []string{}
	}
	association, ok := doctor.FindAssociation(key)
	if !ok {
		return []string{}
	}
	return append([]string{}, association.TimeSlots...)
}

// FeeFor returns 0 when nothing matches.
func FeeFor(doctor *models.Doctor, key models.AssociationKey) float64 {
	if doctor == nil {
		return 0
	}
	association, ok := doctor.FindAssociation(key)
	if !ok {
		return 0
	}
	return association.Fee
}
