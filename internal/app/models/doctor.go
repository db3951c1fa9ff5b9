package models

import "strings"

type Doctor struct {
	ID              string        `json:"id" bson:"_id"`
	Name            string        `json:"name" bson:"name"`
	Qualifications  string        `json:"qualifications" bson:"qualifications"`
	Specializations []string      `json:"specializations" bson:"specializations"`
	Experience      int           `json:"experience" bson:"experience"`
	Associations    []Association `json:"associations" bson:"associations"`
	TimeModel       `bson:",inline"`
}

// Association is a doctor's practice terms at one hospital department.
type Association struct {
	HospitalPin string   `json:"hospitalPin" bson:"hospitalPin"`
	Department  string   `json:"department" bson:"department"`
	Fee         float64  `json:"fee" bson:"fee"`
	TimeSlots   []string `json:"timeSlots" bson:"timeSlots"`
}

type AssociationKey struct {
	HospitalPin string
	Department  string
}

func (a Association) Key() AssociationKey {
	return AssociationKey{HospitalPin: a.HospitalPin, Department: a.Department}
}

func (a Association) Matches(key AssociationKey) bool {
	return a.HospitalPin == key.HospitalPin && a.Department == key.Department
}

func (a Association) HasSlot(slot string) bool {
	for _, s := range a.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (a Association) HasOpenSlots() bool {
	return len(a.TimeSlots) > 0
}

// IsSameDoctor reports whether name and qualifications identify this doctor.
func (d *Doctor) IsSameDoctor(name, qualifications string) bool {
	return strings.EqualFold(strings.TrimSpace(d.Name), strings.TrimSpace(name)) &&
		strings.EqualFold(strings.TrimSpace(d.Qualifications), strings.TrimSpace(qualifications))
}

func (d *Doctor) HasSpecialization(department string) bool {
	for _, specialization := range d.Specializations {
		if strings.EqualFold(specialization, department) {
			return true
		}
	}
	return false
}

func (d *Doctor) PracticesAt(hospitalPin string) bool {
	for _, association := range d.Associations {
		if association.HospitalPin == hospitalPin {
			return true
		}
	}
	return false
}

// FindAssociation returns the first association matching key.
func (d *Doctor) FindAssociation(key AssociationKey) (*Association, bool) {
	for i := range d.Associations {
		if d.Associations[i].Matches(key) {
			return &d.Associations[i], true
		}
	}
	return nil, false
}

// HeldSlots lists every slot label the doctor currently offers, across all
// associations.
func (d *Doctor) HeldSlots() map[string]struct{} {
	held := make(map[string]struct{})
	for _, association := range d.Associations {
		for _, slot := range association.TimeSlots {
			held[slot] = struct{}{}
		}
	}
	return held
}

// RemoveSlot drops slot from the first association matching key that still
// offers it. It reports false when no such association exists.
func (d *Doctor) RemoveSlot(key AssociationKey, slot string) bool {
	for i := range d.Associations {
		association := &d.Associations[i]
		if !association.Matches(key) {
			continue
		}
		for j, s := range association.TimeSlots {
			if s == slot {
				association.TimeSlots = append(association.TimeSlots[:j:j], association.TimeSlots[j+1:]...)
				return true
			}
		}
	}
	return false
}

// RestoreSlot puts slot back on the first association matching key.
func (d *Doctor) RestoreSlot(key AssociationKey, slot string) bool {
	association, ok := d.FindAssociation(key)
	if !ok {
		return false
	}
	if !association.HasSlot(slot) {
		association.TimeSlots = append(association.TimeSlots, slot)
	}
	return true
}
