package booking

import (
	"hospital-booking-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func matcherDoctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:   "doc-1",
			Name: "Asha",
			Associations: []models.Association{
				{HospitalPin: "111", Department: "Cardiology", Fee: 500, TimeSlots: []string{"9-10", "10-11"}},
			},
		},
		{
			ID:   "doc-2",
			Name: "Ravi",
			Associations: []models.Association{
				{HospitalPin: "111", Department: "cardiology", Fee: 300, TimeSlots: []string{"11-12"}},
				{HospitalPin: "111", Department: "Dermatology", Fee: 200, TimeSlots: []string{"14-15"}},
				{HospitalPin: "111", Department: "Neurology", Fee: 800, TimeSlots: []string{}},
			},
		},
		{
			ID:   "doc-3",
			Name: "Meera",
			Associations: []models.Association{
				{HospitalPin: "222", Department: "Cardiology", Fee: 450, TimeSlots: []string{"9-10"}},
				{HospitalPin: "111", Department: "Cardiology", Fee: 550, TimeSlots: []string{"15-16"}},
			},
		},
	}
}

func TestEligibleDepartments(t *testing.T) {
	hospital := &models.Hospital{Pin: "111", Departments: []string{"CARDIOLOGY", "Neurology"}}

	t.Run("scenario from a single association", func(t *testing.T) {
		doctors := []models.Doctor{{
			ID: "doc-1",
			Associations: []models.Association{
				{HospitalPin: "111", Department: "Cardiology", Fee: 500, TimeSlots: []string{"9-10", "10-11"}},
			},
		}}
		got := EligibleDepartments(&models.Hospital{Pin: "111", Departments: []string{"Cardiology"}}, doctors)
		assert.Equal(t, []string{"Cardiology"}, got)
	})

	t.Run("keeps association casing and drops undeclared or closed departments", func(t *testing.T) {
		got := EligibleDepartments(hospital, matcherDoctors())
		assert.Equal(t, []string{"Cardiology", "cardiology"}, got)
		for _, department := range got {
			_, declared := hospital.Department(department)
			assert.True(t, declared, "%s must be declared by the hospital", department)
		}
	})

	t.Run("unknown hospital", func(t *testing.T) {
		got := EligibleDepartments(nil, matcherDoctors())
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("repeatable", func(t *testing.T) {
		doctors := matcherDoctors()
		assert.Equal(t, EligibleDepartments(hospital, doctors), EligibleDepartments(hospital, doctors))
	})
}

func TestEligibleDoctors(t *testing.T) {
	t.Run("storage order with exact department match", func(t *testing.T) {
		got := EligibleDoctors(matcherDoctors(), "111", "Cardiology")
		ids := make([]string, 0, len(got))
		for _, doctor := range got {
			ids = append(ids, doctor.ID)
		}
		assert.Equal(t, []string{"doc-1", "doc-3"}, ids)
	})

	t.Run("associations without slots are skipped", func(t *testing.T) {
		assert.Empty(t, EligibleDoctors(matcherDoctors(), "111", "Neurology"))
	})
}

func TestAvailableSlots(t *testing.T) {
	doctors := matcherDoctors()

	assert.Equal(t, []string{"9-10", "10-11"}, AvailableSlots(&doctors[0], models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}))
	assert.Empty(t, AvailableSlots(&doctors[0], models.AssociationKey{HospitalPin: "999", Department: "Cardiology"}))
	assert.Empty(t, AvailableSlots(nil, models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}))

	slots := AvailableSlots(&doctors[0], models.AssociationKey{HospitalPin: "111", Department: "Cardiology"})
	slots[0] = "changed"
	assert.Equal(t, "9-10", doctors[0].Associations[0].TimeSlots[0], "returned slots must not alias the doctor record")
}

func TestFeeFor(t *testing.T) {
	doctors := matcherDoctors()

	assert.Equal(t, 550.0, FeeFor(&doctors[2], models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}))
	assert.Equal(t, 0.0, FeeFor(&doctors[2], models.AssociationKey{HospitalPin: "111", Department: "Dermatology"}))
	assert.Equal(t, 0.0, FeeFor(nil, models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}))
}
