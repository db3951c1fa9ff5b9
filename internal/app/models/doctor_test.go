package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDoctor() *Doctor {
	return &Doctor{
		ID:              "doc-1",
		Name:            "Dr. Rao",
		Qualifications:  "MBBS",
		Specializations: []string{"Cardiology", "Neurology"},
		Associations: []Association{
			{HospitalPin: "111", Department: "Cardiology", Fee: 500, TimeSlots: []string{"09:00-10:00", "10:00-11:00"}},
			{HospitalPin: "222", Department: "Neurology", Fee: 700, TimeSlots: []string{"14:00-15:00"}},
			{HospitalPin: "111", Department: "Cardiology", Fee: 900, TimeSlots: []string{"16:00-17:00"}},
		},
	}
}

func TestDoctor_FindAssociation(t *testing.T) {
	doctor := newTestDoctor()

	association, ok := doctor.FindAssociation(AssociationKey{HospitalPin: "111", Department: "Cardiology"})
	require.True(t, ok)
	assert.Equal(t, 500.0, association.Fee)

	_, ok = doctor.FindAssociation(AssociationKey{HospitalPin: "111", Department: "cardiology"})
	assert.False(t, ok)

	_, ok = doctor.FindAssociation(AssociationKey{HospitalPin: "333", Department: "Cardiology"})
	assert.False(t, ok)
}

func TestDoctor_RemoveSlot(t *testing.T) {
	key := AssociationKey{HospitalPin: "111", Department: "Cardiology"}

	t.Run("removes from first association offering the slot", func(t *testing.T) {
		doctor := newTestDoctor()

		assert.True(t, doctor.RemoveSlot(key, "10:00-11:00"))
		assert.Equal(t, []string{"09:00-10:00"}, doctor.Associations[0].TimeSlots)
		assert.Equal(t, []string{"16:00-17:00"}, doctor.Associations[2].TimeSlots)
	})

	t.Run("falls through to a later duplicate association", func(t *testing.T) {
		doctor := newTestDoctor()

		assert.True(t, doctor.RemoveSlot(key, "16:00-17:00"))
		assert.Empty(t, doctor.Associations[2].TimeSlots)
		assert.Len(t, doctor.Associations[0].TimeSlots, 2)
	})

	t.Run("second removal fails", func(t *testing.T) {
		doctor := newTestDoctor()

		require.True(t, doctor.RemoveSlot(key, "09:00-10:00"))
		assert.False(t, doctor.RemoveSlot(key, "09:00-10:00"))
	})

	t.Run("slot at another hospital is not touched", func(t *testing.T) {
		doctor := newTestDoctor()

		assert.False(t, doctor.RemoveSlot(key, "14:00-15:00"))
		assert.Equal(t, []string{"14:00-15:00"}, doctor.Associations[1].TimeSlots)
	})

	t.Run("does not alias the original backing array", func(t *testing.T) {
		doctor := newTestDoctor()
		before := doctor.Associations[0].TimeSlots

		require.True(t, doctor.RemoveSlot(key, "09:00-10:00"))
		assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, before)
	})
}

func TestDoctor_RestoreSlot(t *testing.T) {
	key := AssociationKey{HospitalPin: "111", Department: "Cardiology"}
	doctor := newTestDoctor()

	require.True(t, doctor.RemoveSlot(key, "09:00-10:00"))
	assert.True(t, doctor.RestoreSlot(key, "09:00-10:00"))
	assert.ElementsMatch(t, []string{"09:00-10:00", "10:00-11:00"}, doctor.Associations[0].TimeSlots)

	// already present
	assert.True(t, doctor.RestoreSlot(key, "09:00-10:00"))
	assert.Len(t, doctor.Associations[0].TimeSlots, 2)

	assert.False(t, doctor.RestoreSlot(AssociationKey{HospitalPin: "999", Department: "Cardiology"}, "09:00-10:00"))
}

func TestDoctor_HeldSlots(t *testing.T) {
	held := newTestDoctor().HeldSlots()

	assert.Len(t, held, 4)
	assert.Contains(t, held, "14:00-15:00")
	assert.Contains(t, held, "16:00-17:00")
}

func TestDoctor_Identity(t *testing.T) {
	doctor := newTestDoctor()

	assert.True(t, doctor.IsSameDoctor(" dr. rao ", "mbbs"))
	assert.False(t, doctor.IsSameDoctor("Dr. Rao", "MD"))
	assert.True(t, doctor.HasSpecialization("neurology"))
	assert.False(t, doctor.HasSpecialization("Oncology"))
	assert.True(t, doctor.PracticesAt("222"))
	assert.False(t, doctor.PracticesAt("333"))
}

func TestHospital_Department(t *testing.T) {
	hospital := &Hospital{HospitalName: "City Care", Location: "Pune", Departments: []string{"Cardiology", "ENT"}}

	label, ok := hospital.Department("ent")
	require.True(t, ok)
	assert.Equal(t, "ENT", label)

	_, ok = hospital.Department("Oncology")
	assert.False(t, ok)

	assert.True(t, hospital.IsSameHospital("city care", " PUNE"))
	assert.False(t, hospital.IsSameHospital("City Care", "Mumbai"))
}

func TestTimeModel_Stamps(t *testing.T) {
	var stamps TimeModel
	stamps.SetCreatedAtUpdatedAt()

	assert.Equal(t, stamps.CreatedAt, stamps.UpdatedAt)
	assert.Equal(t, time.UTC, stamps.CreatedAt.Location())
	assert.Zero(t, stamps.CreatedAt.Nanosecond()%int(time.Millisecond))

	stamps.SetUpdatedAt()
	assert.False(t, stamps.UpdatedAt.Before(stamps.CreatedAt))
}
