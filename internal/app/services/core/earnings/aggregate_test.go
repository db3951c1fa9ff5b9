package earnings

import (
	"hospital-booking-service/internal/app/models"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: "a1", DoctorID: "doc-1", DoctorName: "Asha", HospitalPin: "111", Department: "Cardiology", Fee: 500},
		{ID: "a2", DoctorID: "doc-1", DoctorName: "Asha", HospitalPin: "222", Department: "Cardiology", Fee: 300},
		{ID: "a3", DoctorID: "doc-2", DoctorName: "Vikram", HospitalPin: "111", Department: "Neurology", Fee: 400},
		{ID: "a4", DoctorID: "doc-1", DoctorName: "Asha", HospitalPin: "111", Department: "Cardiology", Fee: 500},
	}
}

func byPin(a *models.Appointment) string { return a.HospitalPin }

func TestAggregate(t *testing.T) {
	appointments := sampleAppointments()

	t.Run("doctor share grouped by hospital in first-seen order", func(t *testing.T) {
		got := Aggregate(appointments, func(a *models.Appointment) bool { return a.DoctorID == "doc-1" }, doctorShare, byPin)

		assert.Equal(t, 3, got.Count)
		assert.Equal(t, 1300.0, got.GrossFees)
		assert.Equal(t, 780.0, got.TotalShare)
		assert.Equal(t, []models.EarningsEntry{
			{Label: "111", Amount: 600},
			{Label: "222", Amount: 180},
		}, got.Breakdown)
	})

	t.Run("hospital share grouped by doctor", func(t *testing.T) {
		got := Aggregate(appointments, func(a *models.Appointment) bool { return a.HospitalPin == "111" }, hospitalShare,
			func(a *models.Appointment) string { return a.DoctorName })

		assert.Equal(t, 3, got.Count)
		assert.Equal(t, 560.0, got.TotalShare)
		assert.Equal(t, []models.EarningsEntry{
			{Label: "Asha", Amount: 400},
			{Label: "Vikram", Amount: 160},
		}, got.Breakdown)
	})

	t.Run("nothing matches", func(t *testing.T) {
		got := Aggregate(appointments, func(a *models.Appointment) bool { return false }, doctorShare, byPin)

		assert.Zero(t, got.Count)
		assert.Zero(t, got.TotalShare)
		assert.NotNil(t, got.Breakdown)
		assert.Empty(t, got.Breakdown)
	})

	t.Run("same input gives the same result", func(t *testing.T) {
		all := func(a *models.Appointment) bool { return true }
		assert.Equal(t, Aggregate(appointments, all, doctorShare, byPin), Aggregate(appointments, all, doctorShare, byPin))
	})
}

func TestAggregate_SharesSumToFee(t *testing.T) {
	for _, fee := range []float64{0, 1, 333.33, 499.99, 1250.5} {
		appointments := []models.Appointment{{Fee: fee}}
		all := func(a *models.Appointment) bool { return true }

		doctor := Aggregate(appointments, all, doctorShare, byPin).TotalShare
		hospital := Aggregate(appointments, all, hospitalShare, byPin).TotalShare

		sum := decimal.NewFromFloat(doctor).Add(decimal.NewFromFloat(hospital))
		assert.True(t, sum.Equal(decimal.NewFromFloat(fee)), "fee %v split into %v + %v", fee, doctor, hospital)
	}
}
