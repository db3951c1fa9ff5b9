package utils

import (
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/dto/responses"
)

func MapHospitalToResponse(hospital *models.Hospital) *responses.Hospital {
	return &responses.Hospital{
		ID:           hospital.ID,
		AdminName:    hospital.AdminName,
		HospitalName: hospital.HospitalName,
		Location:     hospital.Location,
		Pin:          hospital.Pin,
		Departments:  nonNilStrings(hospital.Departments),
	}
}

func MapHospitalsToResponse(hospitals []models.Hospital) []responses.Hospital {
	result := make([]responses.Hospital, 0, len(hospitals))
	for i := range hospitals {
		result = append(result, *MapHospitalToResponse(&hospitals[i]))
	}
	return result
}

func MapDoctorToResponse(doctor *models.Doctor) *responses.Doctor {
	associations := make([]responses.Association, 0, len(doctor.Associations))
	for _, association := range doctor.Associations {
		associations = append(associations, responses.Association{
			HospitalPin: association.HospitalPin,
			Department:  association.Department,
			Fee:         association.Fee,
			TimeSlots:   nonNilStrings(association.TimeSlots),
		})
	}
	return &responses.Doctor{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Qualifications:  doctor.Qualifications,
		Specializations: nonNilStrings(doctor.Specializations),
		Experience:      doctor.Experience,
		Associations:    associations,
	}
}

func MapDoctorsToResponse(doctors []models.Doctor) []responses.Doctor {
	result := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		result = append(result, *MapDoctorToResponse(&doctors[i]))
	}
	return result
}

func MapPatientToResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:          patient.ID,
		Name:        patient.Name,
		Gender:      patient.Gender,
		DateOfBirth: patient.DateOfBirth,
		UniqueID:    patient.UniqueID,
	}
}

func MapPatientsToResponse(patients []models.Patient) []responses.Patient {
	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *MapPatientToResponse(&patients[i]))
	}
	return result
}

func MapAppointmentToResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		HospitalPin: appointment.HospitalPin,
		Department:  appointment.Department,
		Slot:        appointment.Slot,
		Fee:         appointment.Fee,
		Date:        appointment.Date,
		CreatedAt:   appointment.CreatedAt,
	}
}

func MapAppointmentsToResponse(appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *MapAppointmentToResponse(&appointments[i]))
	}
	return result
}

func MapEarningsEntriesToResponse(entries []models.EarningsEntry) []responses.EarningsEntry {
	result := make([]responses.EarningsEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, responses.EarningsEntry{Label: entry.Label, Amount: entry.Amount})
	}
	return result
}

func nonNilStrings(input []string) []string {
	if input == nil {
		return []string{}
	}
	return input
}
