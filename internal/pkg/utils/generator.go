package utils

import (
	"fmt"
	"hospital-booking-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateID() string {
	return uuid.NewString()
}

func GenerateDoctorEarningsObjectName(doctorID string, at time.Time) string {
	return fmt.Sprintf(constvars.ReportObjectDoctorEarningsFormat, doctorID, at.Format(constvars.ReportTimestampLayout))
}

func GenerateHospitalEarningsObjectName(hospitalPin string, at time.Time) string {
	return fmt.Sprintf(constvars.ReportObjectHospitalEarningsFormat, hospitalPin, at.Format(constvars.DateOnlyLayout))
}
