package earnings

import (
	"context"
	"errors"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/responses"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type earningsUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	HospitalRepository    contracts.HospitalRepository
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	ReportStorage         contracts.ReportStorage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

type Dependencies struct {
	AppointmentRepository contracts.AppointmentRepository
	HospitalRepository    contracts.HospitalRepository
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	// ReportStorage is optional. Exports fail with 503 without it.
	ReportStorage  contracts.ReportStorage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Now            func() time.Time
}

func NewEarningsUsecase(deps Dependencies) contracts.EarningsUsecase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &earningsUsecase{
		AppointmentRepository: deps.AppointmentRepository,
		HospitalRepository:    deps.HospitalRepository,
		DoctorRepository:      deps.DoctorRepository,
		SessionService:        deps.SessionService,
		ReportStorage:         deps.ReportStorage,
		InternalConfig:        deps.InternalConfig,
		Log:                   deps.Log,
		now:                   now,
	}
}

func (uc *earningsUsecase) GetDoctorEarnings(ctx context.Context, sessionData string) (*responses.DoctorEarnings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("earningsUsecase.GetDoctorEarnings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor, err := uc.sessionDoctor(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.doctorEarnings(ctx, doctor)
}

func (uc *earningsUsecase) GetHospitalEarnings(ctx context.Context, sessionData string) (*responses.HospitalEarnings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("earningsUsecase.GetHospitalEarnings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsHospitalAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	hospital, err := uc.HospitalRepository.FindByPin(ctx, session.HospitalPin)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotFound(nil)
	}
	return uc.hospitalEarnings(ctx, hospital)
}

func (uc *earningsUsecase) ExportDoctorEarnings(ctx context.Context, sessionData string) (*responses.EarningsExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("earningsUsecase.ExportDoctorEarnings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.ReportStorage == nil {
		return nil, exceptions.ErrReportExportDisabled(nil)
	}

	doctor, err := uc.sessionDoctor(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	report, err := uc.doctorEarnings(ctx, doctor)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	objectName := utils.GenerateDoctorEarningsObjectName(doctor.ID, now)
	err = uc.ReportStorage.UploadJSON(ctx, objectName, report)
	if err != nil {
		uc.Log.Error("earningsUsecase.ExportDoctorEarnings error uploading report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Report.PresignedURLExpiryTimeInHours) * time.Hour
	url, err := uc.ReportStorage.GetObjectUrlWithExpiryTime(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventDoctorEarningsExported,
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)

	return &responses.EarningsExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(expiry),
	}, nil
}

// ExportAllHospitalEarnings keeps going after a failed hospital and returns
// every failure joined.
func (uc *earningsUsecase) ExportAllHospitalEarnings(ctx context.Context) (int, error) {
	if uc.ReportStorage == nil {
		return 0, exceptions.ErrReportExportDisabled(nil)
	}

	hospitals, err := uc.HospitalRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	now := uc.now()
	var (
		written int
		errs    []error
	)
	for i := range hospitals {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		hospital := &hospitals[i]
		report, err := uc.hospitalEarnings(ctx, hospital)
		if err == nil {
			err = uc.ReportStorage.UploadJSON(ctx, utils.GenerateHospitalEarningsObjectName(hospital.Pin, now), report)
		}
		if err != nil {
			uc.Log.Warn("earningsUsecase.ExportAllHospitalEarnings hospital skipped",
				zap.String(constvars.LoggingHospitalPinKey, hospital.Pin),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		written++
	}

	uc.Log.Info("earningsUsecase.ExportAllHospitalEarnings finished",
		zap.Int(constvars.LoggingCountKey, written),
	)
	return written, errors.Join(errs...)
}

func (uc *earningsUsecase) sessionDoctor(ctx context.Context, sessionData string) (*models.Doctor, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

// doctorEarnings groups by hospital pin, then labels each entry with the
// hospital name, falling back to the pin for hospitals no longer on record.
func (uc *earningsUsecase) doctorEarnings(ctx context.Context, doctor *models.Doctor) (*responses.DoctorEarnings, error) {
	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		return nil, err
	}

	hospitals, err := uc.HospitalRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(hospitals))
	for _, hospital := range hospitals {
		names[hospital.Pin] = hospital.HospitalName
	}

	earnings := Aggregate(appointments,
		func(a *models.Appointment) bool { return a.DoctorID == doctor.ID },
		doctorShare,
		func(a *models.Appointment) string { return a.HospitalPin },
	)
	for i := range earnings.Breakdown {
		pin := earnings.Breakdown[i].Label
		if name := names[pin]; name != "" {
			earnings.Breakdown[i].Label = name
		}
	}

	return &responses.DoctorEarnings{
		DoctorID:      doctor.ID,
		DoctorName:    doctor.Name,
		Count:         earnings.Count,
		GrossFees:     earnings.GrossFees,
		TotalEarnings: earnings.TotalShare,
		ByHospital:    utils.MapEarningsEntriesToResponse(earnings.Breakdown),
	}, nil
}

func (uc *earningsUsecase) hospitalEarnings(ctx context.Context, hospital *models.Hospital) (*responses.HospitalEarnings, error) {
	appointments, err := uc.AppointmentRepository.FindByHospitalPin(ctx, hospital.Pin)
	if err != nil {
		return nil, err
	}

	atHospital := func(a *models.Appointment) bool { return a.HospitalPin == hospital.Pin }
	byDoctor := Aggregate(appointments, atHospital, hospitalShare, func(a *models.Appointment) string { return a.DoctorName })
	byDepartment := Aggregate(appointments, atHospital, hospitalShare, func(a *models.Appointment) string { return a.Department })

	return &responses.HospitalEarnings{
		HospitalPin:  hospital.Pin,
		HospitalName: hospital.HospitalName,
		Count:        byDoctor.Count,
		GrossFees:    byDoctor.GrossFees,
		TotalRevenue: byDoctor.TotalShare,
		ByDoctor:     utils.MapEarningsEntriesToResponse(byDoctor.Breakdown),
		ByDepartment: utils.MapEarningsEntriesToResponse(byDepartment.Breakdown),
	}, nil
}
