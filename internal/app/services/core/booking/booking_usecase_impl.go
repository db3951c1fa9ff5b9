package booking

import (
	"context"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	HospitalRepository    contracts.HospitalRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

type Dependencies struct {
	HospitalRepository    contracts.HospitalRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	LockerService         contracts.LockerService
	// EventPublisher is optional.
	EventPublisher contracts.EventPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewBookingUsecase(deps Dependencies) contracts.BookingUsecase {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &bookingUsecase{
		HospitalRepository:    deps.HospitalRepository,
		DoctorRepository:      deps.DoctorRepository,
		PatientRepository:     deps.PatientRepository,
		AppointmentRepository: deps.AppointmentRepository,
		SessionService:        deps.SessionService,
		LockerService:         deps.LockerService,
		EventPublisher:        deps.EventPublisher,
		InternalConfig:        deps.InternalConfig,
		Log:                   deps.Log,
		now:                   now,
	}
}

// ListEligibleDepartments is empty for an unknown hospital.
func (uc *bookingUsecase) ListEligibleDepartments(ctx context.Context, hospitalPin string) (*responses.EligibleDepartments, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListEligibleDepartments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalPinKey, hospitalPin),
	)

	hospital, err := uc.HospitalRepository.FindByPin(ctx, hospitalPin)
	if err != nil {
		return nil, err
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.EligibleDepartments{
		HospitalPin: hospitalPin,
		Departments: EligibleDepartments(hospital, doctors),
	}, nil
}

func (uc *bookingUsecase) ListEligibleDoctors(ctx context.Context, hospitalPin, department string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.ListEligibleDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalPinKey, hospitalPin),
		zap.String(constvars.LoggingDepartmentKey, department),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorsToResponse(EligibleDoctors(doctors, hospitalPin, department)), nil
}

func (uc *bookingUsecase) ListAvailableSlots(ctx context.Context, request *requests.AssociationLookup) (*responses.AvailableSlots, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	key := models.AssociationKey{HospitalPin: request.HospitalPin, Department: request.Department}
	return &responses.AvailableSlots{
		DoctorID:    request.DoctorID,
		HospitalPin: request.HospitalPin,
		Department:  request.Department,
		TimeSlots:   AvailableSlots(doctor, key),
	}, nil
}

func (uc *bookingUsecase) GetConsultationFee(ctx context.Context, request *requests.AssociationLookup) (*responses.ConsultationFee, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	key := models.AssociationKey{HospitalPin: request.HospitalPin, Department: request.Department}
	return &responses.ConsultationFee{
		DoctorID:    request.DoctorID,
		HospitalPin: request.HospitalPin,
		Department:  request.Department,
		Fee:         FeeFor(doctor, key),
	}, nil
}

// BookAppointment consumes the slot and writes the appointment, or does
// neither. A booking holds a lease on its doctor and slot, and the slot
// removal is conditional on the slot still being offered.
func (uc *bookingUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingHospitalPinKey, request.HospitalPin),
		zap.String(constvars.LoggingDepartmentKey, request.Department),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	patientID, err := resolvePatientID(session, request)
	if err != nil {
		return nil, err
	}

	isPast, err := utils.IsBeforeToday(request.Date, uc.now())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if isPast {
		return nil, exceptions.ErrPastAppointmentDate(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	hospital, err := uc.HospitalRepository.FindByPin(ctx, request.HospitalPin)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotFound(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	key := models.AssociationKey{HospitalPin: request.HospitalPin, Department: request.Department}
	association, ok := doctor.FindAssociation(key)
	if !ok {
		return nil, exceptions.ErrAssociationNotFound(nil)
	}
	if !decimal.NewFromFloat(association.Fee).Equal(decimal.NewFromFloat(*request.Fee)) {
		return nil, exceptions.ErrFeeChanged(nil)
	}

	lockKey := slotLockKey(doctor.ID, request.Slot)
	lockTTL := time.Duration(uc.InternalConfig.Booking.LockExpirationInSeconds) * time.Second
	lease, err := uc.LockerService.Acquire(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if lease == nil {
		return nil, exceptions.ErrBookingInProgress(nil)
	}
	defer func() {
		if releaseErr := uc.LockerService.Release(context.WithoutCancel(ctx), lease); releaseErr != nil {
			uc.Log.Warn("bookingUsecase.BookAppointment error releasing slot lease",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(releaseErr),
			)
		}
	}()

	err = uc.DoctorRepository.RemoveSlot(ctx, doctor.ID, key, request.Slot)
	if err != nil {
		uc.Log.Info("bookingUsecase.BookAppointment slot not consumed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlotKey, request.Slot),
			zap.Error(err),
		)
		return nil, err
	}

	appointment := &models.Appointment{
		ID:          utils.GenerateID(),
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		HospitalPin: hospital.Pin,
		Department:  association.Department,
		Slot:        request.Slot,
		Fee:         association.Fee,
		Date:        request.Date,
		CreatedAt:   uc.now(),
	}

	err = uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		uc.Log.Error("bookingUsecase.BookAppointment error creating appointment, restoring slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		restoreErr := uc.DoctorRepository.RestoreSlot(context.WithoutCancel(ctx), doctor.ID, key, request.Slot)
		if restoreErr != nil {
			uc.Log.Error("bookingUsecase.BookAppointment error restoring slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
				zap.String(constvars.LoggingSlotKey, request.Slot),
				zap.Error(restoreErr),
			)
		}
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventAppointmentBooked,
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingPatientIDKey, appointment.PatientID),
		zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
		zap.String(constvars.LoggingHospitalPinKey, appointment.HospitalPin),
	)

	uc.publishBooked(ctx, appointment)
	return utils.MapAppointmentToResponse(appointment), nil
}

func (uc *bookingUsecase) publishBooked(ctx context.Context, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}

	err := uc.EventPublisher.PublishAppointmentBooked(ctx, &models.AppointmentBookedEvent{
		EventType:     constvars.EventTypeAppointmentBooked,
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		DoctorName:    appointment.DoctorName,
		HospitalPin:   appointment.HospitalPin,
		Department:    appointment.Department,
		Slot:          appointment.Slot,
		Date:          appointment.Date,
		Fee:           appointment.Fee,
		OccurredAt:    appointment.CreatedAt,
	})
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("bookingUsecase.BookAppointment event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

// slotLockKey scopes the booking lease to one slot of one doctor, so
// bookings of different slots never wait on each other.
func slotLockKey(doctorID, slot string) string {
	return constvars.RedisKeyPrefixBookingLock + doctorID + ":" + slot
}

// resolvePatientID applies the booking roles: patients book for themselves,
// hospital admins book any patient at their own hospital.
func resolvePatientID(session *models.Session, request *requests.BookAppointment) (string, error) {
	switch {
	case session.IsPatient():
		if request.PatientID != "" && request.PatientID != session.PatientID {
			return "", exceptions.ErrPatientMismatch(nil)
		}
		return session.PatientID, nil
	case session.IsHospitalAdmin():
		if request.HospitalPin != session.HospitalPin {
			return "", exceptions.ErrHospitalMismatch(nil)
		}
		if request.PatientID == "" {
			return "", exceptions.ErrPatientIDRequired(nil)
		}
		return request.PatientID, nil
	default:
		return "", exceptions.ErrNotMatchRoleType(nil)
	}
}
