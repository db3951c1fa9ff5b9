package patients

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		SessionService:        sessionService,
		Log:                   logger,
	}
}

// RegisterPatient logs in when the unique id is already registered.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.PatientRepository.FindByUniqueID(ctx, request.UniqueID)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return uc.startSession(ctx, existing, false)
	}

	patient := &models.Patient{
		ID:          utils.GenerateID(),
		Name:        request.Name,
		Gender:      request.Gender,
		DateOfBirth: request.DateOfBirth,
		UniqueID:    request.UniqueID,
	}
	patient.SetCreatedAtUpdatedAt()

	err = uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventPatientRegistered,
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return uc.startSession(ctx, patient, true)
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.MapPatientsToResponse(patients), nil
}

func (uc *patientUsecase) ListMyAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}
	return utils.MapAppointmentsToResponse(appointments), nil
}

func (uc *patientUsecase) startSession(ctx context.Context, patient *models.Patient, isNew bool) (*responses.Auth, error) {
	token, err := uc.SessionService.CreateSession(ctx, &models.Session{
		Role:      constvars.RoleTypePatient,
		PatientID: patient.ID,
	})
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token:   token,
		Role:    constvars.RoleTypePatient,
		IsNew:   isNew,
		Patient: utils.MapPatientToResponse(patient),
	}, nil
}
