package hospitals

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

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	DoctorRepository   contracts.DoctorRepository
	SessionService     contracts.SessionService
	Log                *zap.Logger
}

func NewHospitalUsecase(
	hospitalRepository contracts.HospitalRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalRepository,
		DoctorRepository:   doctorRepository,
		SessionService:     sessionService,
		Log:                logger,
	}
}

// RegisterHospital doubles as the admin login: the same pin, name and
// location return the existing hospital.
func (uc *hospitalUsecase) RegisterHospital(ctx context.Context, request *requests.RegisterHospital) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("hospitalUsecase.RegisterHospital called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalPinKey, request.Pin),
	)

	existing, err := uc.HospitalRepository.FindByPin(ctx, request.Pin)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital error fetching hospital by pin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if existing != nil {
		if !existing.IsSameHospital(request.HospitalName, request.Location) {
			return nil, exceptions.ErrHospitalPinAlreadyUsed(nil)
		}
		return uc.startSession(ctx, existing, false)
	}

	hospital := &models.Hospital{
		ID:           utils.GenerateID(),
		AdminName:    request.AdminName,
		HospitalName: request.HospitalName,
		Location:     request.Location,
		Pin:          request.Pin,
		Departments:  request.Departments,
	}
	hospital.SetCreatedAtUpdatedAt()

	err = uc.HospitalRepository.Create(ctx, hospital)
	if err != nil {
		uc.Log.Error("hospitalUsecase.RegisterHospital error creating hospital",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventHospitalRegistered,
		zap.String(constvars.LoggingHospitalIDKey, hospital.ID),
		zap.String(constvars.LoggingHospitalPinKey, hospital.Pin),
	)
	return uc.startSession(ctx, hospital, true)
}

func (uc *hospitalUsecase) ListHospitals(ctx context.Context) ([]responses.Hospital, error) {
	hospitals, err := uc.HospitalRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.MapHospitalsToResponse(hospitals), nil
}

func (uc *hospitalUsecase) FindHospitalByPin(ctx context.Context, hospitalPin string) (*responses.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindByPin(ctx, hospitalPin)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotFound(nil)
	}
	return utils.MapHospitalToResponse(hospital), nil
}

// ListHospitalDoctors returns every doctor holding an association at the
// hospital, with or without open slots.
func (uc *hospitalUsecase) ListHospitalDoctors(ctx context.Context, hospitalPin string) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	hospital, err := uc.HospitalRepository.FindByPin(ctx, hospitalPin)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotFound(nil)
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("hospitalUsecase.ListHospitalDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	practicing := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.PracticesAt(hospitalPin) {
			practicing = append(practicing, doctor)
		}
	}
	return utils.MapDoctorsToResponse(practicing), nil
}

func (uc *hospitalUsecase) startSession(ctx context.Context, hospital *models.Hospital, isNew bool) (*responses.Auth, error) {
	token, err := uc.SessionService.CreateSession(ctx, &models.Session{
		Role:        constvars.RoleTypeHospitalAdmin,
		HospitalID:  hospital.ID,
		HospitalPin: hospital.Pin,
	})
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token:    token,
		Role:     constvars.RoleTypeHospitalAdmin,
		IsNew:    isNew,
		Hospital: utils.MapHospitalToResponse(hospital),
	}, nil
}
