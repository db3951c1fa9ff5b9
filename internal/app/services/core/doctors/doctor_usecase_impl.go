package doctors

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

type doctorUsecase struct {
	DoctorRepository   contracts.DoctorRepository
	HospitalRepository contracts.HospitalRepository
	SessionService     contracts.SessionService
	Log                *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	hospitalRepository contracts.HospitalRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:   doctorRepository,
		HospitalRepository: hospitalRepository,
		SessionService:     sessionService,
		Log:                logger,
	}
}

// RegisterDoctor logs in an existing doctor with the same name and
// qualifications instead of creating a duplicate.
func (uc *doctorUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.RegisterDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.DoctorRepository.FindByNameAndQualifications(ctx, request.Name, request.Qualifications)
	if err != nil {
		uc.Log.Error("doctorUsecase.RegisterDoctor error fetching doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return uc.startSession(ctx, existing, false)
	}

	doctor := &models.Doctor{
		ID:              utils.GenerateID(),
		Name:            request.Name,
		Qualifications:  request.Qualifications,
		Specializations: request.Specializations,
		Experience:      *request.Experience,
		Associations:    []models.Association{},
	}
	doctor.SetCreatedAtUpdatedAt()

	err = uc.DoctorRepository.Create(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.RegisterDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventDoctorRegistered,
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return uc.startSession(ctx, doctor, true)
}

func (uc *doctorUsecase) FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return utils.MapDoctorToResponse(doctor), nil
}

// ListAssociableDepartments returns the hospital's departments that match
// one of the doctor's specializations, in the hospital's casing.
func (uc *doctorUsecase) ListAssociableDepartments(ctx context.Context, sessionData, hospitalPin string) (*responses.AssociableDepartments, error) {
	session, err := uc.doctorSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.findDoctor(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}

	hospital, err := uc.findHospital(ctx, hospitalPin)
	if err != nil {
		return nil, err
	}

	departments := make([]string, 0, len(hospital.Departments))
	for _, department := range hospital.Departments {
		if doctor.HasSpecialization(department) {
			departments = append(departments, department)
		}
	}

	return &responses.AssociableDepartments{
		HospitalPin: hospital.Pin,
		Departments: departments,
	}, nil
}

func (uc *doctorUsecase) CreateAssociation(ctx context.Context, request *requests.CreateAssociation) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateAssociation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalPinKey, request.HospitalPin),
		zap.String(constvars.LoggingDepartmentKey, request.Department),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	hospital, err := uc.findHospital(ctx, request.HospitalPin)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.findDoctor(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}

	department, ok := hospital.Department(request.Department)
	if !ok || !doctor.HasSpecialization(department) {
		return nil, exceptions.ErrDepartmentNotAssociable(nil)
	}

	timeSlots := utils.TrimNonEmpty(request.TimeSlots)
	if len(timeSlots) == 0 {
		return nil, exceptions.ErrEmptyTimeSlots(nil)
	}
	if _, duplicated := utils.FindDuplicate(timeSlots); duplicated {
		return nil, exceptions.ErrDuplicateTimeSlot(nil)
	}

	held := doctor.HeldSlots()
	for _, slot := range timeSlots {
		if _, taken := held[slot]; taken {
			uc.Log.Info("doctorUsecase.CreateAssociation slot already held",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
				zap.String(constvars.LoggingSlotKey, slot),
			)
			return nil, exceptions.ErrTimeSlotConflict(nil)
		}
	}

	association := models.Association{
		HospitalPin: hospital.Pin,
		Department:  department,
		Fee:         *request.Fee,
		TimeSlots:   timeSlots,
	}

	err = uc.DoctorRepository.AddAssociation(ctx, doctor.ID, association)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateAssociation error adding association",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventAssociationCreated,
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String(constvars.LoggingHospitalPinKey, hospital.Pin),
		zap.String(constvars.LoggingDepartmentKey, department),
		zap.Int(constvars.LoggingCountKey, len(timeSlots)),
	)
	return uc.FindDoctorByID(ctx, doctor.ID)
}

// UpdateAssociationFee never touches booked appointments, which keep the
// fee they were booked at.
func (uc *doctorUsecase) UpdateAssociationFee(ctx context.Context, request *requests.UpdateAssociationFee) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateAssociationFee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalPinKey, request.HospitalPin),
		zap.String(constvars.LoggingDepartmentKey, request.Department),
	)

	session, err := uc.doctorSession(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}

	key := models.AssociationKey{HospitalPin: request.HospitalPin, Department: request.Department}
	err = uc.DoctorRepository.UpdateAssociationFee(ctx, session.DoctorID, key, *request.Fee)
	if err != nil {
		uc.Log.Error("doctorUsecase.UpdateAssociationFee error updating fee",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, constvars.BusinessEventAssociationFeeUpdated,
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
		zap.String(constvars.LoggingHospitalPinKey, request.HospitalPin),
		zap.String(constvars.LoggingDepartmentKey, request.Department),
	)

	return uc.FindDoctorByID(ctx, session.DoctorID)
}

func (uc *doctorUsecase) doctorSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}
	return session, nil
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) findHospital(ctx context.Context, hospitalPin string) (*models.Hospital, error) {
	hospital, err := uc.HospitalRepository.FindByPin(ctx, hospitalPin)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotFound(nil)
	}
	return hospital, nil
}

func (uc *doctorUsecase) startSession(ctx context.Context, doctor *models.Doctor, isNew bool) (*responses.Auth, error) {
	token, err := uc.SessionService.CreateSession(ctx, &models.Session{
		Role:     constvars.RoleTypeDoctor,
		DoctorID: doctor.ID,
	})
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token:  token,
		Role:   constvars.RoleTypeDoctor,
		IsNew:  isNew,
		Doctor: utils.MapDoctorToResponse(doctor),
	}, nil
}
