package booking

import (
	"context"
	"errors"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *BookingController) ListEligibleDepartments(w http.ResponseWriter, r *http.Request) {
	hospitalPin := chi.URLParam(r, constvars.URLParamHospitalPin)

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.BookingUsecase.ListEligibleDepartments(ctx, hospitalPin)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEligibleDepartmentsSuccessMessage, response)
}

func (ctrl *BookingController) ListEligibleDoctors(w http.ResponseWriter, r *http.Request) {
	hospitalPin := chi.URLParam(r, constvars.URLParamHospitalPin)
	department, err := url.PathUnescape(chi.URLParam(r, constvars.URLParamDepartment))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamDepartment))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.BookingUsecase.ListEligibleDoctors(ctx, hospitalPin, department)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEligibleDoctorsSuccessMessage, response)
}

func (ctrl *BookingController) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.associationLookup(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.BookingUsecase.ListAvailableSlots(ctx, request)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailableSlotsSuccessMessage, response)
}

func (ctrl *BookingController) GetConsultationFee(w http.ResponseWriter, r *http.Request) {
	request, err := ctrl.associationLookup(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.BookingUsecase.GetConsultationFee(ctx, request)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFeeSuccessMessage, response)
}

func (ctrl *BookingController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	// Bind body to request
	request := new(requests.BookAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookAppointmentRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	request.SessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.BookingUsecase.BookAppointment(ctx, request)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccessMessage, response)
}

func (ctrl *BookingController) associationLookup(r *http.Request) (*requests.AssociationLookup, error) {
	query := r.URL.Query()
	request := &requests.AssociationLookup{
		DoctorID:    chi.URLParam(r, constvars.URLParamDoctorID),
		HospitalPin: strings.TrimSpace(query.Get(constvars.QueryParamHospitalPin)),
		Department:  strings.TrimSpace(query.Get(constvars.QueryParamDepartment)),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}

func (ctrl *BookingController) handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
