package hospitals

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
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase contracts.HospitalUsecase
	InternalConfig  *config.InternalConfig
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase contracts.HospitalUsecase, internalConfig *config.InternalConfig) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *HospitalController) RegisterHospital(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.RegisterHospital)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeRegisterHospitalRequest(request)
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	response, err := ctrl.HospitalUsecase.RegisterHospital(ctx, request)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildAuthResponse(w, response)
}

func (ctrl *HospitalController) ListHospitals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	response, err := ctrl.HospitalUsecase.ListHospitals(ctx)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalsSuccessMessage, response)
}

func (ctrl *HospitalController) FindHospitalByPin(w http.ResponseWriter, r *http.Request) {
	hospitalPin := chi.URLParam(r, constvars.URLParamHospitalPin)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	response, err := ctrl.HospitalUsecase.FindHospitalByPin(ctx, hospitalPin)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) ListHospitalDoctors(w http.ResponseWriter, r *http.Request) {
	hospitalPin := chi.URLParam(r, constvars.URLParamHospitalPin)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.timeout())
	defer cancel()

	response, err := ctrl.HospitalUsecase.ListHospitalDoctors(ctx, hospitalPin)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalDoctorsSuccessMessage, response)
}

func (ctrl *HospitalController) timeout() time.Duration {
	return utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds)
}

func (ctrl *HospitalController) handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
