package earnings

import (
	"context"
	"errors"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"hospital-booking-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type EarningsController struct {
	Log             *zap.Logger
	EarningsUsecase contracts.EarningsUsecase
	InternalConfig  *config.InternalConfig
}

func NewEarningsController(logger *zap.Logger, earningsUsecase contracts.EarningsUsecase, internalConfig *config.InternalConfig) *EarningsController {
	return &EarningsController{
		Log:             logger,
		EarningsUsecase: earningsUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *EarningsController) GetDoctorEarnings(w http.ResponseWriter, r *http.Request) {
	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.EarningsUsecase.GetDoctorEarnings(ctx, sessionData)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorEarningsSuccessMessage, response)
}

func (ctrl *EarningsController) GetHospitalEarnings(w http.ResponseWriter, r *http.Request) {
	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.EarningsUsecase.GetHospitalEarnings(ctx, sessionData)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalEarningsSuccessMessage, response)
}

func (ctrl *EarningsController) ExportDoctorEarnings(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), utils.RequestTimeout(ctrl.InternalConfig.App.RequestTimeoutInSeconds))
	defer cancel()

	response, err := ctrl.EarningsUsecase.ExportDoctorEarnings(ctx, sessionData)
	if err != nil {
		ctrl.handleError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportDoctorEarningsSuccessMessage, response)
}

func (ctrl *EarningsController) handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
