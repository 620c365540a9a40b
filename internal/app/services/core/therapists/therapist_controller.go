package therapists

import (
	"context"
	"net/http"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/pkg/constvars"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/exceptions"
	"practicare-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
}

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase) *TherapistController {
	return &TherapistController{
		Log:              logger,
		TherapistUsecase: therapistUsecase,
	}
}

func (ctrl *TherapistController) CreateTherapist(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOwnerID))
		return
	}

	request := new(requests.CreateTherapistRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.OwnerID = ownerID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.CreateTherapist(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTherapistSuccessMessage, response)
}

func (ctrl *TherapistController) FindTherapistByID(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	if ownerID == "" || therapistID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamTherapistID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.FindTherapistByID(ctx, ownerID, therapistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTherapistSuccessMessage, response)
}

func (ctrl *TherapistController) FindTherapistsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOwnerID))
		return
	}

	queryParams := utils.ParseQueryParams(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.TherapistUsecase.FindTherapistsByOwnerID(ctx, ownerID, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, queryParams.Page, queryParams.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListTherapistsSuccessMessage, pagination, response)
}

func (ctrl *TherapistController) UpdateTherapist(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	if ownerID == "" || therapistID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamTherapistID))
		return
	}

	request := new(requests.UpdateTherapistRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.OwnerID = ownerID
	request.TherapistID = therapistID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.UpdateTherapist(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTherapistSuccessMessage, response)
}

func (ctrl *TherapistController) DeleteTherapist(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	therapistID := chi.URLParam(r, constvars.URLParamTherapistID)
	if ownerID == "" || therapistID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamTherapistID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.TherapistUsecase.DeleteTherapistByID(ctx, ownerID, therapistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTherapistSuccessMessage, nil)
}
