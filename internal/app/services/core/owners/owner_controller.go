package owners

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

type OwnerController struct {
	Log          *zap.Logger
	OwnerUsecase contracts.OwnerUsecase
}

func NewOwnerController(logger *zap.Logger, ownerUsecase contracts.OwnerUsecase) *OwnerController {
	return &OwnerController{
		Log:          logger,
		OwnerUsecase: ownerUsecase,
	}
}

func (ctrl *OwnerController) CreateOwner(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateOwnerRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OwnerUsecase.CreateOwner(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateOwnerSuccessMessage, response)
}

func (ctrl *OwnerController) FindOwnerByID(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOwnerID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OwnerUsecase.FindOwnerByID(ctx, ownerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOwnerSuccessMessage, response)
}

func (ctrl *OwnerController) FindAllOwners(w http.ResponseWriter, r *http.Request) {
	queryParams := utils.ParseQueryParams(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.OwnerUsecase.FindAllOwners(ctx, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, queryParams.Page, queryParams.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListOwnersSuccessMessage, pagination, response)
}

func (ctrl *OwnerController) UpdateOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOwnerID))
		return
	}

	request := new(requests.UpdateOwnerRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OwnerUsecase.UpdateOwner(ctx, ownerID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOwnerSuccessMessage, response)
}

func (ctrl *OwnerController) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamOwnerID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.OwnerUsecase.DeleteOwnerByID(ctx, ownerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteOwnerSuccessMessage, nil)
}
