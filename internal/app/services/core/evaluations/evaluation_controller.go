package evaluations

import (
	"context"
	"net/http"
	"practicare-service/internal/app/config"
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

type EvaluationController struct {
	Log               *zap.Logger
	EvaluationUsecase contracts.EvaluationUsecase
	InternalConfig    *config.InternalConfig
}

func NewEvaluationController(logger *zap.Logger, evaluationUsecase contracts.EvaluationUsecase, internalConfig *config.InternalConfig) *EvaluationController {
	return &EvaluationController{
		Log:               logger,
		EvaluationUsecase: evaluationUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *EvaluationController) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	request := new(requests.CreateEvaluationRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = patientID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EvaluationUsecase.CreateEvaluation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEvaluationSuccessMessage, response)
}

func (ctrl *EvaluationController) FindEvaluationByID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	evaluationID := chi.URLParam(r, constvars.URLParamEvaluationID)
	if patientID == "" || evaluationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamEvaluationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EvaluationUsecase.FindEvaluationByID(ctx, patientID, evaluationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEvaluationSuccessMessage, response)
}

func (ctrl *EvaluationController) FindEvaluationsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamPatientID))
		return
	}

	queryParams := utils.ParseQueryParams(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.EvaluationUsecase.FindEvaluationsByPatientID(ctx, patientID, queryParams)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, queryParams.Page, queryParams.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListEvaluationsSuccessMessage, pagination, response)
}

func (ctrl *EvaluationController) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	evaluationID := chi.URLParam(r, constvars.URLParamEvaluationID)
	if patientID == "" || evaluationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamEvaluationID))
		return
	}

	request := new(requests.UpdateEvaluationRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.PatientID = patientID
	request.EvaluationID = evaluationID

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EvaluationUsecase.UpdateEvaluation(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEvaluationSuccessMessage, response)
}

func (ctrl *EvaluationController) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	evaluationID := chi.URLParam(r, constvars.URLParamEvaluationID)
	if patientID == "" || evaluationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamEvaluationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.EvaluationUsecase.DeleteEvaluationByID(ctx, patientID, evaluationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEvaluationSuccessMessage, nil)
}

// UploadReport accepts a multipart "file" part and stores it as the
// evaluation's report object.
func (ctrl *EvaluationController) UploadReport(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	evaluationID := chi.URLParam(r, constvars.URLParamEvaluationID)
	if patientID == "" || evaluationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamEvaluationID))
		return
	}

	maxSizeInMB := ctrl.InternalConfig.App.ReportMaxUploadSizeInMB
	maxSizeInBytes := int64(maxSizeInMB) << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxSizeInBytes)
	if err := r.ParseMultipartForm(maxSizeInBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMultipartParse(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMultipartParse(err))
		return
	}
	defer file.Close()

	if header.Size > maxSizeInBytes {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(nil, maxSizeInMB))
		return
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EvaluationUsecase.UploadReport(ctx, patientID, evaluationID, header.Filename, contentType, header.Size, file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadReportSuccessMessage, response)
}

func (ctrl *EvaluationController) GetReportURL(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	evaluationID := chi.URLParam(r, constvars.URLParamEvaluationID)
	if patientID == "" || evaluationID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamEvaluationID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EvaluationUsecase.GetReportURL(ctx, patientID, evaluationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportURLSuccessMessage, response)
}
