package evaluations

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
	"practicare-service/internal/pkg/exceptions"
	"practicare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const eventEvaluationReportUploaded = "evaluation.report_uploaded"

type evaluationUsecase struct {
	Log                  *zap.Logger
	EvaluationRepository contracts.EvaluationRepository
	PatientRepository    contracts.PatientRepository
	StorageService       contracts.StorageService
	EventPublisher       contracts.EventPublisher
	InternalConfig       *config.InternalConfig
}

func NewEvaluationUsecase(
	logger *zap.Logger,
	evaluationRepository contracts.EvaluationRepository,
	patientRepository contracts.PatientRepository,
	storageService contracts.StorageService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
) contracts.EvaluationUsecase {
	return &evaluationUsecase{
		Log:                  logger,
		EvaluationRepository: evaluationRepository,
		PatientRepository:    patientRepository,
		StorageService:       storageService,
		EventPublisher:       eventPublisher,
		InternalConfig:       internalConfig,
	}
}

func (uc *evaluationUsecase) CreateEvaluation(ctx context.Context, request *requests.CreateEvaluationRequest) (*responses.Evaluation, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	date, err := time.Parse(time.RFC3339, request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	now := time.Now().UTC()
	evaluation := &models.Evaluation{
		ID:        utils.GenerateRecordID(),
		PatientID: request.PatientID,
		Date:      date.UTC(),
		Summary:   request.Summary,
		Score:     request.Score,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.EvaluationRepository.InsertEvaluation(ctx, evaluation)
	if err != nil {
		return nil, err
	}

	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *evaluationUsecase) FindEvaluationByID(ctx context.Context, patientID, evaluationID string) (*responses.Evaluation, error) {
	evaluation, err := uc.findPatientEvaluation(ctx, patientID, evaluationID)
	if err != nil {
		return nil, err
	}

	response := evaluation.ConvertIntoResponse()
	return &response, nil
}

func (uc *evaluationUsecase) FindEvaluationsByPatientID(ctx context.Context, patientID string, queryParams *requests.QueryParams) ([]responses.Evaluation, int, error) {
	evaluations, total, err := uc.EvaluationRepository.FindEvaluationsByPatientID(ctx, patientID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Evaluation, 0, len(evaluations))
	for _, evaluation := range evaluations {
		response = append(response, evaluation.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *evaluationUsecase) UpdateEvaluation(ctx context.Context, request *requests.UpdateEvaluationRequest) (*responses.Evaluation, error) {
	evaluation, err := uc.findPatientEvaluation(ctx, request.PatientID, request.EvaluationID)
	if err != nil {
		return nil, err
	}

	if request.Date != "" {
		date, err := time.Parse(time.RFC3339, request.Date)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		evaluation.Date = date.UTC()
	}
	if request.Summary != "" {
		evaluation.Summary = request.Summary
	}
	if request.Score > 0 {
		evaluation.Score = request.Score
	}
	evaluation.UpdatedAt = time.Now().UTC()

	updated, err := uc.EvaluationRepository.UpdateEvaluation(ctx, evaluation)
	if err != nil {
		return nil, err
	}

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *evaluationUsecase) DeleteEvaluationByID(ctx context.Context, patientID, evaluationID string) error {
	_, err := uc.findPatientEvaluation(ctx, patientID, evaluationID)
	if err != nil {
		return err
	}
	return uc.EvaluationRepository.DeleteEvaluationByID(ctx, evaluationID)
}

func (uc *evaluationUsecase) UploadReport(ctx context.Context, patientID, evaluationID, fileName, contentType string, size int64, reader io.Reader) (*responses.Evaluation, error) {
	evaluation, err := uc.findPatientEvaluation(ctx, patientID, evaluationID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("evaluations/%s/%s%s", evaluationID, utils.GenerateRecordID(), filepath.Ext(fileName))
	storedObject, err := uc.StorageService.UploadObject(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	evaluation.ReportObject = storedObject
	evaluation.UpdatedAt = time.Now().UTC()

	updated, err := uc.EvaluationRepository.UpdateEvaluation(ctx, evaluation)
	if err != nil {
		return nil, err
	}

	event := &contracts.RecordEvent{
		Type:       eventEvaluationReportUploaded,
		ResourceID: evaluationID,
		Detail:     storedObject,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.EventPublisher.PublishRecordEvent(ctx, event); err != nil {
		uc.Log.Warn("failed to publish record event", zap.String("event_type", eventEvaluationReportUploaded), zap.Error(err))
	}

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *evaluationUsecase) GetReportURL(ctx context.Context, patientID, evaluationID string) (*responses.EvaluationReportURL, error) {
	evaluation, err := uc.findPatientEvaluation(ctx, patientID, evaluationID)
	if err != nil {
		return nil, err
	}
	if evaluation.ReportObject == "" {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	expiry := time.Duration(uc.InternalConfig.App.ReportURLExpiryInMinute) * time.Minute
	url, err := uc.StorageService.GetPresignedURL(ctx, evaluation.ReportObject, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.EvaluationReportURL{
		EvaluationID: evaluation.ID,
		URL:          url,
		ExpiresIn:    int(expiry.Seconds()),
	}, nil
}

func (uc *evaluationUsecase) findPatientEvaluation(ctx context.Context, patientID, evaluationID string) (*models.Evaluation, error) {
	evaluation, err := uc.EvaluationRepository.FindEvaluationByID(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil || evaluation.PatientID != patientID {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return evaluation, nil
}
