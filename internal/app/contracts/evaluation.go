package contracts

import (
	"context"
	"io"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
)

type EvaluationUsecase interface {
	CreateEvaluation(ctx context.Context, request *requests.CreateEvaluationRequest) (*responses.Evaluation, error)
	FindEvaluationByID(ctx context.Context, patientID, evaluationID string) (*responses.Evaluation, error)
	FindEvaluationsByPatientID(ctx context.Context, patientID string, queryParams *requests.QueryParams) ([]responses.Evaluation, int, error)
	UpdateEvaluation(ctx context.Context, request *requests.UpdateEvaluationRequest) (*responses.Evaluation, error)
	DeleteEvaluationByID(ctx context.Context, patientID, evaluationID string) error
	UploadReport(ctx context.Context, patientID, evaluationID, fileName, contentType string, size int64, reader io.Reader) (*responses.Evaluation, error)
	GetReportURL(ctx context.Context, patientID, evaluationID string) (*responses.EvaluationReportURL, error)
}

type EvaluationRepository interface {
	InsertEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error)
	FindEvaluationByID(ctx context.Context, evaluationID string) (*models.Evaluation, error)
	FindEvaluationsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Evaluation, int, error)
	UpdateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error)
	DeleteEvaluationByID(ctx context.Context, evaluationID string) error
}
