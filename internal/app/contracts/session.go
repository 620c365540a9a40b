package contracts

import (
	"context"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*responses.Session, error)
	FindSessionByID(ctx context.Context, patientID, sessionID string) (*responses.Session, error)
	FindSessionsByPatientID(ctx context.Context, patientID string, queryParams *requests.QueryParams) ([]responses.Session, int, error)
	UpdateSession(ctx context.Context, request *requests.UpdateSessionRequest) (*responses.Session, error)
	DeleteSessionByID(ctx context.Context, patientID, sessionID string) error
}

type SessionRepository interface {
	InsertSession(ctx context.Context, session *models.Session) (*models.Session, error)
	FindSessionByID(ctx context.Context, sessionID string) (*models.Session, error)
	FindSessionsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Session, int, error)
	UpdateSession(ctx context.Context, session *models.Session) (*models.Session, error)
	DeleteSessionByID(ctx context.Context, sessionID string) error
}
