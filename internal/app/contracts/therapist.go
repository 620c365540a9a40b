package contracts

import (
	"context"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
)

type TherapistUsecase interface {
	CreateTherapist(ctx context.Context, request *requests.CreateTherapistRequest) (*responses.Therapist, error)
	FindTherapistByID(ctx context.Context, ownerID, therapistID string) (*responses.Therapist, error)
	FindTherapistsByOwnerID(ctx context.Context, ownerID string, queryParams *requests.QueryParams) ([]responses.Therapist, int, error)
	UpdateTherapist(ctx context.Context, request *requests.UpdateTherapistRequest) (*responses.Therapist, error)
	DeleteTherapistByID(ctx context.Context, ownerID, therapistID string) error
}

type TherapistRepository interface {
	InsertTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error)
	FindTherapistByID(ctx context.Context, therapistID string) (*models.Therapist, error)
	FindTherapistsByOwnerID(ctx context.Context, ownerID string, page, pageSize int) ([]models.Therapist, int, error)
	UpdateTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error)
	DeleteTherapistByID(ctx context.Context, therapistID string) error
}
