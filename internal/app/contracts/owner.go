package contracts

import (
	"context"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
)

type OwnerUsecase interface {
	CreateOwner(ctx context.Context, request *requests.CreateOwnerRequest) (*responses.Owner, error)
	FindOwnerByID(ctx context.Context, ownerID string) (*responses.Owner, error)
	FindAllOwners(ctx context.Context, queryParams *requests.QueryParams) ([]responses.Owner, int, error)
	UpdateOwner(ctx context.Context, ownerID string, request *requests.UpdateOwnerRequest) (*responses.Owner, error)
	DeleteOwnerByID(ctx context.Context, ownerID string) error
}

type OwnerRepository interface {
	InsertOwner(ctx context.Context, owner *models.Owner) (*models.Owner, error)
	FindOwnerByID(ctx context.Context, ownerID string) (*models.Owner, error)
	FindAllOwners(ctx context.Context, page, pageSize int) ([]models.Owner, int, error)
	UpdateOwner(ctx context.Context, owner *models.Owner) (*models.Owner, error)
	DeleteOwnerByID(ctx context.Context, ownerID string) error
}
