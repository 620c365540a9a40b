package owners

import (
	"context"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
	"practicare-service/internal/pkg/exceptions"
	"practicare-service/internal/pkg/utils"
	"time"
)

type ownerUsecase struct {
	OwnerRepository contracts.OwnerRepository
}

func NewOwnerUsecase(ownerRepository contracts.OwnerRepository) contracts.OwnerUsecase {
	return &ownerUsecase{
		OwnerRepository: ownerRepository,
	}
}

func (uc *ownerUsecase) CreateOwner(ctx context.Context, request *requests.CreateOwnerRequest) (*responses.Owner, error) {
	now := time.Now().UTC()
	owner := &models.Owner{
		ID:         utils.GenerateRecordID(),
		Name:       request.Name,
		Email:      request.Email,
		ClinicName: request.ClinicName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := uc.OwnerRepository.InsertOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *ownerUsecase) FindOwnerByID(ctx context.Context, ownerID string) (*responses.Owner, error) {
	owner, err := uc.OwnerRepository.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	response := owner.ConvertIntoResponse()
	return &response, nil
}

func (uc *ownerUsecase) FindAllOwners(ctx context.Context, queryParams *requests.QueryParams) ([]responses.Owner, int, error) {
	owners, total, err := uc.OwnerRepository.FindAllOwners(ctx, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Owner, 0, len(owners))
	for _, owner := range owners {
		response = append(response, owner.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *ownerUsecase) UpdateOwner(ctx context.Context, ownerID string, request *requests.UpdateOwnerRequest) (*responses.Owner, error) {
	owner, err := uc.OwnerRepository.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		owner.Name = request.Name
	}
	if request.Email != "" {
		owner.Email = request.Email
	}
	if request.ClinicName != "" {
		owner.ClinicName = request.ClinicName
	}
	owner.UpdatedAt = time.Now().UTC()

	updated, err := uc.OwnerRepository.UpdateOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *ownerUsecase) DeleteOwnerByID(ctx context.Context, ownerID string) error {
	owner, err := uc.OwnerRepository.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return exceptions.ErrRecordNotFound(nil)
	}
	return uc.OwnerRepository.DeleteOwnerByID(ctx, ownerID)
}
