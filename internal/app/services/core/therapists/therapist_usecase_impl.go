package therapists

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

type therapistUsecase struct {
	TherapistRepository contracts.TherapistRepository
	OwnerRepository     contracts.OwnerRepository
}

func NewTherapistUsecase(therapistRepository contracts.TherapistRepository, ownerRepository contracts.OwnerRepository) contracts.TherapistUsecase {
	return &therapistUsecase{
		TherapistRepository: therapistRepository,
		OwnerRepository:     ownerRepository,
	}
}

func (uc *therapistUsecase) CreateTherapist(ctx context.Context, request *requests.CreateTherapistRequest) (*responses.Therapist, error) {
	owner, err := uc.OwnerRepository.FindOwnerByID(ctx, request.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	now := time.Now().UTC()
	therapist := &models.Therapist{
		ID:        utils.GenerateRecordID(),
		OwnerID:   request.OwnerID,
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.TherapistRepository.InsertTherapist(ctx, therapist)
	if err != nil {
		return nil, err
	}

	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *therapistUsecase) FindTherapistByID(ctx context.Context, ownerID, therapistID string) (*responses.Therapist, error) {
	therapist, err := uc.findOwnedTherapist(ctx, ownerID, therapistID)
	if err != nil {
		return nil, err
	}

	response := therapist.ConvertIntoResponse()
	return &response, nil
}

func (uc *therapistUsecase) FindTherapistsByOwnerID(ctx context.Context, ownerID string, queryParams *requests.QueryParams) ([]responses.Therapist, int, error) {
	therapists, total, err := uc.TherapistRepository.FindTherapistsByOwnerID(ctx, ownerID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Therapist, 0, len(therapists))
	for _, therapist := range therapists {
		response = append(response, therapist.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *therapistUsecase) UpdateTherapist(ctx context.Context, request *requests.UpdateTherapistRequest) (*responses.Therapist, error) {
	therapist, err := uc.findOwnedTherapist(ctx, request.OwnerID, request.TherapistID)
	if err != nil {
		return nil, err
	}

	if request.Name != "" {
		therapist.Name = request.Name
	}
	if request.Email != "" {
		therapist.Email = request.Email
	}
	if request.Specialty != "" {
		therapist.Specialty = request.Specialty
	}
	therapist.UpdatedAt = time.Now().UTC()

	updated, err := uc.TherapistRepository.UpdateTherapist(ctx, therapist)
	if err != nil {
		return nil, err
	}

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *therapistUsecase) DeleteTherapistByID(ctx context.Context, ownerID, therapistID string) error {
	_, err := uc.findOwnedTherapist(ctx, ownerID, therapistID)
	if err != nil {
		return err
	}
	return uc.TherapistRepository.DeleteTherapistByID(ctx, therapistID)
}

// findOwnedTherapist treats a therapist filed under a different owner as
// absent rather than leaking its existence across tenants.
func (uc *therapistUsecase) findOwnedTherapist(ctx context.Context, ownerID, therapistID string) (*models.Therapist, error) {
	therapist, err := uc.TherapistRepository.FindTherapistByID(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil || therapist.OwnerID != ownerID {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return therapist, nil
}
