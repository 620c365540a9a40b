package patients

import (
	"context"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
	"practicare-service/internal/pkg/exceptions"
	"practicare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const (
	eventPatientCreated    = "patient.created"
	eventPatientUpdated    = "patient.updated"
	eventPatientDeleted    = "patient.deleted"
	eventPatientReassigned = "patient.reassigned"
)

type patientUsecase struct {
	Log                 *zap.Logger
	PatientRepository   contracts.PatientRepository
	TherapistRepository contracts.TherapistRepository
	EventPublisher      contracts.EventPublisher
}

func NewPatientUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	therapistRepository contracts.TherapistRepository,
	eventPublisher contracts.EventPublisher,
) contracts.PatientUsecase {
	return &patientUsecase{
		Log:                 logger,
		PatientRepository:   patientRepository,
		TherapistRepository: therapistRepository,
		EventPublisher:      eventPublisher,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error) {
	therapist, err := uc.TherapistRepository.FindTherapistByID(ctx, request.TherapistID)
	if err != nil {
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	now := time.Now().UTC()
	patient := &models.Patient{
		ID:          utils.GenerateRecordID(),
		TherapistID: request.TherapistID,
		Name:        request.Name,
		BirthDate:   request.BirthDate,
		Diagnosis:   request.Diagnosis,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := uc.PatientRepository.InsertPatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, eventPatientCreated, saved.ID, "", "")

	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) FindPatientsByTherapistID(ctx context.Context, therapistID string, queryParams *requests.QueryParams) ([]responses.Patient, int, error) {
	patients, total, err := uc.PatientRepository.FindPatientsByTherapistID(ctx, therapistID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		response = append(response, patient.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, request *requests.UpdatePatientRequest) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		patient.Name = request.Name
	}
	if request.BirthDate != "" {
		patient.BirthDate = request.BirthDate
	}
	if request.Diagnosis != "" {
		patient.Diagnosis = request.Diagnosis
	}
	patient.UpdatedAt = time.Now().UTC()

	updated, err := uc.PatientRepository.UpdatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, eventPatientUpdated, updated.ID, "", "")

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) DeletePatientByID(ctx context.Context, patientID string) error {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	if err := uc.PatientRepository.DeletePatientByID(ctx, patientID); err != nil {
		return err
	}

	uc.publishEvent(ctx, eventPatientDeleted, patientID, "", "")
	return nil
}

func (uc *patientUsecase) ReassignPatient(ctx context.Context, request *requests.ReassignPatientRequest) (*responses.ReassignPatient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.TherapistID != request.FromTherapistID {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	toTherapist, err := uc.TherapistRepository.FindTherapistByID(ctx, request.ToTherapistID)
	if err != nil {
		return nil, err
	}
	if toTherapist == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	patient.TherapistID = request.ToTherapistID
	patient.UpdatedAt = time.Now().UTC()

	if _, err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, eventPatientReassigned, patient.ID, request.OwnerID,
		request.FromTherapistID+" -> "+request.ToTherapistID)

	return &responses.ReassignPatient{
		PatientID:       patient.ID,
		FromTherapistID: request.FromTherapistID,
		ToTherapistID:   request.ToTherapistID,
	}, nil
}

// publishEvent is best-effort: a queue outage never fails the request.
func (uc *patientUsecase) publishEvent(ctx context.Context, eventType, resourceID, actorID, detail string) {
	event := &contracts.RecordEvent{
		Type:       eventType,
		ResourceID: resourceID,
		ActorID:    actorID,
		Detail:     detail,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.EventPublisher.PublishRecordEvent(ctx, event); err != nil {
		uc.Log.Warn("failed to publish record event", zap.String("event_type", eventType), zap.Error(err))
	}
}
