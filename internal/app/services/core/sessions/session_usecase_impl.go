package sessions

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

type sessionUsecase struct {
	SessionRepository contracts.SessionRepository
	PatientRepository contracts.PatientRepository
}

func NewSessionUsecase(sessionRepository contracts.SessionRepository, patientRepository contracts.PatientRepository) contracts.SessionUsecase {
	return &sessionUsecase{
		SessionRepository: sessionRepository,
		PatientRepository: patientRepository,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*responses.Session, error) {
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
	session := &models.Session{
		ID:        utils.GenerateRecordID(),
		PatientID: request.PatientID,
		Date:      date.UTC(),
		Notes:     request.Notes,
		Duration:  request.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := uc.SessionRepository.InsertSession(ctx, session)
	if err != nil {
		return nil, err
	}

	response := saved.ConvertIntoResponse()
	return &response, nil
}

func (uc *sessionUsecase) FindSessionByID(ctx context.Context, patientID, sessionID string) (*responses.Session, error) {
	session, err := uc.findPatientSession(ctx, patientID, sessionID)
	if err != nil {
		return nil, err
	}

	response := session.ConvertIntoResponse()
	return &response, nil
}

func (uc *sessionUsecase) FindSessionsByPatientID(ctx context.Context, patientID string, queryParams *requests.QueryParams) ([]responses.Session, int, error) {
	sessions, total, err := uc.SessionRepository.FindSessionsByPatientID(ctx, patientID, queryParams.Page, queryParams.PageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Session, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, session.ConvertIntoResponse())
	}
	return response, total, nil
}

func (uc *sessionUsecase) UpdateSession(ctx context.Context, request *requests.UpdateSessionRequest) (*responses.Session, error) {
	session, err := uc.findPatientSession(ctx, request.PatientID, request.SessionID)
	if err != nil {
		return nil, err
	}

	if request.Date != "" {
		date, err := time.Parse(time.RFC3339, request.Date)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		session.Date = date.UTC()
	}
	if request.Notes != "" {
		session.Notes = request.Notes
	}
	if request.Duration > 0 {
		session.Duration = request.Duration
	}
	session.UpdatedAt = time.Now().UTC()

	updated, err := uc.SessionRepository.UpdateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	response := updated.ConvertIntoResponse()
	return &response, nil
}

func (uc *sessionUsecase) DeleteSessionByID(ctx context.Context, patientID, sessionID string) error {
	_, err := uc.findPatientSession(ctx, patientID, sessionID)
	if err != nil {
		return err
	}
	return uc.SessionRepository.DeleteSessionByID(ctx, sessionID)
}

func (uc *sessionUsecase) findPatientSession(ctx context.Context, patientID, sessionID string) (*models.Session, error) {
	session, err := uc.SessionRepository.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.PatientID != patientID {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return session, nil
}
