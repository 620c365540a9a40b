package patients

import (
	"context"
	"errors"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) InsertPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindPatientsByTherapistID(ctx context.Context, therapistID string, page, pageSize int) ([]models.Patient, int, error) {
	args := m.Called(ctx, therapistID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Patient), args.Int(1), args.Error(2)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeletePatientByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockTherapistRepository struct {
	mock.Mock
}

func (m *MockTherapistRepository) InsertTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	args := m.Called(ctx, therapist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepository) FindTherapistByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	args := m.Called(ctx, therapistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepository) FindTherapistsByOwnerID(ctx context.Context, ownerID string, page, pageSize int) ([]models.Therapist, int, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Therapist), args.Int(1), args.Error(2)
}

func (m *MockTherapistRepository) UpdateTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	args := m.Called(ctx, therapist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Therapist), args.Error(1)
}

func (m *MockTherapistRepository) DeleteTherapistByID(ctx context.Context, therapistID string) error {
	args := m.Called(ctx, therapistID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishRecordEvent(ctx context.Context, event *contracts.RecordEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestPatientUsecase_ReassignPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the patient and publishes an event", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		therapistRepository := new(MockTherapistRepository)
		eventPublisher := new(MockEventPublisher)

		patientRepository.On("FindPatientByID", mock.Anything, "p1").
			Return(&models.Patient{ID: "p1", TherapistID: "o1t1-id"}, nil)
		therapistRepository.On("FindTherapistByID", mock.Anything, "o1t2-id").
			Return(&models.Therapist{ID: "o1t2-id", OwnerID: "o1-id"}, nil)
		patientRepository.On("UpdatePatient", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
			return p.ID == "p1" && p.TherapistID == "o1t2-id"
		})).Return(&models.Patient{ID: "p1", TherapistID: "o1t2-id"}, nil)
		eventPublisher.On("PublishRecordEvent", mock.Anything, mock.MatchedBy(func(e *contracts.RecordEvent) bool {
			return e.Type == "patient.reassigned" && e.ResourceID == "p1"
		})).Return(nil)

		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, therapistRepository, eventPublisher)
		response, err := usecase.ReassignPatient(ctx, &requests.ReassignPatientRequest{
			OwnerID:         "o1-id",
			PatientID:       "p1",
			FromTherapistID: "o1t1-id",
			ToTherapistID:   "o1t2-id",
		})

		assert.NoError(t, err)
		assert.Equal(t, "p1", response.PatientID)
		assert.Equal(t, "o1t1-id", response.FromTherapistID)
		assert.Equal(t, "o1t2-id", response.ToTherapistID)
		eventPublisher.AssertExpectations(t)
	})

	t.Run("rejects when the patient is not with the from therapist", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		patientRepository.On("FindPatientByID", mock.Anything, "p1").
			Return(&models.Patient{ID: "p1", TherapistID: "o1t2-id"}, nil)

		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, new(MockTherapistRepository), new(MockEventPublisher))
		response, err := usecase.ReassignPatient(ctx, &requests.ReassignPatientRequest{
			OwnerID:         "o1-id",
			PatientID:       "p1",
			FromTherapistID: "o1t1-id",
			ToTherapistID:   "o1t2-id",
		})

		assert.Error(t, err)
		assert.Nil(t, response)
	})

	t.Run("publish failure does not fail the reassignment", func(t *testing.T) {
		patientRepository := new(MockPatientRepository)
		therapistRepository := new(MockTherapistRepository)
		eventPublisher := new(MockEventPublisher)

		patientRepository.On("FindPatientByID", mock.Anything, "p1").
			Return(&models.Patient{ID: "p1", TherapistID: "o1t1-id"}, nil)
		therapistRepository.On("FindTherapistByID", mock.Anything, "o1t2-id").
			Return(&models.Therapist{ID: "o1t2-id", OwnerID: "o1-id"}, nil)
		patientRepository.On("UpdatePatient", mock.Anything, mock.Anything).
			Return(&models.Patient{ID: "p1", TherapistID: "o1t2-id"}, nil)
		eventPublisher.On("PublishRecordEvent", mock.Anything, mock.Anything).
			Return(errors.New("broker unreachable"))

		usecase := NewPatientUsecase(zap.NewNop(), patientRepository, therapistRepository, eventPublisher)
		response, err := usecase.ReassignPatient(ctx, &requests.ReassignPatientRequest{
			OwnerID:         "o1-id",
			PatientID:       "p1",
			FromTherapistID: "o1t1-id",
			ToTherapistID:   "o1t2-id",
		})

		assert.NoError(t, err)
		assert.NotNil(t, response)
	})
}
