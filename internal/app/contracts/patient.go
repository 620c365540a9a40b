package contracts

import (
	"context"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/dto/requests"
	"practicare-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatientRequest) (*responses.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindPatientsByTherapistID(ctx context.Context, therapistID string, queryParams *requests.QueryParams) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, request *requests.UpdatePatientRequest) (*responses.Patient, error)
	DeletePatientByID(ctx context.Context, patientID string) error
	ReassignPatient(ctx context.Context, request *requests.ReassignPatientRequest) (*responses.ReassignPatient, error)
}

type PatientRepository interface {
	InsertPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPatientsByTherapistID(ctx context.Context, therapistID string, page, pageSize int) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	DeletePatientByID(ctx context.Context, patientID string) error
}
