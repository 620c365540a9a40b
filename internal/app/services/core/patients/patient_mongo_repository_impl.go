package patients

import (
	"context"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/app/models"
	"practicare-service/internal/pkg/constvars"
	"practicare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ResourcePatients),
	}
}

func (repo *PatientMongoRepository) InsertPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	_, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient, nil
}

func (repo *PatientMongoRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindPatientsByTherapistID(ctx context.Context, therapistID string, page, pageSize int) ([]models.Patient, int, error) {
	filter := bson.M{"therapist_id": therapistID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return patient, nil
}

func (repo *PatientMongoRepository) DeletePatientByID(ctx context.Context, patientID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": patientID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
