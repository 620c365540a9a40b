package evaluations

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

type EvaluationMongoRepository struct {
	Collection *mongo.Collection
}

func NewEvaluationMongoRepository(db *mongo.Client, dbName string) contracts.EvaluationRepository {
	return &EvaluationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ResourceEvaluations),
	}
}

func (repo *EvaluationMongoRepository) InsertEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	_, err := repo.Collection.InsertOne(ctx, evaluation)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return evaluation, nil
}

func (repo *EvaluationMongoRepository) FindEvaluationByID(ctx context.Context, evaluationID string) (*models.Evaluation, error) {
	var evaluation models.Evaluation
	err := repo.Collection.FindOne(ctx, bson.M{"_id": evaluationID}).Decode(&evaluation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &evaluation, nil
}

func (repo *EvaluationMongoRepository) FindEvaluationsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Evaluation, int, error) {
	filter := bson.M{"patient_id": patientID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var evaluations []models.Evaluation
	if err := cursor.All(ctx, &evaluations); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return evaluations, int(total), nil
}

func (repo *EvaluationMongoRepository) UpdateEvaluation(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": evaluation.ID}, evaluation)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return evaluation, nil
}

func (repo *EvaluationMongoRepository) DeleteEvaluationByID(ctx context.Context, evaluationID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": evaluationID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
