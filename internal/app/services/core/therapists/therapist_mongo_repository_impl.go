package therapists

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

type TherapistMongoRepository struct {
	Collection *mongo.Collection
}

func NewTherapistMongoRepository(db *mongo.Client, dbName string) contracts.TherapistRepository {
	return &TherapistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ResourceTherapists),
	}
}

func (repo *TherapistMongoRepository) InsertTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	_, err := repo.Collection.InsertOne(ctx, therapist)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return therapist, nil
}

func (repo *TherapistMongoRepository) FindTherapistByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	var therapist models.Therapist
	err := repo.Collection.FindOne(ctx, bson.M{"_id": therapistID}).Decode(&therapist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &therapist, nil
}

func (repo *TherapistMongoRepository) FindTherapistsByOwnerID(ctx context.Context, ownerID string, page, pageSize int) ([]models.Therapist, int, error) {
	filter := bson.M{"owner_id": ownerID}

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

	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return therapists, int(total), nil
}

func (repo *TherapistMongoRepository) UpdateTherapist(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error) {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": therapist.ID}, therapist)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return therapist, nil
}

func (repo *TherapistMongoRepository) DeleteTherapistByID(ctx context.Context, therapistID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": therapistID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
