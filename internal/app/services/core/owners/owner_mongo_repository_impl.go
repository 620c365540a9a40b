package owners

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

type OwnerMongoRepository struct {
	Collection *mongo.Collection
}

func NewOwnerMongoRepository(db *mongo.Client, dbName string) contracts.OwnerRepository {
	return &OwnerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ResourceOwners),
	}
}

func (repo *OwnerMongoRepository) InsertOwner(ctx context.Context, owner *models.Owner) (*models.Owner, error) {
	_, err := repo.Collection.InsertOne(ctx, owner)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return owner, nil
}

func (repo *OwnerMongoRepository) FindOwnerByID(ctx context.Context, ownerID string) (*models.Owner, error) {
	var owner models.Owner
	err := repo.Collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&owner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &owner, nil
}

func (repo *OwnerMongoRepository) FindAllOwners(ctx context.Context, page, pageSize int) ([]models.Owner, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var owners []models.Owner
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return owners, int(total), nil
}

func (repo *OwnerMongoRepository) UpdateOwner(ctx context.Context, owner *models.Owner) (*models.Owner, error) {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": owner.ID}, owner)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return owner, nil
}

func (repo *OwnerMongoRepository) DeleteOwnerByID(ctx context.Context, ownerID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": ownerID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
