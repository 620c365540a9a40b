package store

import (
	"context"
	"fmt"
	"practicare-service/internal/app/contracts"
	"practicare-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// parentKeyFields maps a parent collection name to the foreign-key
// field its children carry.
var parentKeyFields = map[string]string{
	"owners":     "owner_id",
	"therapists": "therapist_id",
	"patients":   "patient_id",
}

type mongoStoreClient struct {
	database *mongo.Database
}

// NewMongoStoreClient exposes the record database through the
// hierarchical get/listChildren surface the ownership resolver
// consumes. Paths are slash-separated, alternating collection and id:
// "patients", "owners/<id>/therapists".
func NewMongoStoreClient(database *mongo.Database) contracts.DocumentStoreClient {
	return &mongoStoreClient{database: database}
}

func (s *mongoStoreClient) Get(ctx context.Context, collectionPath, id string) (contracts.StoreDocument, error) {
	collectionName, filter, err := resolvePath(collectionPath)
	if err != nil {
		return nil, err
	}
	filter = append(filter, bson.E{Key: "_id", Value: id})

	var doc bson.M
	err = s.database.Collection(collectionName).FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return contracts.StoreDocument(doc), nil
}

func (s *mongoStoreClient) ListChildren(ctx context.Context, collectionPath string) ([]string, error) {
	collectionName, filter, err := resolvePath(collectionPath)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.database.Collection(collectionName).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return ids, nil
}

// resolvePath turns a hierarchical path into the leaf collection name
// plus the ancestor filter its documents must satisfy.
func resolvePath(collectionPath string) (string, bson.D, error) {
	segments := strings.Split(strings.Trim(collectionPath, "/"), "/")
	if len(segments) == 0 || len(segments)%2 == 0 {
		return "", nil, fmt.Errorf("malformed collection path %q", collectionPath)
	}

	filter := bson.D{}
	for i := 0; i+1 < len(segments); i += 2 {
		parentCollection := segments[i]
		parentID := segments[i+1]
		keyField, ok := parentKeyFields[parentCollection]
		if !ok {
			return "", nil, fmt.Errorf("unknown parent collection %q in path %q", parentCollection, collectionPath)
		}
		filter = append(filter, bson.E{Key: keyField, Value: parentID})
	}
	return segments[len(segments)-1], filter, nil
}
