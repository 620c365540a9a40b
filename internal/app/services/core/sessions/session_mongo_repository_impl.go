package sessions

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

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionMongoRepository(db *mongo.Client, dbName string) contracts.SessionRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.ResourceSessions),
	}
}

func (repo *SessionMongoRepository) InsertSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	_, err := repo.Collection.InsertOne(ctx, session)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return session, nil
}

func (repo *SessionMongoRepository) FindSessionByID(ctx context.Context, sessionID string) (*models.Session, error) {
	var session models.Session
	err := repo.Collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (repo *SessionMongoRepository) FindSessionsByPatientID(ctx context.Context, patientID string, page, pageSize int) ([]models.Session, int, error) {
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

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessions, int(total), nil
}

func (repo *SessionMongoRepository) UpdateSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return session, nil
}

func (repo *SessionMongoRepository) DeleteSessionByID(ctx context.Context, sessionID string) error {
	_, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": sessionID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
