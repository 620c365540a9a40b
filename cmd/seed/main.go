package main

import (
	"context"
	"log"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/drivers/database"
	"practicare-service/internal/app/models"
	"practicare-service/internal/app/services/shared/identity"
	"practicare-service/internal/app/services/shared/redis"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds a small deterministic hierarchy for local development: two
// owners, a therapist under each, and a patient assigned to the first
// owner's therapist. A known jti lands in the revoked-token set so the
// deny path can be exercised without an identity provider. Re-running
// replaces the same records.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)
	redisRepository := redis.NewRedisRepository(database.NewRedisClient(driverConfig))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()

	owners := []models.Owner{
		{ID: "o1-id", Name: "Owner One", Email: "owner.one@practicare.local", ClinicName: "Practicare North", CreatedAt: now, UpdatedAt: now},
		{ID: "o2-id", Name: "Owner Two", Email: "owner.two@practicare.local", ClinicName: "Practicare South", CreatedAt: now, UpdatedAt: now},
	}
	therapists := []models.Therapist{
		{ID: "o1t1-id", OwnerID: "o1-id", Name: "Therapist One", Email: "therapist.one@practicare.local", Specialty: "CBT", CreatedAt: now, UpdatedAt: now},
		{ID: "o2t1-id", OwnerID: "o2-id", Name: "Therapist Two", Email: "therapist.two@practicare.local", Specialty: "EMDR", CreatedAt: now, UpdatedAt: now},
	}
	patients := []models.Patient{
		{ID: "p1", TherapistID: "o1t1-id", Name: "Patient One", BirthDate: "1990-04-12", CreatedAt: now, UpdatedAt: now},
	}

	for _, owner := range owners {
		upsert(ctx, db.Collection("owners"), owner.ID, owner)
	}
	for _, therapist := range therapists {
		upsert(ctx, db.Collection("therapists"), therapist.ID, therapist)
	}
	for _, patient := range patients {
		upsert(ctx, db.Collection("patients"), patient.ID, patient)
	}

	if err := redisRepository.AddToSet(ctx, identity.RevokedTokenSetKey, "seed-revoked-jti"); err != nil {
		log.Fatalf("Error seeding revoked token set: %v", err)
	}

	log.Printf("Seeded %d owners, %d therapists, %d patients", len(owners), len(therapists), len(patients))
}

func upsert(ctx context.Context, collection *mongo.Collection, id string, document interface{}) {
	_, err := collection.ReplaceOne(ctx, bson.M{"_id": id}, document, options.Replace().SetUpsert(true))
	if err != nil {
		log.Fatalf("Error seeding %s/%s: %v", collection.Name(), id, err)
	}
}
