package models

import (
	"practicare-service/internal/pkg/dto/responses"
	"time"
)

// Therapist records live nested under their owner: membership in the
// owner's therapist sub-collection is the owner-owns-therapist edge.
type Therapist struct {
	ID        string    `bson:"_id,omitempty"`
	OwnerID   string    `bson:"owner_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Specialty string    `bson:"specialty,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (t Therapist) ConvertIntoResponse() responses.Therapist {
	return responses.Therapist{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Name:      t.Name,
		Email:     t.Email,
		Specialty: t.Specialty,
	}
}
