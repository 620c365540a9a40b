package models

import (
	"practicare-service/internal/pkg/dto/responses"
	"time"
)

// TherapistID is the direct therapist-owns-patient edge the ownership
// resolver reads.
type Patient struct {
	ID          string    `bson:"_id,omitempty"`
	TherapistID string    `bson:"therapist_id"`
	Name        string    `bson:"name"`
	BirthDate   string    `bson:"birth_date,omitempty"`
	Diagnosis   string    `bson:"diagnosis,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:          p.ID,
		TherapistID: p.TherapistID,
		Name:        p.Name,
		BirthDate:   p.BirthDate,
		Diagnosis:   p.Diagnosis,
	}
}
