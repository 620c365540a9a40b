package models

import (
	"practicare-service/internal/pkg/dto/responses"
	"time"
)

type Session struct {
	ID        string    `bson:"_id,omitempty"`
	PatientID string    `bson:"patient_id"`
	Date      time.Time `bson:"date"`
	Notes     string    `bson:"notes,omitempty"`
	Duration  int       `bson:"duration_minutes,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (s Session) ConvertIntoResponse() responses.Session {
	return responses.Session{
		ID:        s.ID,
		PatientID: s.PatientID,
		Date:      s.Date,
		Notes:     s.Notes,
		Duration:  s.Duration,
	}
}
