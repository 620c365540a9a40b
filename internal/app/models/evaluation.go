package models

import (
	"practicare-service/internal/pkg/dto/responses"
	"time"
)

type Evaluation struct {
	ID           string    `bson:"_id,omitempty"`
	PatientID    string    `bson:"patient_id"`
	Date         time.Time `bson:"date"`
	Summary      string    `bson:"summary,omitempty"`
	Score        int       `bson:"score,omitempty"`
	ReportObject string    `bson:"report_object,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (e Evaluation) ConvertIntoResponse() responses.Evaluation {
	return responses.Evaluation{
		ID:           e.ID,
		PatientID:    e.PatientID,
		Date:         e.Date,
		Summary:      e.Summary,
		Score:        e.Score,
		ReportObject: e.ReportObject,
	}
}
