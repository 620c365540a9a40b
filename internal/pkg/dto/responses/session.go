package responses

import "time"

type Session struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	Duration  int       `json:"duration_minutes,omitempty"`
}
