package responses

import "time"

type Evaluation struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	Date         time.Time `json:"date"`
	Summary      string    `json:"summary,omitempty"`
	Score        int       `json:"score,omitempty"`
	ReportObject string    `json:"report_object,omitempty"`
}

type EvaluationReportURL struct {
	EvaluationID string `json:"evaluation_id"`
	URL          string `json:"url"`
	ExpiresIn    int    `json:"expires_in_seconds"`
}
