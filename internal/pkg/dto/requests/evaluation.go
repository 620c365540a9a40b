package requests

type CreateEvaluationRequest struct {
	PatientID string `json:"-"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Summary   string `json:"summary" validate:"omitempty,max=5000"`
	Score     int    `json:"score" validate:"omitempty,gte=0,lte=100"`
}

type UpdateEvaluationRequest struct {
	PatientID    string `json:"-"`
	EvaluationID string `json:"-"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Summary      string `json:"summary" validate:"omitempty,max=5000"`
	Score        int    `json:"score" validate:"omitempty,gte=0,lte=100"`
}
