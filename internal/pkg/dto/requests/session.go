package requests

type CreateSessionRequest struct {
	PatientID string `json:"-"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes     string `json:"notes" validate:"omitempty,max=5000"`
	Duration  int    `json:"duration_minutes" validate:"omitempty,gt=0,lte=480"`
}

type UpdateSessionRequest struct {
	PatientID string `json:"-"`
	SessionID string `json:"-"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Notes     string `json:"notes" validate:"omitempty,max=5000"`
	Duration  int    `json:"duration_minutes" validate:"omitempty,gt=0,lte=480"`
}
