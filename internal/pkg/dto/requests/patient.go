package requests

type CreatePatientRequest struct {
	TherapistID string `json:"therapist_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	BirthDate   string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Diagnosis   string `json:"diagnosis" validate:"omitempty,max=500"`
}

type UpdatePatientRequest struct {
	PatientID string `json:"-"`
	Name      string `json:"name" validate:"omitempty,min=2,max=100"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Diagnosis string `json:"diagnosis" validate:"omitempty,max=500"`
}

type ReassignPatientRequest struct {
	OwnerID         string `json:"-"`
	PatientID       string `json:"-"`
	FromTherapistID string `json:"-"`
	ToTherapistID   string `json:"-"`
}
