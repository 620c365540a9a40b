package responses

type Patient struct {
	ID          string `json:"id"`
	TherapistID string `json:"therapist_id"`
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date,omitempty"`
	Diagnosis   string `json:"diagnosis,omitempty"`
}

type ReassignPatient struct {
	PatientID       string `json:"patient_id"`
	FromTherapistID string `json:"from_therapist_id"`
	ToTherapistID   string `json:"to_therapist_id"`
}
