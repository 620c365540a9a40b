package responses

type Therapist struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Specialty string `json:"specialty,omitempty"`
}
