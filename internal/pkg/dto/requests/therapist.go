package requests

type CreateTherapistRequest struct {
	OwnerID   string `json:"-"`
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
}

type UpdateTherapistRequest struct {
	OwnerID     string `json:"-"`
	TherapistID string `json:"-"`
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
}
