package requests

type CreateOwnerRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	ClinicName string `json:"clinic_name" validate:"required,min=2,max=100"`
}

type UpdateOwnerRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	ClinicName string `json:"clinic_name" validate:"omitempty,min=2,max=100"`
}
