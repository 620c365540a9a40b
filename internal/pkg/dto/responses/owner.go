package responses

type Owner struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ClinicName string `json:"clinic_name"`
}
