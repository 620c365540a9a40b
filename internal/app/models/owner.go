package models

import (
	"practicare-service/internal/pkg/dto/responses"
	"time"
)

type Owner struct {
	ID         string    `bson:"_id,omitempty"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	ClinicName string    `bson:"clinic_name"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (o Owner) ConvertIntoResponse() responses.Owner {
	return responses.Owner{
		ID:         o.ID,
		Name:       o.Name,
		Email:      o.Email,
		ClinicName: o.ClinicName,
	}
}
