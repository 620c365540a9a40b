package routers

import (
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/therapists"

	"github.com/go-chi/chi/v5"
)

func attachTherapistRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapistController *therapists.TherapistController) {
	router.With(middlewares.Authorize).Post("/{ownerId}/therapists", therapistController.CreateTherapist)
	router.With(middlewares.Authorize).Get("/{ownerId}/therapists", therapistController.FindTherapistsByOwner)
	router.With(middlewares.Authorize).Get("/{ownerId}/therapists/{therapistId}", therapistController.FindTherapistByID)
	router.With(middlewares.Authorize).Put("/{ownerId}/therapists/{therapistId}", therapistController.UpdateTherapist)
	router.With(middlewares.Authorize).Delete("/{ownerId}/therapists/{therapistId}", therapistController.DeleteTherapist)
}
