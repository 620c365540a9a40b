package routers

import (
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/owners"

	"github.com/go-chi/chi/v5"
)

func attachOwnerRoutes(router chi.Router, middlewares *middlewares.Middlewares, ownerController *owners.OwnerController) {
	router.With(middlewares.Authorize).Post("/", ownerController.CreateOwner)
	router.With(middlewares.Authorize).Get("/", ownerController.FindAllOwners)
	router.With(middlewares.Authorize).Get("/{ownerId}", ownerController.FindOwnerByID)
	router.With(middlewares.Authorize).Put("/{ownerId}", ownerController.UpdateOwner)
	router.With(middlewares.Authorize).Delete("/{ownerId}", ownerController.DeleteOwner)
}
