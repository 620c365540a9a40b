package routers

import (
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *sessions.SessionController) {
	router.With(middlewares.Authorize).Post("/{patientId}/sessions", sessionController.CreateSession)
	router.With(middlewares.Authorize).Get("/{patientId}/sessions", sessionController.FindSessionsByPatient)
	router.With(middlewares.Authorize).Get("/{patientId}/sessions/{sessionId}", sessionController.FindSessionByID)
	router.With(middlewares.Authorize).Put("/{patientId}/sessions/{sessionId}", sessionController.UpdateSession)
	router.With(middlewares.Authorize).Delete("/{patientId}/sessions/{sessionId}", sessionController.DeleteSession)
}
