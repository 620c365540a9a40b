package routers

import (
	"fmt"
	"net/http"
	"practicare-service/internal/app/config"
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/evaluations"
	"practicare-service/internal/app/services/core/owners"
	"practicare-service/internal/app/services/core/patients"
	"practicare-service/internal/app/services/core/sessions"
	"practicare-service/internal/app/services/core/therapists"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ownerController *owners.OwnerController,
	therapistController *therapists.TherapistController,
	patientController *patients.PatientController,
	sessionController *sessions.SessionController,
	evaluationController *evaluations.EvaluationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/owners", func(r chi.Router) {
				attachOwnerRoutes(r, middlewares, ownerController)
				attachTherapistRoutes(r, middlewares, therapistController)
				attachReassignRoutes(r, middlewares, patientController)
			})

			r.Route("/therapists", func(r chi.Router) {
				attachTherapistPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
				attachSessionRoutes(r, middlewares, sessionController)
				attachEvaluationRoutes(r, middlewares, evaluationController)
			})
		})
	})
}
