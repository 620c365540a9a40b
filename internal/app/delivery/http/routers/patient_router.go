package routers

import (
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authorize).Post("/", patientController.CreatePatient)
	router.With(middlewares.Authorize).Get("/{patientId}", patientController.FindPatientByID)
	router.With(middlewares.Authorize).Put("/{patientId}", patientController.UpdatePatient)
	router.With(middlewares.Authorize).Delete("/{patientId}", patientController.DeletePatient)
}

func attachTherapistPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authorize).Get("/{therapistId}/patients", patientController.FindPatientsByTherapist)
}

// The reassignment URL carries the from/to therapist pair as two
// consecutive path segments between /therapists/ and /patients/.
func attachReassignRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.With(middlewares.Authorize).Put("/{ownerId}/therapists/{therapistId}/{toTherapistId}/patients/{patientId}", patientController.ReassignPatient)
}
