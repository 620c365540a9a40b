package routers

import (
	"practicare-service/internal/app/delivery/http/middlewares"
	"practicare-service/internal/app/services/core/evaluations"

	"github.com/go-chi/chi/v5"
)

func attachEvaluationRoutes(router chi.Router, middlewares *middlewares.Middlewares, evaluationController *evaluations.EvaluationController) {
	router.With(middlewares.Authorize).Post("/{patientId}/evaluations", evaluationController.CreateEvaluation)
	router.With(middlewares.Authorize).Get("/{patientId}/evaluations", evaluationController.FindEvaluationsByPatient)
	router.With(middlewares.Authorize).Get("/{patientId}/evaluations/{evaluationId}", evaluationController.FindEvaluationByID)
	router.With(middlewares.Authorize).Put("/{patientId}/evaluations/{evaluationId}", evaluationController.UpdateEvaluation)
	router.With(middlewares.Authorize).Delete("/{patientId}/evaluations/{evaluationId}", evaluationController.DeleteEvaluation)
	router.With(middlewares.Authorize).Post("/{patientId}/evaluations/{evaluationId}/report", evaluationController.UploadReport)
	router.With(middlewares.Authorize).Get("/{patientId}/evaluations/{evaluationId}/report", evaluationController.GetReportURL)
}
