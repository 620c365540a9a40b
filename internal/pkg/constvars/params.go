package constvars

const (
	URLParamOwnerID      = "ownerId"
	URLParamTherapistID  = "therapistId"
	URLParamPatientID    = "patientId"
	URLParamSessionID    = "sessionId"
	URLParamEvaluationID = "evaluationId"
	// Second segment of a from/to therapist pair on reassignment routes.
	URLParamToTherapistID = "toTherapistId"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamSearch   = "search"
)
