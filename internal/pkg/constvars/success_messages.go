package constvars

const (
	CreateOwnerSuccessMessage      = "successfully created owner"
	GetOwnerSuccessMessage         = "successfully fetched owner"
	ListOwnersSuccessMessage       = "successfully fetched owners"
	UpdateOwnerSuccessMessage      = "successfully updated owner"
	DeleteOwnerSuccessMessage      = "successfully deleted owner"
	CreateTherapistSuccessMessage  = "successfully created therapist"
	GetTherapistSuccessMessage     = "successfully fetched therapist"
	ListTherapistsSuccessMessage   = "successfully fetched therapists"
	UpdateTherapistSuccessMessage  = "successfully updated therapist"
	DeleteTherapistSuccessMessage  = "successfully deleted therapist"
	CreatePatientSuccessMessage    = "successfully created patient"
	GetPatientSuccessMessage       = "successfully fetched patient"
	ListPatientsSuccessMessage     = "successfully fetched patients"
	UpdatePatientSuccessMessage    = "successfully updated patient"
	DeletePatientSuccessMessage    = "successfully deleted patient"
	ReassignPatientSuccessMessage  = "successfully reassigned patient"
	CreateSessionSuccessMessage    = "successfully created session"
	GetSessionSuccessMessage       = "successfully fetched session"
	ListSessionsSuccessMessage     = "successfully fetched sessions"
	UpdateSessionSuccessMessage    = "successfully updated session"
	DeleteSessionSuccessMessage    = "successfully deleted session"
	CreateEvaluationSuccessMessage = "successfully created evaluation"
	GetEvaluationSuccessMessage    = "successfully fetched evaluation"
	ListEvaluationsSuccessMessage  = "successfully fetched evaluations"
	UpdateEvaluationSuccessMessage = "successfully updated evaluation"
	DeleteEvaluationSuccessMessage = "successfully deleted evaluation"
	UploadReportSuccessMessage     = "successfully uploaded evaluation report"
	GetReportURLSuccessMessage     = "successfully generated evaluation report link"
)
