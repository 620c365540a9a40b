package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUserIDKey     = "user_id"
	LoggingRoleKey       = "role"
	LoggingStageKey      = "stage"
	LoggingReasonKey     = "reason"
	LoggingOwnerIDKey    = "owner_id"
	LoggingTherapistKey  = "therapist_id"
	LoggingPatientKey    = "patient_id"
)
