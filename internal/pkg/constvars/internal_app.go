package constvars

type ContextKey string

const (
	ResourceOwners      = "owners"
	ResourceTherapists  = "therapists"
	ResourcePatients    = "patients"
	ResourceSessions    = "sessions"
	ResourceEvaluations = "evaluations"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_PRINCIPAL_KEY            ContextKey = "principal"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRCTCR_SVC_"
)

const (
	BearerTokenPrefix = "Bearer "
)
