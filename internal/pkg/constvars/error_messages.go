package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid datetime",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientNotAuthorized                 = "You are not authorized to access this resource."
	ErrClientReassignNotPermittedFormat    = "%s does not have permission to reassign between %s and %s"
	ErrClientMalformedToken                = "your token is malformed, please login again"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientRecordNotFound                = "the record you requested does not exist"
	ErrClientFileTooLargeFormat            = "the uploaded file exceeds the %d MB limit"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request body validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevURLParamIDValidation     = "missing or malformed %s url parameter"
	ErrDevServerDeadlineExceeded   = "the server deadline exceeded while processing request"
	ErrDevMultipartParse           = "cannot parse multipart form data"
	ErrDevFileTooLarge             = "uploaded file exceeds the configured size limit"
	ErrDevAuthTokenMissing         = "authorization header carries no bearer token"
	ErrDevAuthTokenRevoked         = "token has been revoked by the identity provider"
	ErrDevAuthTokenInvalid         = "token failed the revocation lookup"
	ErrDevAuthClaimsMissing        = "verified token carries no subject or role claim"
	ErrDevAuthPolicyDenied         = "principal failed the content ownership policy"
	ErrDevDBFailedToFindDocument   = "mongo failed to find document"
	ErrDevDBFailedToInsertDocument = "mongo failed to insert document"
	ErrDevDBFailedToUpdateDocument = "mongo failed to update document"
	ErrDevDBFailedToDeleteDocument = "mongo failed to delete document"
	ErrDevDBFailedToIterateCursor  = "mongo failed to iterate cursor"
	ErrDevRedisGetData             = "redis failed to get data"
	ErrDevRedisSetData             = "redis failed to set data"
	ErrDevRedisDeleteData          = "redis failed to delete data"
	ErrDevRedisMembershipLookup    = "redis failed to test set membership"
	ErrDevMinioPutObject           = "minio failed to store object in bucket %s"
	ErrDevMinioGetObject           = "minio failed to fetch object from bucket %s"
	ErrDevRabbitMQPublish          = "rabbitmq failed to publish message to queue %s"
)
