package constant

import "time"

const (
	Asterix = "*"
	Empty   = ""
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Actors recorded in created_by/modified_by when no admin is signed in.
const (
	ContextGuest  = "guest"
	ContextSystem = "system"
)

type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	ClockFormat    = "15:04"
)

// Query and path parameters.
const (
	RequestParamPage      = "page"
	RequestParamLimit     = "limit"
	RequestParamSortBy    = "sort_by"
	RequestParamSortDir   = "sort_dir"
	RequestParamID        = "id"
	RequestParamProductID = "productId"
	RequestParamImageID   = "imageId"
	RequestParamToken     = "token"
	RequestParamStartDate = "startDate"
	RequestParamEndDate   = "endDate"
	RequestParamCity      = "city"
	RequestParamAddress   = "address"

	RequestMaxMemory = 10 << 20
	FormFile         = "file"
	FormAlt          = "alt"
)

const (
	DefaultValuePage   = 1
	DefaultValueLimit  = 10
	MaxValueLimit      = 100
	DefaultValueSortBy = "created_at"
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeExclusion       = "23P01"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRetryAfter         = "Retry-After"

	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "INTERNAL SERVER ERROR"
)

// Tracer names. Span names are "<scope>.<Operation>".
const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelJobScopeName        = "job"
	OtelS3ScopeName         = "s3"
	OtelKafkaScopeName      = "kafka"
	OtelMailScopeName       = "mail"
	OtelGeocoderScopeName   = "geocoder"

	OtelQueryAttributeKey = "query"
)
