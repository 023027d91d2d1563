package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_BEARER_TOKEN_KEY ContextKey = "bearer_token"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	SessionStorageDriverFile   = "file"
	SessionStorageDriverRedis  = "redis"
	SessionStorageDriverMemory = "memory"
)

// Keys are joined to the configured namespace, e.g. "@OdontoCare:token".
const (
	DefaultSessionNamespace = "@OdontoCare"
	SessionStorageTokenKey  = "token"
	SessionStorageUserKey   = "usuario"
)

// Wire layouts. Dates sent to the backend carry no zone and are read in time.Local.
const (
	LayoutISODate          = "2006-01-02"
	LayoutLocalDateTime    = "2006-01-02T15:04:05"
	LayoutLocalDateTimeMs  = "2006-01-02T15:04:05.000"
	LayoutBrazilianDate    = "02/01/2006"
	LayoutDisplayDateTime  = "02/01/2006 às 15:04"
	NewAppointmentHour     = 12
	DefaultAppointmentType = "Consulta de rotina"
)
