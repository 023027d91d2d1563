package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingEndpointKey         = "endpoint"
	LoggingMethodKey           = "method"
	LoggingStatusCodeKey       = "status_code"
	LoggingUserIDKey           = "user_id"
	LoggingUserRoleKey         = "user_role"
	LoggingPatientIDKey        = "patient_id"
	LoggingAppointmentIDKey    = "appointment_id"
	LoggingAppointmentCountKey = "appointment_count"
	LoggingAlertIDKey          = "alert_id"
	LoggingAlertCountKey       = "alert_count"
	LoggingActivityIDKey       = "activity_id"
	LoggingActivityCountKey    = "activity_count"
	LoggingStatusKey           = "status"
	LoggingDateKey             = "date"
	LoggingPointsKey           = "points"
	LoggingStorageKey          = "storage_key"
	LoggingStorageDriverKey    = "storage_driver"
	LoggingRouteKey            = "route"
	LoggingScreenKey           = "screen"
	LoggingSlotKey             = "slot"
)
