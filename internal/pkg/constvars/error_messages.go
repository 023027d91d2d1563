package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":    ErrClientRequiredFields,
	"eqfield":     ErrClientPasswordsDoNotMatch,
	"email_shape": ErrClientInvalidEmail,
	"br_date":     ErrClientInvalidBirthDate,
}

// Order in which a failing registration form is reported.
var ValidationTagPriority = []string{"required", "eqfield", "email_shape", "br_date"}

// Error messages for clients
const (
	ErrClientRequiredFields                = "please fill in all required fields"
	ErrClientLoginFieldsRequired           = "please fill in all fields"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientInvalidEmail                  = "please enter a valid email"
	ErrClientInvalidBirthDate              = "birth date must use the DD/MM/YYYY format"
	ErrClientInvalidEmailOrPassword        = "email or password incorrect, please try again"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientRegistrationFailed            = "registration failed, check your data and try again"
	ErrClientLoadAppointments              = "could not load your appointments"
	ErrClientSelectDate                    = "please select a date before confirming"
	ErrClientPatientNotFound               = "patient information not found"
	ErrClientCreateAppointment             = "could not book the appointment"
	ErrClientCancelAppointment             = "could not cancel the appointment"
	ErrClientAppointmentNotCancellable     = "this appointment can no longer be cancelled"
	ErrClientLoadAlerts                    = "could not load your alerts"
	ErrClientMarkAlertRead                 = "could not mark the alert as read"
	ErrClientMarkAllAlertsRead             = "could not mark all alerts as read"
	ErrClientLoadProfile                   = "could not load your profile"
	ErrClientPatientDataUnavailable        = "patient data not available"
	ErrClientUpdateActivity                = "could not update the activity"
	ErrClientUpdateProfile                 = "could not update your profile"
	ErrClientLogout                        = "could not log out"
	ErrClientOpenScreen                    = "could not open the screen"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevSessionMissing           = "no authenticated session"
	ErrDevPatientProfileMissing    = "user with role paciente has no patient profile"
	ErrDevStorageRead              = "failed to read %s from session storage"
	ErrDevStorageWrite             = "failed to write %s into session storage"
	ErrDevStorageRemove            = "failed to remove %s from session storage"
	ErrDevCreateResource           = "failed to create %s on the backend"
	ErrDevGetResource              = "failed to get %s from the backend"
	ErrDevUpdateResource           = "failed to update %s on the backend"
	ErrDevDeleteResource           = "failed to delete %s on the backend"
	ErrDevDecodeResourceResponse   = "failed to decode %s response from the backend"
	ErrDevUnknownRoute             = "unknown route %s"
	ErrDevAppointmentNotFound      = "appointment %d is not on the current list"
	ErrDevAppointmentNotCancelable = "appointment status %s cannot be cancelled"
	ErrDevUnknownActivitySlot      = "unknown activity slot %s"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)

const (
	ResponseUnknown = "unknown"
)
