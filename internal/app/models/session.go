package models

// Session is the identity restored from storage: the bearer token plus the
// user it belongs to, and the patient profile when the user is a patient.
type Session struct {
	Token   string
	User    User
	Patient *Patient
}

func (s *Session) PatientID() (int64, bool) {
	if s == nil || s.Patient == nil {
		return 0, false
	}
	return s.Patient.ID, true
}

type SessionStatus string

const (
	SessionStatusUnknown         SessionStatus = "unknown"
	SessionStatusAuthenticated   SessionStatus = "authenticated"
	SessionStatusUnauthenticated SessionStatus = "unauthenticated"
)
