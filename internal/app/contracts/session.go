package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/dto/requests"
	"time"
)

type SessionStore interface {
	Initialize(ctx context.Context) error
	// Ready is closed once Initialize has settled either way.
	Ready() <-chan struct{}
	Status() models.SessionStatus
	// Current returns a copy of the authenticated identity, or nil.
	Current() *models.Session
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	UpdatePatientProfile(ctx context.Context, patientID int64, patch *requests.PatientPatch) (*models.Patient, error)
	RefreshPatient(ctx context.Context) (*models.Patient, error)
	TokenExpiry() (time.Time, bool)
}
