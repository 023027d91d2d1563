package session

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/app/services/shared/sessionstorage"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// sessionService is the only writer of the persisted token and identity.
// Screens read it through Current and never touch storage themselves.
type sessionService struct {
	Storage          contracts.SessionStorage
	AuthAPIClient    contracts.AuthAPIClient
	PatientAPIClient contracts.PatientAPIClient
	TokenKey         string
	UserKey          string
	Log              *zap.Logger

	mu        sync.RWMutex
	status    models.SessionStatus
	session   *models.Session
	ready     chan struct{}
	readyOnce sync.Once
}

func NewSessionService(
	storage contracts.SessionStorage,
	authAPIClient contracts.AuthAPIClient,
	patientAPIClient contracts.PatientAPIClient,
	namespace string,
	logger *zap.Logger,
) contracts.SessionStore {
	return &sessionService{
		Storage:          storage,
		AuthAPIClient:    authAPIClient,
		PatientAPIClient: patientAPIClient,
		TokenKey:         sessionstorage.Key(namespace, constvars.SessionStorageTokenKey),
		UserKey:          sessionstorage.Key(namespace, constvars.SessionStorageUserKey),
		Log:              logger,
		status:           models.SessionStatusUnknown,
		ready:            make(chan struct{}),
	}
}

func (s *sessionService) Ready() <-chan struct{} {
	return s.ready
}

func (s *sessionService) Status() models.SessionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *sessionService) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// Initialize restores the persisted identity. A patient whose profile cannot
// be fetched stays logged in without a cached profile, and the fetch error is
// returned.
func (s *sessionService) Initialize(ctx context.Context) error {
	defer s.markReady()

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Initialize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	stored, err := s.loadStoredIdentity(ctx)
	if err != nil {
		s.Log.Error("sessionService.Initialize error restoring identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.setSession(nil)
		return err
	}
	if stored == nil {
		s.Log.Info("sessionService.Initialize found no stored identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		s.setSession(nil)
		return nil
	}

	session := &models.Session{Token: stored.Token, User: stored.User}
	s.setSession(session)

	if !session.User.IsPatient() {
		s.Log.Info("sessionService.Initialize succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
			zap.String(constvars.LoggingUserRoleKey, session.User.Role),
		)
		return nil
	}

	patient, err := s.PatientAPIClient.FindPatientByUserID(httpclient.WithBearerToken(ctx, session.Token), session.User.ID)
	if err != nil {
		s.Log.Error("sessionService.Initialize error fetching patient profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
			zap.Error(err),
		)
		return err
	}
	s.setPatient(session.User.ID, patient)

	s.Log.Info("sessionService.Initialize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return nil
}

// Login authenticates, fetches the patient profile for patient accounts, and
// only then persists and publishes the identity.
func (s *sessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := s.AuthAPIClient.Login(ctx, &requests.Login{Email: email, Password: password})
	if err != nil {
		s.Log.Error("sessionService.Login error authenticating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.settleFailedLogin()
		return nil, err
	}

	session := &models.Session{Token: response.Token, User: response.User}
	if session.User.IsPatient() {
		patient, err := s.PatientAPIClient.FindPatientByUserID(httpclient.WithBearerToken(ctx, session.Token), session.User.ID)
		if err != nil {
			s.Log.Error("sessionService.Login error fetching patient profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
				zap.Error(err),
			)
			s.settleFailedLogin()
			return nil, err
		}
		session.Patient = patient
	}

	err = s.persist(ctx, response)
	if err != nil {
		s.Log.Error("sessionService.Login error persisting identity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		s.settleFailedLogin()
		return nil, err
	}
	s.setSession(session)
	s.markReady()

	s.Log.Info("sessionService.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, session.User.ID),
		zap.String(constvars.LoggingUserRoleKey, session.User.Role),
	)
	return copySession(session), nil
}

// Logout clears memory even when storage fails, and reports the first
// storage error.
func (s *sessionService) Logout(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var firstErr error
	for _, key := range []string{s.TokenKey, s.UserKey} {
		err := s.Storage.RemoveItem(ctx, key)
		if err != nil {
			s.Log.Error("sessionService.Logout error removing item",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStorageKey, key),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	s.setSession(nil)
	s.markReady()

	if firstErr != nil {
		return firstErr
	}
	s.Log.Info("sessionService.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// UpdatePatientProfile sends patch and caches whatever the backend returns.
func (s *sessionService) UpdatePatientProfile(ctx context.Context, patientID int64, patch *requests.PatientPatch) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.UpdatePatientProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := s.PatientAPIClient.PatchPatient(ctx, patientID, patch)
	if err != nil {
		s.Log.Error("sessionService.UpdatePatientProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	s.mu.Lock()
	if s.session != nil && s.session.User.IsPatient() {
		s.session.Patient = copyPatient(patient)
	}
	s.mu.Unlock()

	s.Log.Info("sessionService.UpdatePatientProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return copyPatient(patient), nil
}

// RefreshPatient looks the profile up again by user id. Non-patient accounts
// get (nil, nil).
func (s *sessionService) RefreshPatient(ctx context.Context) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	current := s.Current()
	if current == nil {
		return nil, exceptions.ErrSessionMissing
	}
	if !current.User.IsPatient() {
		return nil, nil
	}

	s.Log.Info("sessionService.RefreshPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, current.User.ID),
	)

	patient, err := s.PatientAPIClient.FindPatientByUserID(ctx, current.User.ID)
	if err != nil {
		s.Log.Error("sessionService.RefreshPatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	s.setPatient(current.User.ID, patient)

	return copyPatient(patient), nil
}

func (s *sessionService) TokenExpiry() (time.Time, bool) {
	current := s.Current()
	if current == nil {
		return time.Time{}, false
	}
	return utils.TokenExpiry(current.Token)
}

func (s *sessionService) loadStoredIdentity(ctx context.Context) (*responses.Login, error) {
	token, found, err := s.Storage.GetItem(ctx, s.TokenKey)
	if err != nil || !found || token == "" {
		return nil, err
	}

	userJSON, found, err := s.Storage.GetItem(ctx, s.UserKey)
	if err != nil || !found || userJSON == "" {
		return nil, err
	}

	stored := new(responses.Login)
	err = json.Unmarshal([]byte(userJSON), stored)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	// The token key wins over any token inside the record.
	stored.Token = token
	return stored, nil
}

// persist writes the identity record and then the token. If the token write
// fails the previous record is put back, or removed when there was none, so
// a half-written session never restores.
func (s *sessionService) persist(ctx context.Context, response *responses.Login) error {
	userJSON, err := json.Marshal(response)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	previous, hadPrevious, err := s.Storage.GetItem(ctx, s.UserKey)
	if err != nil {
		return err
	}

	err = s.Storage.SetItem(ctx, s.UserKey, string(userJSON))
	if err != nil {
		return err
	}

	err = s.Storage.SetItem(ctx, s.TokenKey, response.Token)
	if err != nil {
		var rollbackErr error
		if hadPrevious {
			rollbackErr = s.Storage.SetItem(ctx, s.UserKey, previous)
		} else {
			rollbackErr = s.Storage.RemoveItem(ctx, s.UserKey)
		}
		if rollbackErr != nil {
			s.Log.Warn("sessionService.persist could not roll back identity record",
				zap.Error(rollbackErr),
			)
		}
		return err
	}
	return nil
}

// settleFailedLogin lets waiting screens proceed after a failed login. An
// identity restored earlier stays as it was.
func (s *sessionService) settleFailedLogin() {
	s.mu.Lock()
	if s.session == nil {
		s.status = models.SessionStatusUnauthenticated
	}
	s.mu.Unlock()
	s.markReady()
}

func (s *sessionService) setSession(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = copySession(session)
	if session == nil {
		s.status = models.SessionStatusUnauthenticated
		return
	}
	s.status = models.SessionStatusAuthenticated
}

// setPatient caches patient unless the user changed in the meantime.
func (s *sessionService) setPatient(userID int64, patient *models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil || s.session.User.ID != userID {
		return
	}
	s.session.Patient = copyPatient(patient)
}

func (s *sessionService) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

func copySession(session *models.Session) *models.Session {
	if session == nil {
		return nil
	}
	copied := *session
	copied.Patient = copyPatient(session.Patient)
	return &copied
}

func copyPatient(patient *models.Patient) *models.Patient {
	if patient == nil {
		return nil
	}
	copied := *patient
	return &copied
}
