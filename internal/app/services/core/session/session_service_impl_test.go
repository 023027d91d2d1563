package session

import (
	"context"
	"errors"
	"net/http"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/odontocare_api/auth"
	"odontocare-client/internal/app/services/odontocare_api/patients"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/app/services/shared/sessionstorage"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/fakebackend"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	tokenKey = "@OdontoCare:token"
	userKey  = "@OdontoCare:usuario"
)

type fixture struct {
	backend *fakebackend.Backend
	baseURL string
	storage contracts.SessionStorage
	patient models.Patient
	user    models.User
}

func newFixture(t *testing.T, storage contracts.SessionStorage) *fixture {
	backend := fakebackend.New(nil)
	baseURL := backend.Start()
	t.Cleanup(backend.Close)

	user := backend.AddUser("Ana Lima", "ana@example.com", "secret", constvars.UserRolePatient)
	patient := backend.AddPatient(models.Patient{UserID: user.ID, Name: "Ana Lima", Points: 10})

	if storage == nil {
		storage = sessionstorage.NewMemoryStorage()
	}
	return &fixture{backend: backend, baseURL: baseURL, storage: storage, patient: patient, user: user}
}

func (f *fixture) newSession(t *testing.T) contracts.SessionStore {
	logger := zap.NewNop()
	client := httpclient.NewClient(f.baseURL, f.storage, tokenKey, logger)
	return NewSessionService(
		f.storage,
		auth.NewAuthAPIClient(client, logger),
		patients.NewPatientAPIClient(client, logger),
		constvars.DefaultSessionNamespace,
		logger,
	)
}

// tokenWriteFailingStorage refuses to store the token key once
// failTokenWrites is set.
type tokenWriteFailingStorage struct {
	contracts.SessionStorage
	failTokenWrites bool
}

func (s *tokenWriteFailingStorage) SetItem(ctx context.Context, key, value string) error {
	if s.failTokenWrites && key == tokenKey {
		return errors.New("disk full")
	}
	return s.SessionStorage.SetItem(ctx, key, value)
}

func patientLookups(backend *fakebackend.Backend) int {
	count := 0
	for _, request := range backend.Requests() {
		if strings.HasPrefix(request.Path, "/api/pacientes/usuario/") {
			count++
		}
	}
	return count
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Login Persists And Caches Profile", func(t *testing.T) {
		f := newFixture(t, nil)
		store := f.newSession(t)

		session, err := store.Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)
		require.NotNil(t, session.Patient)
		assert.Equal(t, f.patient.ID, session.Patient.ID)
		assert.Equal(t, models.SessionStatusAuthenticated, store.Status())

		token, found, err := f.storage.GetItem(ctx, tokenKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, session.Token, token)

		userJSON, found, err := f.storage.GetItem(ctx, userKey)
		require.NoError(t, err)
		require.True(t, found)
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(userJSON), &record))
		assert.Equal(t, "paciente", record["tipo"])
		assert.Equal(t, "Ana Lima", record["nome"])
		assert.Equal(t, token, record["token"])

		lookups := f.backend.RequestsTo(http.MethodGet, "/api/pacientes/usuario/"+strconv.FormatInt(f.user.ID, 10))
		require.Len(t, lookups, 1)
		assert.Equal(t, "Bearer "+token, lookups[0].Authorization)
	})

	t.Run("Other Roles Never Fetch A Patient", func(t *testing.T) {
		f := newFixture(t, nil)
		f.backend.AddUser("Dr. Paulo", "paulo@example.com", "secret", "dentista")
		store := f.newSession(t)

		session, err := store.Login(ctx, "paulo@example.com", "secret")
		require.NoError(t, err)
		assert.Nil(t, session.Patient)
		assert.Zero(t, patientLookups(f.backend))

		patient, err := store.RefreshPatient(ctx)
		assert.NoError(t, err)
		assert.Nil(t, patient)
		assert.Zero(t, patientLookups(f.backend))
	})

	t.Run("Bad Credentials Persist Nothing", func(t *testing.T) {
		f := newFixture(t, nil)
		store := f.newSession(t)

		_, err := store.Login(ctx, "ana@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, exceptions.ClientMessage(err, ""))

		_, found, _ := f.storage.GetItem(ctx, tokenKey)
		assert.False(t, found)
		_, found, _ = f.storage.GetItem(ctx, userKey)
		assert.False(t, found)
		assert.Nil(t, store.Current())
		assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
		select {
		case <-store.Ready():
		default:
			t.Fatal("ready must close after a failed login")
		}

		require.NoError(t, store.Initialize(ctx))
		assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
	})

	t.Run("Failed Login Keeps Restored Identity", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.newSession(t).Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)

		store := f.newSession(t)
		require.NoError(t, store.Initialize(ctx))

		_, err = store.Login(ctx, "ana@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, models.SessionStatusAuthenticated, store.Status())
		require.NotNil(t, store.Current())
		assert.Equal(t, f.user.ID, store.Current().User.ID)
	})

	t.Run("Token Write Failure Restores Previous Record", func(t *testing.T) {
		storage := &tokenWriteFailingStorage{SessionStorage: sessionstorage.NewMemoryStorage()}
		f := newFixture(t, storage)
		f.backend.AddUser("Dr. Paulo", "paulo@example.com", "secret", "dentista")

		first, err := f.newSession(t).Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)
		previousRecord, _, err := f.storage.GetItem(ctx, userKey)
		require.NoError(t, err)

		storage.failTokenWrites = true
		store := f.newSession(t)
		_, err = store.Login(ctx, "paulo@example.com", "secret")
		require.Error(t, err)

		record, found, err := f.storage.GetItem(ctx, userKey)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, previousRecord, record)
		token, found, err := f.storage.GetItem(ctx, tokenKey)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, first.Token, token)
	})

	t.Run("Token Write Failure Leaves No Record", func(t *testing.T) {
		storage := &tokenWriteFailingStorage{SessionStorage: sessionstorage.NewMemoryStorage(), failTokenWrites: true}
		f := newFixture(t, storage)
		store := f.newSession(t)

		_, err := store.Login(ctx, "ana@example.com", "secret")
		require.Error(t, err)

		_, found, _ := f.storage.GetItem(ctx, userKey)
		assert.False(t, found)
		assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
	})

	t.Run("Missing Patient Profile Fails Login", func(t *testing.T) {
		f := newFixture(t, nil)
		f.backend.AddUser("Rui", "rui@example.com", "secret", constvars.UserRolePatient)
		store := f.newSession(t)

		_, err := store.Login(ctx, "rui@example.com", "secret")
		require.Error(t, err)

		_, found, _ := f.storage.GetItem(ctx, tokenKey)
		assert.False(t, found, "no token may be persisted when the profile fetch fails")
		assert.Nil(t, store.Current())
	})
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	store := f.newSession(t)

	_, err := store.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, store.Logout(ctx))
	assert.Nil(t, store.Current())
	assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
	_, found, _ := f.storage.GetItem(ctx, tokenKey)
	assert.False(t, found)
	_, found, _ = f.storage.GetItem(ctx, userKey)
	assert.False(t, found)

	require.NoError(t, store.Logout(ctx), "second logout is a no-op")
	assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
}

func TestSessionService_Initialize(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Until Settled", func(t *testing.T) {
		f := newFixture(t, nil)
		store := f.newSession(t)

		assert.Equal(t, models.SessionStatusUnknown, store.Status())
		select {
		case <-store.Ready():
			t.Fatal("ready before Initialize")
		default:
		}

		require.NoError(t, store.Initialize(ctx))
		<-store.Ready()
		assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
	})

	t.Run("Restores Across Processes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.json")
		f := newFixture(t, sessionstorage.NewFileStorage(path, zap.NewNop()))

		_, err := f.newSession(t).Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)

		f.storage = sessionstorage.NewFileStorage(path, zap.NewNop())
		restored := f.newSession(t)
		require.NoError(t, restored.Initialize(ctx))

		current := restored.Current()
		require.NotNil(t, current)
		assert.Equal(t, f.user.ID, current.User.ID)
		require.NotNil(t, current.Patient)
		assert.Equal(t, f.patient.ID, current.Patient.ID)
	})

	t.Run("Profile Fetch Failure Keeps Identity", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.newSession(t).Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)

		f.backend.FailNext(http.MethodGet, "/api/pacientes/usuario/"+strconv.FormatInt(f.user.ID, 10), http.StatusInternalServerError)
		restored := f.newSession(t)
		err = restored.Initialize(ctx)
		require.Error(t, err)

		assert.Equal(t, models.SessionStatusAuthenticated, restored.Status())
		current := restored.Current()
		require.NotNil(t, current)
		assert.Nil(t, current.Patient)

		patient, err := restored.RefreshPatient(ctx)
		require.NoError(t, err)
		assert.Equal(t, f.patient.ID, patient.ID)
		assert.NotNil(t, restored.Current().Patient)
	})

	t.Run("Corrupt Identity Record", func(t *testing.T) {
		f := newFixture(t, nil)
		require.NoError(t, f.storage.SetItem(ctx, tokenKey, "abc"))
		require.NoError(t, f.storage.SetItem(ctx, userKey, "{broken"))

		store := f.newSession(t)
		assert.Error(t, store.Initialize(ctx))
		assert.Equal(t, models.SessionStatusUnauthenticated, store.Status())
	})
}

func TestSessionService_UpdatePatientProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	store := f.newSession(t)

	_, err := store.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	address := "Rua das Flores, 10"
	updated, err := store.UpdatePatientProfile(ctx, f.patient.ID, &requests.PatientPatch{Address: &address})
	require.NoError(t, err)
	require.NotNil(t, updated.Address)
	assert.Equal(t, address, *updated.Address)

	cached := store.Current().Patient
	require.NotNil(t, cached.Address)
	assert.Equal(t, address, *cached.Address)
	assert.Equal(t, 10, cached.Points, "server representation replaces the cache")

	f.backend.FailNext(http.MethodPatch, "/api/pacientes/"+strconv.FormatInt(f.patient.ID, 10), http.StatusInternalServerError)
	other := "Outra rua"
	_, err = store.UpdatePatientProfile(ctx, f.patient.ID, &requests.PatientPatch{Address: &other})
	require.Error(t, err)
	assert.Equal(t, address, *store.Current().Patient.Address, "failed update keeps the cache")
}

func TestSessionService_TokenExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	store := f.newSession(t)

	_, ok := store.TokenExpiry()
	assert.False(t, ok)

	_, err := store.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)

	expiry, ok := store.TokenExpiry()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, time.Minute)
}
