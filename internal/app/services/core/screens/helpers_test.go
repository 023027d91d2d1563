package screens

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/core/session"
	"odontocare-client/internal/app/services/odontocare_api/activities"
	"odontocare-client/internal/app/services/odontocare_api/alerts"
	"odontocare-client/internal/app/services/odontocare_api/appointments"
	"odontocare-client/internal/app/services/odontocare_api/auth"
	"odontocare-client/internal/app/services/odontocare_api/patients"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/app/services/shared/sessionstorage"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/fakebackend"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPatientID int64 = 42

type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) Navigate(route string) {
	m.Called(route)
}

type MockAuthAPIClient struct {
	mock.Mock
}

func (m *MockAuthAPIClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	login, _ := args.Get(0).(*responses.Login)
	return login, args.Error(1)
}

func (m *MockAuthAPIClient) Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockAppointmentAPIClient struct {
	mock.Mock
	contracts.AppointmentAPIClient
}

func (m *MockAppointmentAPIClient) FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	found, _ := args.Get(0).([]models.Appointment)
	return found, args.Error(1)
}

type MockAlertAPIClient struct {
	mock.Mock
	contracts.AlertAPIClient
}

func (m *MockAlertAPIClient) FindAlertsByPatientID(ctx context.Context, patientID int64) ([]models.Alert, error) {
	args := m.Called(ctx, patientID)
	found, _ := args.Get(0).([]models.Alert)
	return found, args.Error(1)
}

func (m *MockAlertAPIClient) MarkAlertAsRead(ctx context.Context, alertID int64) (*models.Alert, error) {
	args := m.Called(ctx, alertID)
	alert, _ := args.Get(0).(*models.Alert)
	return alert, args.Error(1)
}

func (m *MockAlertAPIClient) MarkAllAlertsAsRead(ctx context.Context, patientID int64) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (n *recordingNotifier) Notify(notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

func (n *recordingNotifier) All() []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

func (n *recordingNotifier) Last() models.Notification {
	all := n.All()
	if len(all) == 0 {
		return models.Notification{}
	}
	return all[len(all)-1]
}

// harness wires real clients and a real session store to a fake backend
// seeded with one patient, id 42.
type harness struct {
	backend   *fakebackend.Backend
	storage   contracts.SessionStorage
	client    *httpclient.Client
	session   contracts.SessionStore
	navigator *MockNavigator
	notifier  *recordingNotifier
	user      models.User
	patient   models.Patient
	now       time.Time
}

func newHarness(t *testing.T) *harness {
	backend := fakebackend.New(nil)
	baseURL := backend.Start()
	t.Cleanup(backend.Close)

	logger := zap.NewNop()
	storage := sessionstorage.NewMemoryStorage()
	tokenKey := sessionstorage.Key(constvars.DefaultSessionNamespace, constvars.SessionStorageTokenKey)
	client := httpclient.NewClient(baseURL, storage, tokenKey, logger)

	user := backend.AddUser("Ana Lima", "ana@example.com", "secret", constvars.UserRolePatient)
	patient := backend.AddPatient(models.Patient{ID: testPatientID, UserID: user.ID, Name: "Ana Lima", Points: 10})

	navigator := new(MockNavigator)
	navigator.On("Navigate", mock.Anything).Return()

	return &harness{
		backend: backend,
		storage: storage,
		client:  client,
		session: session.NewSessionService(
			storage,
			auth.NewAuthAPIClient(client, logger),
			patients.NewPatientAPIClient(client, logger),
			constvars.DefaultSessionNamespace,
			logger,
		),
		navigator: navigator,
		notifier:  &recordingNotifier{},
		user:      user,
		patient:   patient,
		now:       time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local),
	}
}

func (h *harness) deps() Dependencies {
	return Dependencies{
		Session:   h.session,
		Navigator: h.navigator,
		Notifier:  h.notifier,
		Log:       zap.NewNop(),
		Now:       func() time.Time { return h.now },
	}
}

func (h *harness) login(t *testing.T) {
	_, err := h.session.Login(context.Background(), h.user.Email, "secret")
	require.NoError(t, err)
	h.backend.ResetRequests()
}

// loggedOut settles the session store with nothing stored.
func (h *harness) loggedOut(t *testing.T) {
	require.NoError(t, h.session.Initialize(context.Background()))
}

func (h *harness) patientAPIClient() contracts.PatientAPIClient {
	return patients.NewPatientAPIClient(h.client, zap.NewNop())
}

func (h *harness) authAPIClient() contracts.AuthAPIClient {
	return auth.NewAuthAPIClient(h.client, zap.NewNop())
}

func (h *harness) appointmentAPIClient() contracts.AppointmentAPIClient {
	return appointments.NewAppointmentAPIClient(h.client, zap.NewNop())
}

func (h *harness) alertAPIClient() contracts.AlertAPIClient {
	return alerts.NewAlertAPIClient(h.client, zap.NewNop())
}

func (h *harness) activityAPIClient() contracts.ActivityAPIClient {
	return activities.NewActivityAPIClient(h.client, zap.NewNop())
}

// requestsUnder counts recorded requests whose path starts with prefix.
func (h *harness) requestsUnder(prefix string) int {
	count := 0
	for _, request := range h.backend.Requests() {
		if strings.HasPrefix(request.Path, prefix) {
			count++
		}
	}
	return count
}

func localTime(year int, month time.Month, day, hour, minute int) models.DateTime {
	return models.NewDateTime(time.Date(year, month, day, hour, minute, 0, 0, time.Local))
}
