// Package fakebackend is an in-memory stand-in for the OdontoCare REST API,
// served over httptest. Tests seed it, drive the client against it, and then
// inspect both its state and the requests it received.
package fakebackend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/utils"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const tokenSecret = "fakebackend-secret"

// RecordedRequest is one request as the backend saw it.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

type userRecord struct {
	models.User
	passwordHash string
}

type Backend struct {
	mu sync.Mutex

	users        map[int64]*userRecord
	patients     map[int64]*models.Patient
	appointments map[int64]*models.Appointment
	alerts       map[int64]*models.Alert
	activities   map[int64]*models.Activity
	nextID       int64

	requests []RecordedRequest
	failures map[string]int
	delays   map[string]chan struct{}

	Router *chi.Mux
	Log    *logrus.Logger
	server *httptest.Server
}

// New returns a backend with an empty data set. Pass a nil logger to discard
// request logs.
func New(logger *logrus.Logger) *Backend {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	b := &Backend{
		users:        make(map[int64]*userRecord),
		patients:     make(map[int64]*models.Patient),
		appointments: make(map[int64]*models.Appointment),
		alerts:       make(map[int64]*models.Alert),
		activities:   make(map[int64]*models.Activity),
		nextID:       1000,
		failures:     make(map[string]int),
		delays:       make(map[string]chan struct{}),
		Log:          logger,
	}
	b.Router = b.routes()
	return b
}

// Start serves the backend and returns its base URL, ending in /api.
func (b *Backend) Start() string {
	b.server = httptest.NewServer(b.Router)
	return b.server.URL + "/api"
}

func (b *Backend) Close() {
	if b.server != nil {
		b.server.Close()
	}
}

// Requests returns every request received so far, oldest first.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// RequestsTo filters Requests by method and exact path, e.g. ("GET", "/api/pacientes/7").
func (b *Backend) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, request := range b.Requests() {
		if request.Method == method && request.Path == path {
			out = append(out, request)
		}
	}
	return out
}

func (b *Backend) ResetRequests() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

// FailNext makes the next request to method+path answer with statusCode.
func (b *Backend) FailNext(method, path string, statusCode int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = statusCode
}

// Hold blocks the next request to method+path until the returned function is
// called.
func (b *Backend) Hold(method, path string) (release func()) {
	gate := make(chan struct{})
	b.mu.Lock()
	b.delays[method+" "+path] = gate
	b.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// Token issues a bearer token for userID the same way login does.
func (b *Backend) Token(userID int64) string {
	b.mu.Lock()
	user := b.users[userID]
	b.mu.Unlock()

	email := ""
	if user != nil {
		email = user.Email
	}
	token, _ := utils.GenerateAccessJWT(userID, email, tokenSecret, time.Hour)
	return token
}

func (b *Backend) AddUser(name, email, password, role string) models.User {
	hash, _ := utils.HashPassword(password)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	record := &userRecord{
		User:         models.User{ID: b.nextID, Name: name, Email: email, Role: role},
		passwordHash: hash,
	}
	b.users[record.ID] = record
	return record.User
}

// AddPatient stores patient, assigning an id when it has none.
func (b *Backend) AddPatient(patient models.Patient) models.Patient {
	b.mu.Lock()
	defer b.mu.Unlock()
	if patient.ID == 0 {
		b.nextID++
		patient.ID = b.nextID
	}
	b.patients[patient.ID] = &patient
	return patient
}

func (b *Backend) AddAppointment(appointment models.Appointment) models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()
	if appointment.ID == 0 {
		b.nextID++
		appointment.ID = b.nextID
	}
	b.appointments[appointment.ID] = &appointment
	return appointment
}

func (b *Backend) AddAlert(alert models.Alert) models.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	if alert.ID == 0 {
		b.nextID++
		alert.ID = b.nextID
	}
	b.alerts[alert.ID] = &alert
	return alert
}

func (b *Backend) AddActivity(activity models.Activity) models.Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	if activity.ID == 0 {
		b.nextID++
		activity.ID = b.nextID
	}
	b.activities[activity.ID] = &activity
	return activity
}

func (b *Backend) UserByEmail(email string) (models.User, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, user := range b.users {
		if strings.EqualFold(user.Email, email) {
			return user.User, true
		}
	}
	return models.User{}, false
}

func (b *Backend) Patient(patientID int64) (models.Patient, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	patient, ok := b.patients[patientID]
	if !ok {
		return models.Patient{}, false
	}
	return *patient, true
}

func (b *Backend) Appointment(appointmentID int64) (models.Appointment, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	appointment, ok := b.appointments[appointmentID]
	if !ok {
		return models.Appointment{}, false
	}
	return *appointment, true
}

// Appointments returns the patient's appointments in id order.
func (b *Backend) Appointments(patientID int64) []models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appointmentsOf(patientID)
}

func (b *Backend) Alerts(patientID int64) []models.Alert {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.alertsOf(patientID)
}

func (b *Backend) Activities(patientID int64) []models.Activity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.activitiesOf(patientID, "")
}

func (b *Backend) appointmentsOf(patientID int64) []models.Appointment {
	out := []models.Appointment{}
	for _, id := range sortedKeys(b.appointments) {
		if appointment := b.appointments[id]; patientID == 0 || appointment.PatientID == patientID {
			out = append(out, *appointment)
		}
	}
	return out
}

func (b *Backend) alertsOf(patientID int64) []models.Alert {
	out := []models.Alert{}
	for _, id := range sortedKeys(b.alerts) {
		if alert := b.alerts[id]; patientID == 0 || alert.PatientID == patientID {
			out = append(out, *alert)
		}
	}
	return out
}

// activitiesOf filters by patient and, when day is set, by local calendar day.
func (b *Backend) activitiesOf(patientID int64, day string) []models.Activity {
	out := []models.Activity{}
	for _, id := range sortedKeys(b.activities) {
		activity := b.activities[id]
		if activity.PatientID != patientID {
			continue
		}
		if day != "" && activity.Date.DateKey() != day {
			continue
		}
		out = append(out, *activity)
	}
	return out
}

func sortedKeys[T any](items map[int64]T) []int64 {
	keys := make([]int64, 0, len(items))
	for id := range items {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (b *Backend) record(r *http.Request, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get(constvars.HeaderAuthorization),
		Body:          body,
	})
}

func (b *Backend) takeFailure(r *http.Request) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	statusCode, ok := b.failures[key]
	if ok {
		delete(b.failures, key)
	}
	return statusCode, ok
}

func (b *Backend) takeDelay(r *http.Request) (chan struct{}, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := r.Method + " " + r.URL.Path
	gate, ok := b.delays[key]
	if ok {
		delete(b.delays, key)
	}
	return gate, ok
}
