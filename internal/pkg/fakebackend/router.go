package fakebackend

import (
	"bytes"
	"io"
	"net/http"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

func (b *Backend) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(b.requestRecorder)
	router.Use(b.requestLogger)
	router.Use(b.faultInjector)

	router.Route("/api", func(r chi.Router) {
		r.Post(constvars.EndpointAuthLogin, b.login)
		r.Post(constvars.EndpointAuthRegister, b.register)
		// Sign-up writes the patient record before the new user has a token.
		r.Put("/pacientes/{id}", b.putPatient)

		r.Group(func(r chi.Router) {
			r.Use(b.requireBearer)

			r.Get("/pacientes/{id}", b.findPatientByID)
			r.Get("/pacientes/usuario/{userID}", b.findPatientByUserID)
			r.Patch("/pacientes/{id}", b.patchPatient)
			r.Patch("/pacientes/{id}/pontos/{points}", b.addPoints)

			r.Get("/agendamentos", b.listAppointments)
			r.Post("/agendamentos", b.createAppointment)
			r.Get("/agendamentos/{id}", b.findAppointment)
			r.Put("/agendamentos/{id}", b.putAppointment)
			r.Delete("/agendamentos/{id}", b.deleteAppointment)
			r.Get("/agendamentos/paciente/{patientID}", b.listPatientAppointments)
			r.Patch("/agendamentos/{id}/status/{status}", b.updateAppointmentStatus)

			r.Get("/alertas", b.listAlerts)
			r.Get("/alertas/paciente/{patientID}", b.listPatientAlerts)
			r.Get("/alertas/paciente/{patientID}/nao-lidos", b.listUnreadAlerts)
			r.Patch("/alertas/{id}/marcar-como-lido", b.markAlertRead)
			r.Patch("/alertas/paciente/{patientID}/marcar-todos-como-lidos", b.markAllAlertsRead)

			r.Get("/atividades/paciente/{patientID}", b.listPatientActivities)
			r.Get("/atividades/paciente/{patientID}/data/{date}", b.listPatientActivitiesByDate)
			r.Patch("/atividades/{id}/marcar-como-concluida", b.completeActivity)
			r.Post("/atividades", b.createActivity)
		})
	})

	return router
}

func (b *Backend) requestRecorder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		b.record(r, string(body))
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		b.Log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": r.Header.Get(constvars.HeaderXRequestID),
			"duration":   time.Since(start).String(),
		}).Info("fakebackend request served")
	})
}

func (b *Backend) faultInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gate, ok := b.takeDelay(r); ok {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}
		if statusCode, ok := b.takeFailure(r); ok {
			writeError(w, r, statusCode, "falha simulada")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			writeError(w, r, http.StatusUnauthorized, "token ausente")
			return
		}

		userID, err := utils.ParseAccessJWT(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix), tokenSecret)
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, "token inválido")
			return
		}

		b.mu.Lock()
		_, known := b.users[userID]
		b.mu.Unlock()
		if !known {
			writeError(w, r, http.StatusUnauthorized, "usuário desconhecido")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, statusCode, responses.APIError{
		Timestamp: time.Now().Format(time.RFC3339),
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
		Path:      r.URL.Path,
	})
}

func decodeBody(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}
