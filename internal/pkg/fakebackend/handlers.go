package fakebackend

import (
	"net/http"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	var request requests.Login
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}

	b.mu.Lock()
	var found *userRecord
	for _, user := range b.users {
		if strings.EqualFold(user.Email, request.Email) {
			found = user
			break
		}
	}
	b.mu.Unlock()

	if found == nil || !utils.CheckPasswordHash(request.Password, found.passwordHash) {
		writeError(w, r, http.StatusUnauthorized, "credenciais inválidas")
		return
	}

	token, err := utils.GenerateAccessJWT(found.ID, found.Email, tokenSecret, time.Hour)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, responses.Login{Token: token, User: found.User})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var request requests.RegisterUser
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}
	if request.Email == "" || request.Password == "" {
		writeError(w, r, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}
	if _, exists := b.UserByEmail(request.Email); exists {
		writeError(w, r, http.StatusBadRequest, "email já cadastrado")
		return
	}

	user := b.AddUser(request.Name, request.Email, request.Password, request.Role)
	writeJSON(w, http.StatusOK, user)
}

func (b *Backend) findPatientByID(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	patient, ok := b.Patient(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, patient)
}

func (b *Backend) findPatientByUserID(w http.ResponseWriter, r *http.Request) {
	userID, _ := pathID(r, "userID")

	b.mu.Lock()
	var found *models.Patient
	for _, id := range sortedKeys(b.patients) {
		if b.patients[id].UserID == userID {
			copied := *b.patients[id]
			found = &copied
			break
		}
	}
	b.mu.Unlock()

	if found == nil {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// putPatient replaces the patient, creating it under the path id when absent.
func (b *Backend) putPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "id inválido")
		return
	}
	var request requests.UpsertPatient
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}

	patient := models.Patient{
		ID:        id,
		UserID:    request.UserID,
		Name:      request.Name,
		BirthDate: request.BirthDate,
		Points:    request.Points,
	}
	if request.Phone != "" {
		phone := request.Phone
		patient.Phone = &phone
	}
	writeJSON(w, http.StatusOK, b.AddPatient(patient))
}

func (b *Backend) patchPatient(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var patch requests.PatientPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}

	b.mu.Lock()
	patient, ok := b.patients[id]
	if ok {
		if patch.Name != nil {
			patient.Name = *patch.Name
		}
		if patch.BirthDate != nil {
			patient.BirthDate = patch.BirthDate
		}
		if patch.Phone != nil {
			patient.Phone = patch.Phone
		}
		if patch.Address != nil {
			patient.Address = patch.Address
		}
	}
	var updated models.Patient
	if ok {
		updated = *patient
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) addPoints(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	points, err := strconv.Atoi(chi.URLParam(r, "points"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "pontos inválidos")
		return
	}

	b.mu.Lock()
	patient, ok := b.patients[id]
	var updated models.Patient
	if ok {
		patient.Points += points
		updated = *patient
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) listAppointments(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	appointments := b.appointmentsOf(0)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, appointments)
}

func (b *Backend) listPatientAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")
	writeJSON(w, http.StatusOK, b.Appointments(patientID))
}

func (b *Backend) findAppointment(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	appointment, ok := b.Appointment(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "agendamento não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (b *Backend) createAppointment(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateAppointment
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}
	if _, ok := b.Patient(request.PatientID); !ok {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}

	appointment := b.AddAppointment(models.Appointment{
		PatientID: request.PatientID,
		Date:      request.Date,
		Type:      request.Type,
		Notes:     request.Notes,
		Status:    request.Status,
	})
	writeJSON(w, http.StatusOK, appointment)
}

func (b *Backend) putAppointment(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	var request models.Appointment
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}
	if _, ok := b.Appointment(id); !ok {
		writeError(w, r, http.StatusNotFound, "agendamento não encontrado")
		return
	}
	request.ID = id
	writeJSON(w, http.StatusOK, b.AddAppointment(request))
}

func (b *Backend) deleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	b.mu.Lock()
	_, ok := b.appointments[id]
	delete(b.appointments, id)
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "agendamento não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (b *Backend) updateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")
	status := chi.URLParam(r, "status")

	b.mu.Lock()
	appointment, ok := b.appointments[id]
	var updated models.Appointment
	if ok {
		appointment.Status = status
		updated = *appointment
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "agendamento não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) listAlerts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	alerts := b.alertsOf(0)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, alerts)
}

func (b *Backend) listPatientAlerts(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")
	writeJSON(w, http.StatusOK, b.Alerts(patientID))
}

func (b *Backend) listUnreadAlerts(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")
	unread := []models.Alert{}
	for _, alert := range b.Alerts(patientID) {
		if !alert.Read {
			unread = append(unread, alert)
		}
	}
	writeJSON(w, http.StatusOK, unread)
}

func (b *Backend) markAlertRead(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	b.mu.Lock()
	alert, ok := b.alerts[id]
	var updated models.Alert
	if ok {
		alert.Read = true
		updated = *alert
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "alerta não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) markAllAlertsRead(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")

	b.mu.Lock()
	for _, alert := range b.alerts {
		if alert.PatientID == patientID {
			alert.Read = true
		}
	}
	b.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (b *Backend) listPatientActivities(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")
	writeJSON(w, http.StatusOK, b.Activities(patientID))
}

func (b *Backend) listPatientActivitiesByDate(w http.ResponseWriter, r *http.Request) {
	patientID, _ := pathID(r, "patientID")
	day := chi.URLParam(r, "date")
	if _, err := time.Parse(constvars.LayoutISODate, day); err != nil {
		writeError(w, r, http.StatusBadRequest, "data inválida")
		return
	}

	b.mu.Lock()
	activities := b.activitiesOf(patientID, day)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, activities)
}

// completeActivity credits the activity's points once; completing twice is a no-op.
func (b *Backend) completeActivity(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r, "id")

	b.mu.Lock()
	activity, ok := b.activities[id]
	var updated models.Activity
	if ok {
		if !activity.Completed {
			activity.Completed = true
			if patient, found := b.patients[activity.PatientID]; found {
				patient.Points += activity.Points
			}
		}
		updated = *activity
	}
	b.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusNotFound, "atividade não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) createActivity(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateActivity
	if err := decodeBody(r, &request); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo inválido")
		return
	}
	if _, ok := b.Patient(request.PatientID); !ok {
		writeError(w, r, http.StatusNotFound, "paciente não encontrado")
		return
	}

	activity := b.AddActivity(models.Activity{
		PatientID:   request.PatientID,
		Description: request.Description,
		Points:      request.Points,
		Date:        request.Date,
		Completed:   request.Completed,
	})
	if activity.Completed {
		b.mu.Lock()
		if patient, found := b.patients[activity.PatientID]; found {
			patient.Points += activity.Points
		}
		b.mu.Unlock()
	}
	writeJSON(w, http.StatusOK, activity)
}
