package appointments

import (
	"context"
	"net/http"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/app/services/shared/sessionstorage"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/fakebackend"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppointmentAPIClient(t *testing.T) {
	ctx := context.Background()
	backend := fakebackend.New(nil)
	baseURL := backend.Start()
	defer backend.Close()

	user := backend.AddUser("Ana", "ana@example.com", "secret", constvars.UserRolePatient)
	patient := backend.AddPatient(models.Patient{UserID: user.ID, Name: "Ana"})

	logger := zap.NewNop()
	storage := sessionstorage.NewMemoryStorage()
	tokenKey := sessionstorage.Key(constvars.DefaultSessionNamespace, constvars.SessionStorageTokenKey)
	require.NoError(t, storage.SetItem(ctx, tokenKey, backend.Token(user.ID)))
	client := NewAppointmentAPIClient(httpclient.NewClient(baseURL, storage, tokenKey, logger), logger)

	var created *models.Appointment

	t.Run("Create", func(t *testing.T) {
		var err error
		created, err = client.CreateAppointment(ctx, &requests.CreateAppointment{
			PatientID: patient.ID,
			Date:      models.NewDateTime(time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local)),
			Type:      constvars.DefaultAppointmentType,
			Status:    constvars.AppointmentStatusScheduled,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		recorded := backend.RequestsTo(http.MethodPost, "/api/agendamentos")
		require.Len(t, recorded, 1)
		assert.Contains(t, recorded[0].Body, `"data":"2024-06-10T12:00:00"`)
		assert.Contains(t, recorded[0].Authorization, "Bearer ")
	})

	t.Run("List By Patient", func(t *testing.T) {
		appointments, err := client.FindAppointmentsByPatientID(ctx, patient.ID)
		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Equal(t, created.ID, appointments[0].ID)
		assert.Equal(t, "2024-06-10", appointments[0].Date.DateKey())

		all, err := client.FindAllAppointments(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Update Status", func(t *testing.T) {
		updated, err := client.UpdateAppointmentStatus(ctx, created.ID, constvars.AppointmentStatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, updated.Status)
		assert.Len(t, backend.RequestsTo(http.MethodPatch, "/api/agendamentos/"+strconv.FormatInt(created.ID, 10)+"/status/cancelado"), 1)
	})

	t.Run("Update And Find", func(t *testing.T) {
		replacement := *created
		replacement.Notes = "Trazer exames"
		_, err := client.UpdateAppointment(ctx, created.ID, &replacement)
		require.NoError(t, err)

		found, err := client.FindAppointmentByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trazer exames", found.Notes)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, client.DeleteAppointment(ctx, created.ID))
		_, err := client.FindAppointmentByID(ctx, created.ID)
		assert.Error(t, err)
	})
}
