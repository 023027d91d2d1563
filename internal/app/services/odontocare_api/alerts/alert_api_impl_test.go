package alerts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/fakebackend"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAlertAPIClient(t *testing.T) {
	backend := fakebackend.New(nil)
	baseURL := backend.Start()
	defer backend.Close()

	user := backend.AddUser("Ana", "ana@example.com", "secret", constvars.UserRolePatient)
	patient := backend.AddPatient(models.Patient{UserID: user.ID, Name: "Ana"})
	first := backend.AddAlert(models.Alert{PatientID: patient.ID, Title: "Consulta amanhã"})
	backend.AddAlert(models.Alert{PatientID: patient.ID, Title: "Escove os dentes"})
	backend.AddAlert(models.Alert{PatientID: patient.ID + 1, Title: "Outro paciente"})

	logger := zap.NewNop()
	ctx := httpclient.WithBearerToken(context.Background(), backend.Token(user.ID))
	client := NewAlertAPIClient(httpclient.NewClient(baseURL, nil, "", logger), logger)

	alerts, err := client.FindAlertsByPatientID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)

	all, err := client.FindAllAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	marked, err := client.MarkAlertAsRead(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, marked.Read)

	unread, err := client.FindUnreadAlertsByPatientID(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Escove os dentes", unread[0].Title)

	require.NoError(t, client.MarkAllAlertsAsRead(ctx, patient.ID))
	unread, err = client.FindUnreadAlertsByPatientID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
