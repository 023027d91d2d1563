package activities

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/fakebackend"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestActivityAPIClient(t *testing.T) {
	backend := fakebackend.New(nil)
	baseURL := backend.Start()
	defer backend.Close()

	user := backend.AddUser("Ana", "ana@example.com", "secret", constvars.UserRolePatient)
	patient := backend.AddPatient(models.Patient{UserID: user.ID, Name: "Ana"})
	today := time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)
	pending := backend.AddActivity(models.Activity{
		PatientID:   patient.ID,
		Description: constvars.ActivityLunchBrushingDescription,
		Points:      constvars.ActivityBrushingPoints,
		Date:        models.NewDateTime(today),
	})
	backend.AddActivity(models.Activity{
		PatientID:   patient.ID,
		Description: constvars.ActivityCleaningDescription,
		Points:      constvars.ActivityCleaningPoints,
		Date:        models.NewDateTime(today.AddDate(0, 0, -1)),
		Completed:   true,
	})

	logger := zap.NewNop()
	ctx := httpclient.WithBearerToken(context.Background(), backend.Token(user.ID))
	client := NewActivityAPIClient(httpclient.NewClient(baseURL, nil, "", logger), logger)

	t.Run("By Date", func(t *testing.T) {
		activities, err := client.FindActivitiesByPatientIDAndDate(ctx, patient.ID, "2024-05-01")
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, pending.ID, activities[0].ID)

		all, err := client.FindActivitiesByPatientID(ctx, patient.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Complete Credits Points", func(t *testing.T) {
		completed, err := client.MarkActivityAsCompleted(ctx, pending.ID)
		require.NoError(t, err)
		assert.True(t, completed.Completed)

		stored, _ := backend.Patient(patient.ID)
		assert.Equal(t, constvars.ActivityBrushingPoints, stored.Points)
	})

	t.Run("Create", func(t *testing.T) {
		created, err := client.CreateActivity(ctx, &requests.CreateActivity{
			PatientID:   patient.ID,
			Description: constvars.ActivityDinnerBrushingDescription,
			Points:      constvars.ActivityBrushingPoints,
			Date:        models.NewDateTime(today),
			Completed:   true,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.True(t, created.Completed)
	})
}
