package screens

import (
	"context"
	"net/http"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedAlerts(h *harness) []models.Alert {
	return []models.Alert{
		h.backend.AddAlert(models.Alert{PatientID: testPatientID, Title: "Lembrete", Date: localTime(2024, 6, 1, 9, 0)}),
		h.backend.AddAlert(models.Alert{PatientID: testPatientID, Title: "Retorno", Date: localTime(2024, 6, 2, 9, 0)}),
		h.backend.AddAlert(models.Alert{PatientID: testPatientID, Title: "Boas-vindas", Date: localTime(2024, 5, 20, 9, 0), Read: true}),
	}
}

func TestAlertsController_Focus(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	seedAlerts(h)
	h.login(t)

	controller := NewAlertsController(h.deps(), h.alertAPIClient())
	assert.False(t, controller.CanMarkAll())

	require.NoError(t, controller.Focus(ctx))
	state := controller.State()
	assert.False(t, state.Loading)
	assert.Equal(t, testPatientID, state.PatientID)
	assert.Len(t, state.Alerts, 3)
	assert.Equal(t, 2, controller.UnreadCount())
	assert.True(t, controller.CanMarkAll())

	t.Run("Every Focus Reloads", func(t *testing.T) {
		h.backend.AddAlert(models.Alert{PatientID: testPatientID, Title: "Novo", Date: localTime(2024, 6, 3, 9, 0)})
		controller.Blur()

		require.NoError(t, controller.Focus(ctx))
		assert.Len(t, controller.State().Alerts, 4)
	})

	t.Run("Refresh Clears Refreshing Flag", func(t *testing.T) {
		require.NoError(t, controller.Refresh(ctx))
		assert.False(t, controller.State().Refreshing)
	})
}

func TestAlertsController_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	seeded := seedAlerts(h)
	h.login(t)

	controller := NewAlertsController(h.deps(), h.alertAPIClient())
	require.NoError(t, controller.Focus(ctx))

	t.Run("Flips Only That Alert", func(t *testing.T) {
		require.NoError(t, controller.MarkAsRead(ctx, seeded[0].ID))

		alerts := controller.State().Alerts
		assert.True(t, alerts[0].Read)
		assert.False(t, alerts[1].Read)
		assert.True(t, alerts[2].Read)
		assert.Equal(t, 1, controller.UnreadCount())
		assert.Len(t, h.backend.RequestsTo(http.MethodPatch, "/api/alertas/"+strconv.FormatInt(seeded[0].ID, 10)+"/marcar-como-lido"), 1)
	})

	t.Run("Failure Leaves Local State", func(t *testing.T) {
		path := "/api/alertas/" + strconv.FormatInt(seeded[1].ID, 10) + "/marcar-como-lido"
		h.backend.FailNext(http.MethodPatch, path, http.StatusInternalServerError)

		require.Error(t, controller.MarkAsRead(ctx, seeded[1].ID))
		assert.False(t, controller.State().Alerts[1].Read)
		assert.Equal(t, models.NotificationError, h.notifier.Last().Level)
		assert.Equal(t, constvars.ErrClientMarkAlertRead, h.notifier.Last().Message)
	})
}

func TestAlertsController_MarkAllAsRead(t *testing.T) {
	ctx := context.Background()

	t.Run("Flips Every Alert For Good", func(t *testing.T) {
		h := newHarness(t)
		seedAlerts(h)
		h.login(t)

		controller := NewAlertsController(h.deps(), h.alertAPIClient())
		require.NoError(t, controller.Focus(ctx))

		require.NoError(t, controller.MarkAllAsRead(ctx))
		assert.Zero(t, controller.UnreadCount())
		assert.Equal(t, constvars.SuccessAllAlertsRead, h.notifier.Last().Message)

		require.NoError(t, controller.Refresh(ctx))
		for _, alert := range controller.State().Alerts {
			assert.True(t, alert.Read)
		}
	})

	t.Run("No Patient Yet Is A No-op", func(t *testing.T) {
		h := newHarness(t)
		h.login(t)

		controller := NewAlertsController(h.deps(), h.alertAPIClient())
		require.NoError(t, controller.MarkAllAsRead(ctx))
		assert.Empty(t, h.backend.Requests())
		assert.Empty(t, h.notifier.All())
	})

	t.Run("Missing Session Redirects", func(t *testing.T) {
		h := newHarness(t)
		h.loggedOut(t)

		controller := NewAlertsController(h.deps(), h.alertAPIClient())
		require.NoError(t, controller.Focus(ctx))
		h.navigator.AssertCalled(t, "Navigate", constvars.RouteLogin)
		assert.Zero(t, h.requestsUnder("/api/alertas"))
	})
}

func TestAlertsController_ReadFlagIsOneWay(t *testing.T) {
	ctx := context.Background()

	unreadAlerts := func() []models.Alert {
		return []models.Alert{
			{ID: 1, PatientID: testPatientID, Title: "Lembrete"},
			{ID: 2, PatientID: testPatientID, Title: "Retorno"},
		}
	}

	// focusWithSlowRefresh focuses the controller, then starts a refresh whose
	// list response was produced before the patient's next action.
	focusWithSlowRefresh := func(t *testing.T, alertAPIClient *MockAlertAPIClient) (*AlertsController, chan struct{}, chan error) {
		h := newHarness(t)
		h.login(t)

		started := make(chan struct{})
		proceed := make(chan struct{})
		alertAPIClient.On("FindAlertsByPatientID", mock.Anything, testPatientID).Return(unreadAlerts(), nil).Once()
		alertAPIClient.On("FindAlertsByPatientID", mock.Anything, testPatientID).
			Run(func(mock.Arguments) {
				close(started)
				<-proceed
			}).
			Return(unreadAlerts(), nil).Once()

		controller := NewAlertsController(h.deps(), alertAPIClient)
		require.NoError(t, controller.Focus(ctx))
		require.Equal(t, 2, controller.UnreadCount())

		done := make(chan error, 1)
		go func() { done <- controller.Refresh(ctx) }()
		<-started
		return controller, proceed, done
	}

	t.Run("Mark All Survives Stale Refresh", func(t *testing.T) {
		alertAPIClient := new(MockAlertAPIClient)
		alertAPIClient.On("MarkAllAlertsAsRead", mock.Anything, testPatientID).Return(nil)
		controller, proceed, done := focusWithSlowRefresh(t, alertAPIClient)

		require.NoError(t, controller.MarkAllAsRead(ctx))
		assert.Zero(t, controller.UnreadCount())

		close(proceed)
		require.NoError(t, <-done)
		assert.Zero(t, controller.UnreadCount())
		for _, alert := range controller.State().Alerts {
			assert.True(t, alert.Read)
		}
		alertAPIClient.AssertExpectations(t)
	})

	t.Run("Single Read Survives Stale Refresh", func(t *testing.T) {
		alertAPIClient := new(MockAlertAPIClient)
		alertAPIClient.On("MarkAlertAsRead", mock.Anything, int64(1)).
			Return(&models.Alert{ID: 1, PatientID: testPatientID, Read: true}, nil)
		controller, proceed, done := focusWithSlowRefresh(t, alertAPIClient)

		require.NoError(t, controller.MarkAsRead(ctx, 1))
		close(proceed)
		require.NoError(t, <-done)

		alerts := controller.State().Alerts
		require.Len(t, alerts, 2)
		assert.True(t, alerts[0].Read)
		assert.False(t, alerts[1].Read)
		assert.Equal(t, 1, controller.UnreadCount())
	})
}
