package screens

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

type AlertsState struct {
	Loading    bool
	Refreshing bool
	PatientID  int64
	Alerts     []models.Alert
}

// AlertsController reloads on every focus, since alerts are created by the
// clinic while the patient is elsewhere in the app.
type AlertsController struct {
	screen
	AlertAPIClient contracts.AlertAPIClient

	mu    sync.Mutex
	state AlertsState
	// read holds ids seen or marked read; a fetch never turns them unread.
	read map[int64]bool
}

func NewAlertsController(deps Dependencies, alertAPIClient contracts.AlertAPIClient) *AlertsController {
	c := &AlertsController{
		AlertAPIClient: alertAPIClient,
		state:          AlertsState{Loading: true},
		read:           make(map[int64]bool),
	}
	c.setup(deps, constvars.RouteAlerts)
	return c
}

func (c *AlertsController) State() AlertsState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.state
	state.Alerts = make([]models.Alert, len(c.state.Alerts))
	copy(state.Alerts, c.state.Alerts)
	return state
}

func (c *AlertsController) Focus(ctx context.Context) error {
	c.enter()
	ctx, generation, cancel := c.active(ctx)
	defer cancel()
	return c.load(ctx, generation)
}

// Refresh is the pull-to-refresh gesture.
func (c *AlertsController) Refresh(ctx context.Context) error {
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	c.update(generation, func(state *AlertsState) { state.Refreshing = true })
	defer c.update(generation, func(state *AlertsState) { state.Refreshing = false })
	return c.load(ctx, generation)
}

func (c *AlertsController) load(ctx context.Context, generation uint64) error {
	defer c.update(generation, func(state *AlertsState) { state.Loading = false })

	current, err := c.resolveSession(ctx, generation)
	if err != nil {
		if isSilent(err) {
			return nil
		}
		return err
	}
	if !current.User.IsPatient() {
		return nil
	}

	patient, err := c.Session.RefreshPatient(ctx)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientLoadAlerts)
		return err
	}
	if patient == nil {
		return nil
	}

	alerts, err := c.AlertAPIClient.FindAlertsByPatientID(ctx, patient.ID)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientLoadAlerts)
		return err
	}

	c.update(generation, func(state *AlertsState) {
		if state.PatientID != patient.ID {
			c.read = make(map[int64]bool)
		}
		for i := range alerts {
			alerts[i].Read = alerts[i].Read || c.read[alerts[i].ID]
			if alerts[i].Read {
				c.read[alerts[i].ID] = true
			}
		}
		state.PatientID = patient.ID
		state.Alerts = alerts
	})
	return nil
}

// MarkAsRead flips the alert remotely, then patches only that alert locally.
func (c *AlertsController) MarkAsRead(ctx context.Context, alertID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	_, err := c.AlertAPIClient.MarkAlertAsRead(ctx, alertID)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientMarkAlertRead)
		return err
	}

	c.Log.Info("AlertsController.MarkAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAlertIDKey, alertID),
	)
	c.update(generation, func(state *AlertsState) {
		c.read[alertID] = true
		for i := range state.Alerts {
			if state.Alerts[i].ID == alertID {
				state.Alerts[i].Read = true
			}
		}
	})
	return nil
}

// MarkAllAsRead does nothing until a patient has been resolved.
func (c *AlertsController) MarkAllAsRead(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	c.mu.Lock()
	patientID := c.state.PatientID
	c.mu.Unlock()
	if patientID == 0 {
		return nil
	}

	err := c.AlertAPIClient.MarkAllAlertsAsRead(ctx, patientID)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientMarkAllAlertsRead)
		return err
	}

	c.Log.Info("AlertsController.MarkAllAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	c.update(generation, func(state *AlertsState) {
		for i := range state.Alerts {
			state.Alerts[i].Read = true
			c.read[state.Alerts[i].ID] = true
		}
	})
	c.notifySuccess(generation, constvars.SuccessAllAlertsRead)
	return nil
}

func (c *AlertsController) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, alert := range c.state.Alerts {
		if !alert.Read {
			count++
		}
	}
	return count
}

func (c *AlertsController) CanMarkAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.state.Alerts) > 0
}

func (c *AlertsController) update(generation uint64, apply func(state *AlertsState)) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	apply(&c.state)
	c.mu.Unlock()
}
