package screens

import (
	"context"
	"fmt"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// AppointmentsState is a snapshot of the appointments view. Marks already
// include the pending selection.
type AppointmentsState struct {
	Loading      bool
	PatientID    int64
	Appointments []models.Appointment
	Marks        map[string]CalendarMark
	FormOpen     bool
	SelectedDate string
	Type         string
	Notes        string
}

type AppointmentsController struct {
	screen
	AppointmentAPIClient contracts.AppointmentAPIClient

	mu    sync.Mutex
	state AppointmentsState
}

func NewAppointmentsController(deps Dependencies, appointmentAPIClient contracts.AppointmentAPIClient) *AppointmentsController {
	c := &AppointmentsController{
		AppointmentAPIClient: appointmentAPIClient,
		state: AppointmentsState{
			Loading: true,
			Type:    constvars.DefaultAppointmentType,
		},
	}
	c.setup(deps, constvars.RouteAppointments)
	return c
}

func (c *AppointmentsController) State() AppointmentsState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Appointments = make([]models.Appointment, len(c.state.Appointments))
	copy(state.Appointments, c.state.Appointments)
	state.Marks = CalendarMarks(c.state.Appointments, c.state.SelectedDate)
	return state
}

func (c *AppointmentsController) Focus(ctx context.Context) error {
	c.enter()
	return c.Refresh(ctx)
}

// Refresh re-runs the session, patient and appointment chain.
func (c *AppointmentsController) Refresh(ctx context.Context) error {
	ctx, generation, cancel := c.active(ctx)
	defer cancel()
	return c.load(ctx, generation)
}

func (c *AppointmentsController) load(ctx context.Context, generation uint64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	defer c.settle(generation)

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
		c.fail(ctx, generation, err, constvars.ErrClientLoadAppointments)
		return err
	}
	if patient == nil {
		return nil
	}

	appointments, err := c.AppointmentAPIClient.FindAppointmentsByPatientID(ctx, patient.ID)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientLoadAppointments)
		return err
	}

	if !c.isCurrent(generation) {
		c.Log.Debug("AppointmentsController.load discarded stale result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	c.mu.Lock()
	c.state.PatientID = patient.ID
	c.state.Appointments = appointments
	c.mu.Unlock()
	return nil
}

func (c *AppointmentsController) settle(generation uint64) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	c.state.Loading = false
	c.mu.Unlock()
}

// OpenNewAppointment shows the booking form with its defaults.
func (c *AppointmentsController) OpenNewAppointment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.FormOpen = true
	c.state.SelectedDate = ""
	c.state.Type = constvars.DefaultAppointmentType
	c.state.Notes = ""
}

func (c *AppointmentsController) CloseNewAppointment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.FormOpen = false
	c.state.SelectedDate = ""
}

// SelectDate picks the day for the next booking; date is YYYY-MM-DD.
func (c *AppointmentsController) SelectDate(date string) error {
	if _, err := utils.NoonOf(date); err != nil {
		return exceptions.ErrCannotParseTime(err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SelectedDate = date
	return nil
}

func (c *AppointmentsController) SetType(appointmentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Type = appointmentType
}

func (c *AppointmentsController) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Notes = notes
}

// Confirm books the selected day at noon local time, whatever the clock says.
func (c *AppointmentsController) Confirm(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	c.mu.Lock()
	selectedDate := c.state.SelectedDate
	patientID := c.state.PatientID
	appointmentType := c.state.Type
	notes := c.state.Notes
	c.mu.Unlock()

	if selectedDate == "" {
		err := exceptions.ErrClientCustomMessage(nil, constvars.ErrClientSelectDate)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}
	if patientID == 0 {
		err := exceptions.ErrClientCustomMessage(nil, constvars.ErrClientPatientNotFound)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}

	noon, err := utils.NoonOf(selectedDate)
	if err != nil {
		parseErr := exceptions.ErrCannotParseTime(err)
		c.fail(ctx, generation, parseErr, constvars.ErrClientCreateAppointment)
		return parseErr
	}

	c.setLoading(generation, true)
	appointment, err := c.AppointmentAPIClient.CreateAppointment(ctx, &requests.CreateAppointment{
		PatientID: patientID,
		Date:      models.NewDateTime(noon),
		Type:      appointmentType,
		Notes:     notes,
		Status:    constvars.AppointmentStatusScheduled,
	})
	if err != nil {
		c.settle(generation)
		c.fail(ctx, generation, err, constvars.ErrClientCreateAppointment)
		return err
	}

	c.Log.Info("AppointmentsController.Confirm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingDateKey, selectedDate),
	)
	c.notifySuccess(generation, fmt.Sprintf(constvars.SuccessAppointmentBooked, noon.Format(constvars.LayoutBrazilianDate)))

	err = c.load(ctx, generation)
	if c.isCurrent(generation) {
		c.CloseNewAppointment()
	}
	return err
}

// Cancel moves a scheduled or confirmed appointment to cancelled.
func (c *AppointmentsController) Cancel(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	appointment, found := c.find(appointmentID)
	if !found {
		err := exceptions.ErrAppointmentNotFound(appointmentID)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}
	if !CanCancel(appointment.Status) {
		err := exceptions.ErrAppointmentNotCancellable(appointment.Status)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}

	c.setLoading(generation, true)
	_, err := c.AppointmentAPIClient.UpdateAppointmentStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled)
	if err != nil {
		c.settle(generation)
		c.fail(ctx, generation, err, constvars.ErrClientCancelAppointment)
		return err
	}

	c.Log.Info("AppointmentsController.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	c.notifySuccess(generation, constvars.SuccessAppointmentCancelled)
	return c.load(ctx, generation)
}

func (c *AppointmentsController) find(appointmentID int64) (models.Appointment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, appointment := range c.state.Appointments {
		if appointment.ID == appointmentID {
			return appointment, true
		}
	}
	return models.Appointment{}, false
}

func (c *AppointmentsController) setLoading(generation uint64, loading bool) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	c.state.Loading = loading
	c.mu.Unlock()
}
