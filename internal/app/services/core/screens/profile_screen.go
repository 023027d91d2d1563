package screens

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// ProfileState is the patient card plus today's checklist. Day is the
// YYYY-MM-DD the checklist belongs to.
type ProfileState struct {
	Loading    bool
	Saving     bool
	Patient    *models.Patient
	Activities []models.Activity
	Checked    map[ActivitySlot]bool
	Day        string
}

type ProfileController struct {
	screen
	ActivityAPIClient contracts.ActivityAPIClient

	mu    sync.Mutex
	state ProfileState
}

func NewProfileController(deps Dependencies, activityAPIClient contracts.ActivityAPIClient) *ProfileController {
	c := &ProfileController{
		ActivityAPIClient: activityAPIClient,
		state: ProfileState{
			Loading: true,
			Checked: make(map[ActivitySlot]bool, len(ActivitySlots)),
		},
	}
	c.setup(deps, constvars.RouteProfile)
	return c
}

func (c *ProfileController) State() ProfileState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	if c.state.Patient != nil {
		patient := *c.state.Patient
		state.Patient = &patient
	}
	state.Activities = make([]models.Activity, len(c.state.Activities))
	copy(state.Activities, c.state.Activities)
	state.Checked = make(map[ActivitySlot]bool, len(c.state.Checked))
	for slot, checked := range c.state.Checked {
		state.Checked[slot] = checked
	}
	return state
}

func (c *ProfileController) Focus(ctx context.Context) error {
	c.enter()
	return c.Refresh(ctx)
}

func (c *ProfileController) Refresh(ctx context.Context) error {
	ctx, generation, cancel := c.active(ctx)
	defer cancel()
	return c.load(ctx, generation)
}

func (c *ProfileController) load(ctx context.Context, generation uint64) error {
	defer c.update(generation, func(state *ProfileState) { state.Loading = false })

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
		c.fail(ctx, generation, err, constvars.ErrClientLoadProfile)
		return err
	}
	if patient == nil {
		return nil
	}

	day := utils.DateKey(c.Now())
	activities, err := c.ActivityAPIClient.FindActivitiesByPatientIDAndDate(ctx, patient.ID, day)
	if err != nil {
		c.update(generation, func(state *ProfileState) { state.Patient = patient })
		c.fail(ctx, generation, err, constvars.ErrClientLoadProfile)
		return err
	}

	c.update(generation, func(state *ProfileState) {
		state.Patient = patient
		state.Activities = activities
		if state.Day != day {
			state.Checked = make(map[ActivitySlot]bool, len(ActivitySlots))
			state.Day = day
		}
		// A checked slot stays checked for the rest of the day.
		for _, activity := range activities {
			if slot, ok := MatchActivitySlot(activity.Description); ok {
				state.Checked[slot] = state.Checked[slot] || activity.Completed
			}
		}
	})
	return nil
}

// Disabled reports whether the slot's checkbox can no longer be pressed.
func (c *ProfileController) Disabled(slot ActivitySlot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Checked[slot] || c.state.Saving
}

// Check completes today's record for slot, creating it when the day has no
// record with that exact description yet, and then reloads everything.
func (c *ProfileController) Check(ctx context.Context, slot ActivitySlot) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	definition, ok := LookupActivitySlot(slot)
	if !ok {
		err := exceptions.ErrUnknownActivitySlot(string(slot))
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}
	if c.Disabled(slot) {
		return nil
	}

	c.mu.Lock()
	patient := c.state.Patient
	var existing *models.Activity
	for i := range c.state.Activities {
		if c.state.Activities[i].Description == definition.Description {
			found := c.state.Activities[i]
			existing = &found
			break
		}
	}
	c.mu.Unlock()

	if patient == nil {
		err := exceptions.ErrClientCustomMessage(nil, constvars.ErrClientPatientDataUnavailable)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}

	c.update(generation, func(state *ProfileState) { state.Saving = true })
	defer c.update(generation, func(state *ProfileState) { state.Saving = false })

	var err error
	switch {
	case existing != nil && existing.Completed:
	case existing != nil:
		_, err = c.ActivityAPIClient.MarkActivityAsCompleted(ctx, existing.ID)
	default:
		_, err = c.ActivityAPIClient.CreateActivity(ctx, &requests.CreateActivity{
			PatientID:   patient.ID,
			Description: definition.Description,
			Points:      definition.Points,
			Date:        models.NewDateTime(c.Now()),
			Completed:   true,
		})
	}
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientUpdateActivity)
		return err
	}

	c.Log.Info("ProfileController.Check succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlotKey, string(slot)),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	c.update(generation, func(state *ProfileState) { state.Checked[slot] = true })
	return c.load(ctx, generation)
}

// UpdateContact sends only the fields that were filled in.
func (c *ProfileController) UpdateContact(ctx context.Context, patch requests.PatientPatch) error {
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	utils.SanitizePatientPatch(&patch)
	if patch.IsEmpty() {
		return nil
	}

	c.mu.Lock()
	patient := c.state.Patient
	c.mu.Unlock()
	if patient == nil {
		err := exceptions.ErrClientCustomMessage(nil, constvars.ErrClientPatientDataUnavailable)
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}

	c.update(generation, func(state *ProfileState) { state.Saving = true })
	defer c.update(generation, func(state *ProfileState) { state.Saving = false })

	updated, err := c.Session.UpdatePatientProfile(ctx, patient.ID, &patch)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientUpdateProfile)
		return err
	}

	c.update(generation, func(state *ProfileState) { state.Patient = updated })
	c.notifySuccess(generation, constvars.SuccessProfileUpdated)
	return nil
}

func (c *ProfileController) Logout(ctx context.Context) error {
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	if err := c.Session.Logout(ctx); err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientLogout)
		return err
	}
	c.navigate(generation, constvars.RouteLogin)
	return nil
}

func (c *ProfileController) update(generation uint64, apply func(state *ProfileState)) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	apply(&c.state)
	c.mu.Unlock()
}
