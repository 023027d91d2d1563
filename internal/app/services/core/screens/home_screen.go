package screens

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/exceptions"
	"sync"
)

type MenuItem struct {
	Route       string
	Title       string
	Description string
}

var MenuItems = []MenuItem{
	{Route: constvars.RouteAppointments, Title: "Appointments", Description: "Book and manage your visits"},
	{Route: constvars.RouteAlerts, Title: "Alerts", Description: "Messages from the clinic"},
	{Route: constvars.RouteProfile, Title: "Profile", Description: "Your data, points and daily checklist"},
}

type HomeState struct {
	Loading bool
	User    *models.User
}

type HomeController struct {
	screen

	mu    sync.Mutex
	state HomeState
}

func NewHomeController(deps Dependencies) *HomeController {
	c := &HomeController{state: HomeState{Loading: true}}
	c.setup(deps, constvars.RouteHome)
	return c
}

func (c *HomeController) State() HomeState {
	c.mu.Lock()
	defer c.mu.Unlock()
	state := c.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

func (c *HomeController) Focus(ctx context.Context) error {
	c.enter()
	ctx, generation, cancel := c.active(ctx)
	defer cancel()
	defer c.settle(generation)

	current, err := c.resolveSession(ctx, generation)
	if err != nil {
		if isSilent(err) {
			return nil
		}
		return err
	}
	if !c.isCurrent(generation) {
		return nil
	}

	c.mu.Lock()
	c.state.User = &current.User
	c.mu.Unlock()
	return nil
}

func (c *HomeController) settle(generation uint64) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	c.state.Loading = false
	c.mu.Unlock()
}

func (c *HomeController) Items() []MenuItem {
	items := make([]MenuItem, len(MenuItems))
	copy(items, MenuItems)
	return items
}

func (c *HomeController) Open(ctx context.Context, route string) error {
	generation := c.currentGeneration()
	for _, item := range MenuItems {
		if item.Route == route {
			c.navigate(generation, route)
			return nil
		}
	}

	err := exceptions.ErrUnknownRoute(route)
	c.fail(ctx, generation, err, err.ClientMessage)
	return err
}
