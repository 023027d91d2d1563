package cli

import (
	"fmt"
	"io"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/core/screens"
	"odontocare-client/internal/pkg/constvars"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
)

// TextNotifier prints notifications the way the app showed alert dialogs.
type TextNotifier struct {
	Out io.Writer

	mu sync.Mutex
}

func (n *TextNotifier) Notify(notification models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.Out, "[%s] %s\n", notification.Title, notification.Message)
}

// TextNavigator remembers where the last screen wanted to go; commands turn
// that into a hint.
type TextNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *TextNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *TextNavigator) Last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

var routeCommands = map[string]string{
	constvars.RouteLogin:        "odontocare login --email <email>",
	constvars.RouteRegister:     "odontocare register",
	constvars.RouteHome:         "odontocare menu",
	constvars.RouteAppointments: "odontocare appointments list",
	constvars.RouteAlerts:       "odontocare alerts list",
	constvars.RouteProfile:      "odontocare profile show",
}

func renderHint(out io.Writer, route string) {
	switch route {
	case "":
	case constvars.RouteLogin:
		fmt.Fprintf(out, "You are not logged in. Run: %s\n", routeCommands[route])
	default:
		fmt.Fprintf(out, "Next: %s\n", routeCommands[route])
	}
}

func renderMenu(out io.Writer, state screens.HomeState, items []screens.MenuItem) {
	if state.User != nil {
		fmt.Fprintf(out, "Hello, %s\n\n", state.User.Name)
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Title, item.Description, routeCommands[item.Route])
	}
	w.Flush()
}

func renderWhoami(out io.Writer, current *models.Session, expiry string) {
	fmt.Fprintf(out, "User:    %s <%s> (%s)\n", current.User.Name, current.User.Email, current.User.Role)
	if current.Patient != nil {
		fmt.Fprintf(out, "Patient: #%d, %d points\n", current.Patient.ID, current.Patient.Points)
	}
	fmt.Fprintf(out, "Token:   expires %s\n", expiry)
}

func renderAppointments(out io.Writer, state screens.AppointmentsState) {
	if len(state.Appointments) == 0 {
		fmt.Fprintln(out, "No appointments.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tTYPE\tSTATUS\tCOLOR\tNOTES")
	for _, appointment := range state.Appointments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			appointment.ID,
			screens.FormatDateTime(appointment.Date),
			appointment.Type,
			appointment.Status,
			screens.StatusColor(appointment.Status),
			appointment.Notes,
		)
	}
	w.Flush()
}

func renderCalendar(out io.Writer, marks map[string]screens.CalendarMark) {
	if len(marks) == 0 {
		return
	}
	days := make([]string, 0, len(marks))
	for day := range marks {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Fprintln(out, "\nCalendar:")
	for _, day := range days {
		mark := marks[day]
		label := "marked"
		if !mark.Marked {
			label = "selected"
		}
		fmt.Fprintf(out, "  %s  %-6s %s\n", day, mark.Color, label)
	}
}

func renderAlerts(out io.Writer, state screens.AlertsState, unread int) {
	if len(state.Alerts) == 0 {
		fmt.Fprintln(out, "No alerts.")
		return
	}
	fmt.Fprintf(out, "%d unread of %d\n", unread, len(state.Alerts))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, alert := range state.Alerts {
		marker := "*"
		if alert.Read {
			marker = " "
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, alert.ID, screens.FormatDateTime(alert.Date), alert.Title, alert.Description)
	}
	w.Flush()
}

func renderProfile(out io.Writer, state screens.ProfileState, disabled func(screens.ActivitySlot) bool) {
	if state.Patient == nil {
		fmt.Fprintln(out, "Patient data not available.")
		return
	}
	patient := state.Patient
	fmt.Fprintf(out, "%s\n", patient.Name)
	fmt.Fprintf(out, "  Points:      %d\n", patient.Points)
	fmt.Fprintf(out, "  Birth date:  %s\n", optional(patient.BirthDate))
	fmt.Fprintf(out, "  Phone:       %s\n", optional(patient.Phone))
	fmt.Fprintf(out, "  Address:     %s\n", optional(patient.Address))
	fmt.Fprintf(out, "  Last visit:  %s\n", screens.FormatDate(patient.LastVisit))

	fmt.Fprintf(out, "\nToday (%s):\n", state.Day)
	for _, definition := range screens.ActivitySlots {
		box := "[ ]"
		if state.Checked[definition.Slot] {
			box = "[x]"
		}
		suffix := ""
		if !disabled(definition.Slot) {
			suffix = fmt.Sprintf("  (odontocare profile check %s)", definition.Slot)
		}
		fmt.Fprintf(out, "  %s %s +%d%s\n", box, definition.Label, definition.Points, suffix)
	}
}

func optional(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return constvars.DisplayNotInformed
	}
	return *value
}
