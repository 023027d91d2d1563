package screens

import (
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"time"
)

// StatusColor maps an appointment status to its display color. Unknown
// statuses fall back to orange.
func StatusColor(status string) string {
	switch status {
	case constvars.AppointmentStatusScheduled:
		return constvars.ColorBlue
	case constvars.AppointmentStatusConfirmed:
		return constvars.ColorGreen
	case constvars.AppointmentStatusCancelled:
		return constvars.ColorRed
	default:
		return constvars.ColorOrange
	}
}

func CanCancel(status string) bool {
	return status == constvars.AppointmentStatusScheduled || status == constvars.AppointmentStatusConfirmed
}

// FormatDateTime renders "dd/mm/yyyy às HH:MM" in local time.
func FormatDateTime(value models.DateTime) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(constvars.LayoutDisplayDateTime)
}

func FormatDate(value *models.DateTime) string {
	if value == nil || value.IsZero() {
		return constvars.DisplayNotInformed
	}
	return value.In(time.Local).Format(constvars.LayoutBrazilianDate)
}

// CalendarMark is how one day is drawn on the appointment calendar.
type CalendarMark struct {
	Color    string
	Selected bool
	Marked   bool
}

// CalendarMarks marks each appointment's local day with its status color. A
// later appointment on the same day wins. The selected day, when set, is
// drawn blue and replaces whatever mark it had.
func CalendarMarks(appointments []models.Appointment, selectedDate string) map[string]CalendarMark {
	marks := make(map[string]CalendarMark, len(appointments)+1)
	for _, appointment := range appointments {
		marks[appointment.Date.DateKey()] = CalendarMark{
			Color:    StatusColor(appointment.Status),
			Selected: true,
			Marked:   true,
		}
	}
	if selectedDate != "" {
		marks[selectedDate] = CalendarMark{Color: constvars.ColorBlue, Selected: true}
	}
	return marks
}
