package utils

import (
	"odontocare-client/internal/pkg/constvars"
	"strings"
	"time"
)

// BrazilianDateToISO turns DD/MM/YYYY into YYYY-MM-DD by reordering the parts.
// Anything that does not split into three parts yields "" and false.
func BrazilianDateToISO(date string) (string, bool) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", false
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0], true
}

// NoonOf returns 12:00:00 local time on the given YYYY-MM-DD date.
func NoonOf(isoDate string) (time.Time, error) {
	day, err := time.ParseInLocation(constvars.LayoutISODate, isoDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), constvars.NewAppointmentHour, 0, 0, 0, time.Local), nil
}

// DateKey truncates t to its calendar day in local time.
func DateKey(t time.Time) string {
	return t.In(time.Local).Format(constvars.LayoutISODate)
}
