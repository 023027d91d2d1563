package models

import (
	"bytes"
	"odontocare-client/internal/pkg/constvars"
	"strconv"
	"time"
)

// DateTime is a backend timestamp. The backend stores local wall-clock values,
// so zone-less input is read in time.Local and output never carries a zone.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	constvars.LayoutLocalDateTime,
	constvars.LayoutLocalDateTimeMs,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	constvars.LayoutISODate,
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func ParseDateTime(value string) (DateTime, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return DateTime{Time: parsed.In(time.Local)}, nil
	}

	var lastErr error
	for _, layout := range dateTimeLayouts {
		parsed, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return DateTime{Time: parsed}, nil
		}
		lastErr = err
	}
	return DateTime{}, lastErr
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(constvars.LayoutLocalDateTime))), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	value, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	if value == "" {
		d.Time = time.Time{}
		return nil
	}

	parsed, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateKey is the local calendar day, YYYY-MM-DD.
func (d DateTime) DateKey() string {
	return d.In(time.Local).Format(constvars.LayoutISODate)
}
