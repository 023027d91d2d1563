package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"Local Wall Clock", `"2024-05-01T10:00:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)},
		{"Milliseconds", `"2024-05-03T08:30:00.000"`, time.Date(2024, 5, 3, 8, 30, 0, 0, time.Local)},
		{"Date Only", `"2024-05-03"`, time.Date(2024, 5, 3, 0, 0, 0, 0, time.Local)},
		{"Null", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, tt.expected.Equal(got.Time), "expected %v, got %v", tt.expected, got.Time)
		})
	}

	t.Run("Garbage", func(t *testing.T) {
		var got DateTime
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &got))
	})
}

func TestDateTime_MarshalJSON(t *testing.T) {
	noon := NewDateTime(time.Date(2024, 6, 10, 12, 0, 0, 0, time.Local))

	data, err := json.Marshal(noon)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10T12:00:00"`, string(data))

	data, err = json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestDateTime_DateKey(t *testing.T) {
	stamp, err := ParseDateTime("2024-05-01T23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", stamp.DateKey())
}
