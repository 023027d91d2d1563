package screens

import (
	"odontocare-client/internal/pkg/constvars"
	"strings"
)

// ActivitySlot is one fixed entry of the daily hygiene checklist.
type ActivitySlot string

const (
	SlotBreakfastBrushing ActivitySlot = "breakfast"
	SlotLunchBrushing     ActivitySlot = "lunch"
	SlotDinnerBrushing    ActivitySlot = "dinner"
	SlotCheckupBooked     ActivitySlot = "checkup"
	SlotCleaning          ActivitySlot = "cleaning"
)

type ActivitySlotDefinition struct {
	Slot        ActivitySlot
	Label       string
	Description string
	Match       string
	Points      int
}

// ActivitySlots lists the checklist in display order, which is also the
// order descriptions are matched in.
var ActivitySlots = []ActivitySlotDefinition{
	{
		Slot:        SlotBreakfastBrushing,
		Label:       "Brushed after breakfast",
		Description: constvars.ActivityBreakfastBrushingDescription,
		Match:       constvars.ActivityBreakfastBrushingMatch,
		Points:      constvars.ActivityBrushingPoints,
	},
	{
		Slot:        SlotLunchBrushing,
		Label:       "Brushed after lunch",
		Description: constvars.ActivityLunchBrushingDescription,
		Match:       constvars.ActivityLunchBrushingMatch,
		Points:      constvars.ActivityBrushingPoints,
	},
	{
		Slot:        SlotDinnerBrushing,
		Label:       "Brushed after dinner",
		Description: constvars.ActivityDinnerBrushingDescription,
		Match:       constvars.ActivityDinnerBrushingMatch,
		Points:      constvars.ActivityBrushingPoints,
	},
	{
		Slot:        SlotCheckupBooked,
		Label:       "Booked a dental check-up",
		Description: constvars.ActivityCheckupBookedDescription,
		Match:       constvars.ActivityCheckupBookedMatch,
		Points:      constvars.ActivityCheckupBookedPoints,
	},
	{
		Slot:        SlotCleaning,
		Label:       "Had a dental cleaning",
		Description: constvars.ActivityCleaningDescription,
		Match:       constvars.ActivityCleaningMatch,
		Points:      constvars.ActivityCleaningPoints,
	},
}

// MatchActivitySlot maps a free-text activity description to the first slot
// whose fragment it contains. The backend has no activity type field, so
// this is the only link between records and checkboxes.
func MatchActivitySlot(description string) (ActivitySlot, bool) {
	for _, definition := range ActivitySlots {
		if strings.Contains(description, definition.Match) {
			return definition.Slot, true
		}
	}
	return "", false
}

func LookupActivitySlot(slot ActivitySlot) (ActivitySlotDefinition, bool) {
	for _, definition := range ActivitySlots {
		if definition.Slot == slot {
			return definition, true
		}
	}
	return ActivitySlotDefinition{}, false
}
