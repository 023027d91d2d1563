package models

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
)

// Notification is a message the current screen wants shown to the patient.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
}
