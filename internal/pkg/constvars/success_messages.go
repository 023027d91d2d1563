package constvars

const (
	NotificationTitleError   = "Error"
	NotificationTitleSuccess = "Success"
)

const (
	SuccessAppointmentBooked    = "your appointment was booked for %s"
	SuccessAppointmentCancelled = "appointment cancelled"
	SuccessAllAlertsRead        = "all alerts were marked as read"
	SuccessRegistration         = "registration complete, welcome to OdontoCare"
	SuccessProfileUpdated       = "profile updated"
)

const (
	DisplayNotInformed = "not informed"
)
