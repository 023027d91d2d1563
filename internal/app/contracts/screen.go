package contracts

import "odontocare-client/internal/app/models"

type Navigator interface {
	Navigate(route string)
}

type Notifier interface {
	Notify(notification models.Notification)
}
