package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
)

type AlertAPIClient interface {
	FindAllAlerts(ctx context.Context) ([]models.Alert, error)
	FindAlertsByPatientID(ctx context.Context, patientID int64) ([]models.Alert, error)
	FindUnreadAlertsByPatientID(ctx context.Context, patientID int64) ([]models.Alert, error)
	MarkAlertAsRead(ctx context.Context, alertID int64) (*models.Alert, error)
	MarkAllAlertsAsRead(ctx context.Context, patientID int64) error
}
