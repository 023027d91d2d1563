package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/dto/requests"
)

type ActivityAPIClient interface {
	FindActivitiesByPatientID(ctx context.Context, patientID int64) ([]models.Activity, error)
	// FindActivitiesByPatientIDAndDate lists one day's records; date is YYYY-MM-DD.
	FindActivitiesByPatientIDAndDate(ctx context.Context, patientID int64, date string) ([]models.Activity, error)
	MarkActivityAsCompleted(ctx context.Context, activityID int64) (*models.Activity, error)
	CreateActivity(ctx context.Context, request *requests.CreateActivity) (*models.Activity, error)
}
