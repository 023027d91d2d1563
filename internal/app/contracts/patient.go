package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/dto/requests"
)

type PatientAPIClient interface {
	FindPatientByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID int64) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID int64, request *requests.UpsertPatient) (*models.Patient, error)
	PatchPatient(ctx context.Context, patientID int64, request *requests.PatientPatch) (*models.Patient, error)
	AddPoints(ctx context.Context, patientID int64, points int) (*models.Patient, error)
}
