package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/dto/requests"
)

type AppointmentAPIClient interface {
	FindAllAppointments(ctx context.Context) ([]models.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID int64, request *models.Appointment) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}
