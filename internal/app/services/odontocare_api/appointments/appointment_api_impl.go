package appointments

import (
	"context"
	"fmt"
	"net/url"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type appointmentAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAppointmentAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AppointmentAPIClient {
	return &appointmentAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *appointmentAPIClient) FindAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []models.Appointment
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.EndpointAppointments,
		Resource: constvars.ResourceAppointment,
	}, &appointments)
	if err != nil {
		c.Log.Error("appointmentAPIClient.FindAllAppointments error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.FindAllAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentAPIClient) FindAppointmentByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointAppointmentByID, appointmentID),
		Resource: constvars.ResourceAppointment,
	}, appointment)
	if err != nil {
		c.Log.Error("appointmentAPIClient.FindAppointmentByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.FindAppointmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

// FindAppointmentsByPatientID keeps the order the backend returned.
func (c *appointmentAPIClient) FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.FindAppointmentsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	var appointments []models.Appointment
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointAppointmentsByPatient, patientID),
		Resource: constvars.ResourceAppointment,
	}, &appointments)
	if err != nil {
		c.Log.Error("appointmentAPIClient.FindAppointmentsByPatientID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.FindAppointmentsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentAPIClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
	)

	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.EndpointAppointments,
		Resource: constvars.ResourceAppointment,
		Body:     request,
	}, appointment)
	if err != nil {
		c.Log.Error("appointmentAPIClient.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentAPIClient) UpdateAppointment(ctx context.Context, appointmentID int64, request *models.Appointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.EndpointAppointmentByID, appointmentID),
		Resource: constvars.ResourceAppointment,
		Body:     request,
	}, appointment)
	if err != nil {
		c.Log.Error("appointmentAPIClient.UpdateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentAPIClient) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	appointment := new(models.Appointment)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointAppointmentUpdateState, appointmentID, url.PathEscape(status)),
		Resource: constvars.ResourceAppointment,
	}, appointment)
	if err != nil {
		c.Log.Error("appointmentAPIClient.UpdateAppointmentStatus error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentAPIClient.UpdateAppointmentStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, appointment.Status),
	)
	return appointment, nil
}

func (c *appointmentAPIClient) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentAPIClient.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodDelete,
		Path:     fmt.Sprintf(constvars.EndpointAppointmentByID, appointmentID),
		Resource: constvars.ResourceAppointment,
	}, nil)
	if err != nil {
		c.Log.Error("appointmentAPIClient.DeleteAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("appointmentAPIClient.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}
