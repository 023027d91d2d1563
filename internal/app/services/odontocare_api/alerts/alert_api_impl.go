package alerts

import (
	"context"
	"fmt"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

type alertAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAlertAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AlertAPIClient {
	return &alertAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *alertAPIClient) FindAllAlerts(ctx context.Context) ([]models.Alert, error) {
	return c.findAlerts(ctx, "alertAPIClient.FindAllAlerts", constvars.EndpointAlerts, 0)
}

func (c *alertAPIClient) FindAlertsByPatientID(ctx context.Context, patientID int64) ([]models.Alert, error) {
	return c.findAlerts(ctx, "alertAPIClient.FindAlertsByPatientID", fmt.Sprintf(constvars.EndpointAlertsByPatient, patientID), patientID)
}

func (c *alertAPIClient) FindUnreadAlertsByPatientID(ctx context.Context, patientID int64) ([]models.Alert, error) {
	return c.findAlerts(ctx, "alertAPIClient.FindUnreadAlertsByPatientID", fmt.Sprintf(constvars.EndpointAlertsUnreadByPatient, patientID), patientID)
}

func (c *alertAPIClient) findAlerts(ctx context.Context, operation, path string, patientID int64) ([]models.Alert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	var alerts []models.Alert
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     path,
		Resource: constvars.ResourceAlert,
	}, &alerts)
	if err != nil {
		c.Log.Error(operation+" error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAlertCountKey, len(alerts)),
	)
	return alerts, nil
}

func (c *alertAPIClient) MarkAlertAsRead(ctx context.Context, alertID int64) (*models.Alert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.MarkAlertAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAlertIDKey, alertID),
	)

	alert := new(models.Alert)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointAlertMarkAsRead, alertID),
		Resource: constvars.ResourceAlert,
	}, alert)
	if err != nil {
		c.Log.Error("alertAPIClient.MarkAlertAsRead error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("alertAPIClient.MarkAlertAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAlertIDKey, alertID),
	)
	return alert, nil
}

func (c *alertAPIClient) MarkAllAlertsAsRead(ctx context.Context, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("alertAPIClient.MarkAllAlertsAsRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointAlertsMarkAllAsRead, patientID),
		Resource: constvars.ResourceAlert,
	}, nil)
	if err != nil {
		c.Log.Error("alertAPIClient.MarkAllAlertsAsRead error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	c.Log.Info("alertAPIClient.MarkAllAlertsAsRead succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}
