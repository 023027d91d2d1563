package activities

import (
	"context"
	"fmt"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type activityAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewActivityAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.ActivityAPIClient {
	return &activityAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *activityAPIClient) FindActivitiesByPatientID(ctx context.Context, patientID int64) ([]models.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("activityAPIClient.FindActivitiesByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	var activities []models.Activity
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointActivitiesByPatient, patientID),
		Resource: constvars.ResourceActivity,
	}, &activities)
	if err != nil {
		c.Log.Error("activityAPIClient.FindActivitiesByPatientID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("activityAPIClient.FindActivitiesByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingActivityCountKey, len(activities)),
	)
	return activities, nil
}

func (c *activityAPIClient) FindActivitiesByPatientIDAndDate(ctx context.Context, patientID int64, date string) ([]models.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("activityAPIClient.FindActivitiesByPatientIDAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDateKey, date),
	)

	var activities []models.Activity
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointActivitiesByPatientDate, patientID, date),
		Resource: constvars.ResourceActivity,
	}, &activities)
	if err != nil {
		c.Log.Error("activityAPIClient.FindActivitiesByPatientIDAndDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("activityAPIClient.FindActivitiesByPatientIDAndDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingActivityCountKey, len(activities)),
	)
	return activities, nil
}

func (c *activityAPIClient) MarkActivityAsCompleted(ctx context.Context, activityID int64) (*models.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("activityAPIClient.MarkActivityAsCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingActivityIDKey, activityID),
	)

	activity := new(models.Activity)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointActivityMarkAsCompleted, activityID),
		Resource: constvars.ResourceActivity,
	}, activity)
	if err != nil {
		c.Log.Error("activityAPIClient.MarkActivityAsCompleted error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("activityAPIClient.MarkActivityAsCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingActivityIDKey, activityID),
	)
	return activity, nil
}

func (c *activityAPIClient) CreateActivity(ctx context.Context, request *requests.CreateActivity) (*models.Activity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("activityAPIClient.CreateActivity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int(constvars.LoggingPointsKey, request.Points),
	)

	activity := new(models.Activity)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.EndpointActivities,
		Resource: constvars.ResourceActivity,
		Body:     request,
	}, activity)
	if err != nil {
		c.Log.Error("activityAPIClient.CreateActivity error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("activityAPIClient.CreateActivity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingActivityIDKey, activity.ID),
	)
	return activity, nil
}
