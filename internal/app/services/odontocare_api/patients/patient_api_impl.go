package patients

import (
	"context"
	"fmt"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewPatientAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.PatientAPIClient {
	return &patientAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *patientAPIClient) FindPatientByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientAPIClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(models.Patient)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointPatientByID, patientID),
		Resource: constvars.ResourcePatient,
	}, patient)
	if err != nil {
		c.Log.Error("patientAPIClient.FindPatientByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientAPIClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

// FindPatientByUserID treats both a 404 and an empty answer as a missing
// profile, which for a patient account is a failure.
func (c *patientAPIClient) FindPatientByUserID(ctx context.Context, userID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientAPIClient.FindPatientByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	patient := new(models.Patient)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf(constvars.EndpointPatientByUserID, userID),
		Resource: constvars.ResourcePatient,
	}, patient)
	if err != nil {
		c.Log.Error("patientAPIClient.FindPatientByUserID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.StatusCode(err) == constvars.StatusNotFound {
			return nil, exceptions.ErrPatientProfileMissing(err, userID)
		}
		return nil, err
	}

	if patient.ID == 0 {
		c.Log.Error("patientAPIClient.FindPatientByUserID empty response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
		)
		return nil, exceptions.ErrPatientProfileMissing(nil, userID)
	}

	c.Log.Info("patientAPIClient.FindPatientByUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientAPIClient) UpdatePatient(ctx context.Context, patientID int64, request *requests.UpsertPatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientAPIClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(models.Patient)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf(constvars.EndpointPatientByID, patientID),
		Resource: constvars.ResourcePatient,
		Body:     request,
	}, patient)
	if err != nil {
		c.Log.Error("patientAPIClient.UpdatePatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientAPIClient.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientAPIClient) PatchPatient(ctx context.Context, patientID int64, request *requests.PatientPatch) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientAPIClient.PatchPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient := new(models.Patient)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointPatientByID, patientID),
		Resource: constvars.ResourcePatient,
		Body:     request,
	}, patient)
	if err != nil {
		c.Log.Error("patientAPIClient.PatchPatient error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientAPIClient.PatchPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return patient, nil
}

func (c *patientAPIClient) AddPoints(ctx context.Context, patientID int64, points int) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientAPIClient.AddPoints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingPointsKey, points),
	)

	patient := new(models.Patient)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPatch,
		Path:     fmt.Sprintf(constvars.EndpointPatientAddPoints, patientID, points),
		Resource: constvars.ResourcePatient,
	}, patient)
	if err != nil {
		c.Log.Error("patientAPIClient.AddPoints error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("patientAPIClient.AddPoints succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingPointsKey, patient.Points),
	)
	return patient, nil
}
