package exceptions

import (
	"errors"
	"fmt"
	"odontocare-client/internal/pkg/constvars"
)

// ErrSessionMissing signals that a gated screen found nobody logged in. It
// triggers a redirect to the login flow and is never shown to the patient.
var ErrSessionMissing = errors.New(constvars.ErrDevSessionMissing)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrLoginFieldsRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientLoginFieldsRequired, constvars.ErrDevInvalidInput)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}

	// Auth
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrPatientProfileMissing = func(err error, userID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf("%s (user %d)", constvars.ErrDevPatientProfileMissing, userID))
	}

	// Session storage
	ErrStorageRead = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageRead, key))
	}
	ErrStorageWrite = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageWrite, key))
	}
	ErrStorageRemove = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStorageRemove, key))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}

	// Backend resources
	ErrCreateResource = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCreateResource, resource))
	}
	ErrGetResource = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevGetResource, resource))
	}
	ErrUpdateResource = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUpdateResource, resource))
	}
	ErrDeleteResource = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, statusCode, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDeleteResource, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResourceResponse, resource))
	}

	// Screens
	ErrClientCustomMessage = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, clientMessage, constvars.ErrDevInvalidInput)
	}
	ErrAppointmentNotFound = func(appointmentID int64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientCancelAppointment, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID))
	}
	ErrAppointmentNotCancellable = func(status string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientAppointmentNotCancellable, fmt.Sprintf(constvars.ErrDevAppointmentNotCancelable, status))
	}
	ErrUnknownActivitySlot = func(slot string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientUpdateActivity, fmt.Sprintf(constvars.ErrDevUnknownActivitySlot, slot))
	}
	ErrUnknownRoute = func(route string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientOpenScreen, fmt.Sprintf(constvars.ErrDevUnknownRoute, route))
	}
)
