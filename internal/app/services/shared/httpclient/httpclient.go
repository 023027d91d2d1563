package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client sends JSON requests to the OdontoCare backend. Every request gets
// the bearer token, taken from the context when WithBearerToken was used and
// from session storage otherwise.
type Client struct {
	BaseUrl  string
	HTTP     *http.Client
	Storage  contracts.SessionStorage
	TokenKey string
	Log      *zap.Logger
}

// Request describes one backend call. Resource names the entity in error
// messages; Body is encoded as JSON when non-nil.
type Request struct {
	Method   string
	Path     string
	Resource string
	Body     interface{}
}

// ResponseError is a non-2xx answer from the backend.
type ResponseError struct {
	StatusCode int
	Body       responses.APIError
	Raw        string
}

func (e *ResponseError) Error() string {
	switch {
	case e.Body.Message != "":
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body.Message)
	case e.Body.Error != "":
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body.Error)
	case e.Raw != "":
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Raw)
	default:
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
}

// BackendMessage returns the message the backend attached to a failed
// response, when there is one.
func BackendMessage(err error) (string, bool) {
	var responseErr *ResponseError
	if !errors.As(err, &responseErr) {
		return "", false
	}
	switch {
	case responseErr.Body.Message != "":
		return responseErr.Body.Message, true
	case responseErr.Raw != "":
		return responseErr.Raw, true
	default:
		return "", false
	}
}

func NewClient(baseUrl string, storage contracts.SessionStorage, tokenKey string, logger *zap.Logger) *Client {
	return &Client{
		BaseUrl:  strings.TrimRight(baseUrl, "/"),
		HTTP:     &http.Client{},
		Storage:  storage,
		TokenKey: tokenKey,
		Log:      logger,
	}
}

// WithBearerToken makes requests sent with ctx use token instead of the stored
// one. Login uses it to fetch the patient profile before anything is persisted.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_BEARER_TOKEN_KEY, token)
}

// Do performs request and decodes a successful body into out. A nil out or an
// empty body skips decoding.
func (c *Client) Do(ctx context.Context, request Request, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var body io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, c.BaseUrl+request.Path, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderUserAgent, constvars.ClientUserAgent)
	if request.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	c.Log.Debug("httpclient.Do sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingEndpointKey, request.Path),
	)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("httpclient.Do received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, request.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return wrapResponseError(request, newResponseError(resp.StatusCode, bodyBytes))
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}
	return nil
}

func (c *Client) bearerToken(ctx context.Context) (string, error) {
	if token, ok := ctx.Value(constvars.CONTEXT_BEARER_TOKEN_KEY).(string); ok && token != "" {
		return token, nil
	}
	if c.Storage == nil {
		return "", nil
	}

	token, found, err := c.Storage.GetItem(ctx, c.TokenKey)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return token, nil
}

func newResponseError(statusCode int, bodyBytes []byte) *ResponseError {
	responseErr := &ResponseError{StatusCode: statusCode}

	var apiError responses.APIError
	if err := json.Unmarshal(bodyBytes, &apiError); err == nil {
		responseErr.Body = apiError
		return responseErr
	}
	responseErr.Raw = strings.TrimSpace(string(bodyBytes))
	return responseErr
}

func wrapResponseError(request Request, responseErr *ResponseError) error {
	switch request.Method {
	case constvars.MethodPost:
		return exceptions.ErrCreateResource(responseErr, responseErr.StatusCode, request.Resource)
	case constvars.MethodPut, constvars.MethodPatch:
		return exceptions.ErrUpdateResource(responseErr, responseErr.StatusCode, request.Resource)
	case constvars.MethodDelete:
		return exceptions.ErrDeleteResource(responseErr, responseErr.StatusCode, request.Resource)
	default:
		return exceptions.ErrGetResource(responseErr, responseErr.StatusCode, request.Resource)
	}
}
