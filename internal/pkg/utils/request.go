package utils

import (
	"context"
	"odontocare-client/internal/pkg/constvars"

	"github.com/google/uuid"
)

// NewRequestContext tags ctx with a fresh request id, used in every log line
// written while serving one CLI command.
func NewRequestContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, uuid.NewString())
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
