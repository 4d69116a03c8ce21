package utils

import (
	"context"
	"medora-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetClientID(ctx context.Context) string {
	if clientID, ok := ctx.Value(constvars.CONTEXT_CLIENT_ID_KEY).(string); ok {
		return clientID
	}
	return ""
}

func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_CLIENT_ID_KEY, clientID)
}

// RequestFields returns the correlation fields every portal log line carries.
func RequestFields(ctx context.Context) []zap.Field {
	return []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingClientIDKey, GetClientID(ctx)),
	}
}
