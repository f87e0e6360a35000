package logger

import "context"

type contextKey string

// RequestIDKey is the context key the HTTP layer stamps so SQL logging
// can correlate queries with their request.
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a context carrying the request ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID returns the request ID from the context, or ""
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
