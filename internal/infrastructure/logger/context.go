package logger

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stamps the request ID onto the context so the query logger
// can correlate SQL with the HTTP request that issued it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request ID stamped on the context, or "" when
// the context did not pass through the request-ID middleware.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
