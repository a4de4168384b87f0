package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// SetTraceID attaches a freshly generated trace ID to the context. Error
// responses echo the ID back to the client so a support report can be
// correlated with the request's log lines.
func SetTraceID(ctx context.Context) context.Context {
	return WithTraceID(ctx, newTraceID())
}

// WithTraceID returns a context carrying the given trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// GetTraceID returns the trace ID stored in the context, or an empty string
// when none was set.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// newTraceID returns 24 hex characters of randomness. Should the system
// entropy source fail, the ID degrades to a timestamp, which still
// separates requests well enough for log correlation.
func newTraceID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
