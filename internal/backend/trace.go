package backend

import "context"

// TraceHeader carries the dashboard request's trace id to the back-office
// service so both sides log the same id.
const TraceHeader = "X-Trace-ID"

type traceIDKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the id stored by WithTraceID, or "".
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}
