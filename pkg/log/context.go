package log

import "context"

type traceIDKey struct{}

// WithTraceID returns a copy of ctx carrying id; every log line written with
// that context gets a trace_id field.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceID returns the trace id stored in ctx, or "".
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
