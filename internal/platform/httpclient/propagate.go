package httpclient

import (
	"context"
	"net/http"
)

// Outbound header names.
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderCorrelationID  = "X-Correlation-ID"
	HeaderIdempotencyKey = "Idempotency-Key"
)

// ctxKey is the context key for a value copied into an outbound header. The
// key's value is the header name.
type ctxKey string

// propagated lists the context values sent on every directory call, in the
// order they are applied.
var propagated = []ctxKey{HeaderRequestID, HeaderCorrelationID, HeaderIdempotencyKey}

// WithRequestID stores the inbound request id for outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey(HeaderRequestID), id)
}

// WithCorrelationID stores the correlation id for outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey(HeaderCorrelationID), id)
}

// WithIdempotencyKey marks the call as safe to replay. The directory uses the
// key to drop duplicate creates, and the same key is sent on every attempt.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxKey(HeaderIdempotencyKey), key)
}

// IdempotencyKey returns the key set by WithIdempotencyKey, or "".
func IdempotencyKey(ctx context.Context) string {
	return lookup(ctx, HeaderIdempotencyKey)
}

func lookup(ctx context.Context, header ctxKey) string {
	v, _ := ctx.Value(header).(string)
	return v
}

// injectHeaders copies every non-empty propagated value onto req.
func injectHeaders(ctx context.Context, req *http.Request) {
	for _, h := range propagated {
		if v := lookup(ctx, h); v != "" {
			req.Header.Set(string(h), v)
		}
	}
}
