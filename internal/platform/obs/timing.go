// Package obs carries request-scoped observability helpers: request id
// propagation and per-operation timing.
package obs

import (
	"context"
	"time"

	"route-optimizer-service/internal/logger"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID tags the context with an id for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the id set by WithRequestID, or "" when absent.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of a named operation when the returned func
// runs. Usage:
//
//	defer obs.Time(ctx, "ors.geocode")(&err)
//
// Successful operations log at debug, failed ones at error with the
// error attached.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.L().Error("operation failed",
				"req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		logger.L().Debug("operation complete",
			"req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
