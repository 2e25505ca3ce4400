// Package metrics records request counts and latency per huma operation.
package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	appmetrics "travelplanner/internal/metrics"
)

func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		op := "unknown"
		if o := ctx.Operation(); o != nil {
			op = o.OperationID
		}
		appmetrics.HTTPRequestsTotal.WithLabelValues(op, ctx.Method(), strconv.Itoa(ctx.Status())).Inc()
		appmetrics.HTTPRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
