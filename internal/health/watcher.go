// Package health keeps the gRPC health status in line with dependency reachability.
package health

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/workgen-server/internal/logger"
	"github.com/dtroode/workgen-server/internal/model"
)

// StatusSetter is implemented by *health.Server from google.golang.org/grpc/health.
type StatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// Watcher pings its dependencies on an interval and publishes the result.
type Watcher struct {
	pinger   model.Pinger
	status   StatusSetter
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

func NewWatcher(pinger model.Pinger, status StatusSetter, interval time.Duration, logger *logger.Logger) *Watcher {
	return &Watcher{
		pinger:   pinger,
		status:   status,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
}

// Run checks once immediately and then on every tick until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	serving := w.check(ctx, true)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			serving = w.check(ctx, serving)
		}
	}
}

func (w *Watcher) check(ctx context.Context, wasServing bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	err := w.pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return wasServing
	}

	serving := err == nil
	if serving {
		w.status.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	} else {
		w.status.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}

	switch {
	case !serving && wasServing:
		w.logger.Error("Health watcher: dependency is unreachable",
			"error", err.Error())
	case serving && !wasServing:
		w.logger.Info("Health watcher: dependencies are reachable again")
	}

	return serving
}
