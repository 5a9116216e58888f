package service

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtroode/workgen-server/internal/apierror"
	"github.com/dtroode/workgen-server/internal/model"
)

var tracer = otel.Tracer("github.com/dtroode/workgen-server/internal/service")

// storeError wraps a store failure. Unreachable stores become unavailable API errors,
// everything else stays internal.
func storeError(action string, err error) error {
	wrapped := fmt.Errorf("failed to %s: %w", action, err)
	if errors.Is(err, model.ErrUnavailable) {
		return apierror.NewErrStoreUnavailable(wrapped)
	}
	return wrapped
}

func recordError(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
