package health

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/workgen-server/internal/model"
)

// Dependency is a named backend the service cannot work without.
type Dependency struct {
	Name   string
	Pinger model.Pinger
}

// Dependencies pings every dependency in order and joins the failures.
type Dependencies []Dependency

var _ model.Pinger = Dependencies(nil)

func (d Dependencies) Ping(ctx context.Context) error {
	var errs []error
	for _, dep := range d {
		if err := dep.Pinger.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dep.Name, err))
		}
	}
	return errors.Join(errs...)
}
