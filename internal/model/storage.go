package model

import (
	"context"
	"io"
)

// Storage is an object storage used for quiz archives.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
}

// Pinger reports whether a store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
