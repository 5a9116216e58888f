// Package bolt is an embedded document store backed by bbolt.
// Documents are encoded with CBOR; each aggregate is written in one transaction.
package bolt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"

	"github.com/dtroode/workgen-server/internal/model"
)

var (
	bucketUsers            = []byte("users")
	bucketUsersByUsername  = []byte("users_by_username")
	bucketQuizzes          = []byte("quizzes")
	bucketQuizzesByCreator = []byte("quizzes_by_creator")
)

type Connection struct {
	*bbolt.DB
	enc cbor.EncMode
	dec cbor.DecMode
}

// Open opens or creates the database file at path and creates all buckets.
func Open(path string) (*Connection, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketUsers, bucketUsersByUsername, bucketQuizzes, bucketQuizzesByCreator} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create cbor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create cbor decoder: %w", err)
	}

	return &Connection{DB: db, enc: enc, dec: dec}, nil
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Ping fails once the database has been closed.
func (c *Connection) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.DB == nil {
		return fmt.Errorf("connection is nil")
	}
	if err := c.DB.View(func(*bbolt.Tx) error { return nil }); err != nil {
		return fmt.Errorf("%w: %w", model.ErrUnavailable, err)
	}
	return nil
}

func (c *Connection) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapError(c.DB.View(fn))
}

func (c *Connection) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return mapError(c.DB.Update(fn))
}

func mapError(err error) error {
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) || errors.Is(err, bbolt.ErrTimeout) {
		return fmt.Errorf("%w: %w", model.ErrUnavailable, err)
	}
	return err
}
