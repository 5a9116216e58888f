package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/dtroode/workgen-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userDoc struct {
	ID           uuid.UUID `cbor:"1,keyasint"`
	Username     string    `cbor:"2,keyasint"`
	PasswordHash []byte    `cbor:"3,keyasint"`
	CreatedAt    time.Time `cbor:"4,keyasint"`
}

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{db: db}
}

// Create checks the username index and writes the user in the same write
// transaction, so two concurrent registrations cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	doc := userDoc{
		ID:           uuid.New(),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	err := r.db.update(ctx, func(tx *bbolt.Tx) error {
		index := tx.Bucket(bucketUsersByUsername)
		if index.Get([]byte(doc.Username)) != nil {
			return fmt.Errorf("%w: username %q", model.ErrAlreadyExists, doc.Username)
		}

		data, err := r.db.enc.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal user: %w", err)
		}
		if err := tx.Bucket(bucketUsers).Put(doc.ID[:], data); err != nil {
			return err
		}
		return index.Put([]byte(doc.Username), doc.ID[:])
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to put user: %w", err)
	}

	return doc.toModel(), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var doc userDoc
	err := r.db.view(ctx, func(tx *bbolt.Tx) error {
		id := tx.Bucket(bucketUsersByUsername).Get([]byte(username))
		if id == nil {
			return model.ErrNotFound
		}
		data := tx.Bucket(bucketUsers).Get(id)
		if data == nil {
			return model.ErrNotFound
		}
		if err := r.db.dec.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("unmarshal user: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return doc.toModel(), nil
}

func (d userDoc) toModel() model.User {
	return model.User{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}
