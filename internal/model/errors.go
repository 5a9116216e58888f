package model

import "errors"

// Store-level sentinel errors. Repositories translate driver errors into these.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnavailable   = errors.New("store unavailable")
)
