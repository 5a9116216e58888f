package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated user ID through a request.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	// GetUserIDFromContext reports false when no user is attached.
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
