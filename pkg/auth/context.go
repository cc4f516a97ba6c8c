package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const operatorIDKey contextKey = "operator_id"

// ErrOperatorNotFound is returned when no operator ID exists in the request context.
var ErrOperatorNotFound = errors.New("operator_id not found in context")

// OperatorIDFromCtx returns the authenticated back-office operator.
// Returns uuid.Nil and ErrOperatorNotFound for unauthenticated requests.
func OperatorIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(operatorIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrOperatorNotFound
	}
	return id, nil
}

// WithOperatorID returns a new context with the given operator attached.
func WithOperatorID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}
