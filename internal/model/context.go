package model

import "context"

// ContextManager carries the authenticated user id through request contexts.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uint) context.Context
	GetUserIDFromContext(ctx context.Context) (uint, bool)
}
