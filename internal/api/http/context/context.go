// Package context carries the authenticated user id through request
// contexts.
package context

import (
	"context"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Manager sets and retrieves the authenticated user id on a request
// context.
type Manager struct{}

// NewManager creates a new context Manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user id.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user id set by SetUserIDToContext.
// The second return value reports whether a valid id was present.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(userIDKey).(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
