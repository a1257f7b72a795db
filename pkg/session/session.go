package session

import (
	"context"
	"errors"
	"time"
)

type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
}

// ErrNoSession is the normal outcome for a token that was never issued,
// was revoked, or is malformed. It is not a storage fault.
var ErrNoSession = errors.New("session not found")

type Repository interface {
	Create(userID string) (string, error)
	Resolve(token string) (string, error)
	Revoke(token string) error
}

type contextKey string

const userIDContextKey contextKey = "userID"

// ContextWithUserID attaches the identity resolved by the middleware.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
