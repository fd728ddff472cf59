package requestdata

import (
	"context"

	"github.com/google/uuid"
)

type authUserKey struct{}

// AuthUser is the identity resolved from a verified bearer token. It is
// attached to the request context once by the auth middleware; nothing
// downstream talks to the identity provider again.
type AuthUser struct {
	ID    uuid.UUID
	Email string
}

func WithAuthUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey{}, user)
}

func GetAuthUser(ctx context.Context) *AuthUser {
	if user, ok := ctx.Value(authUserKey{}).(*AuthUser); ok {
		return user
	}
	return nil
}
