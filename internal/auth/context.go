package auth

import (
	"context"

	"github.com/dukerupert/techarena/internal/model"
)

type contextKey struct{}

// AuthContext is the signed-in user attached to a request.
type AuthContext struct {
	User      model.User
	SessionID int64
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

// User returns the signed-in user, or the zero User when none is attached.
func User(ctx context.Context) model.User {
	ac, _ := FromContext(ctx)
	return ac.User
}

func UserID(ctx context.Context) string {
	return User(ctx).ID
}

func IsAdmin(ctx context.Context) bool {
	return User(ctx).IsAdmin()
}
