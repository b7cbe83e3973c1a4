package authn

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey string

const contextKeyUser contextKey = "authnUser"

var ErrNoUser = errors.New("no user in context")

func ContextUser(ctx context.Context) (User, error) {
	user, ok := ctx.Value(contextKeyUser).(User)
	if !ok {
		return nil, errors.WithStack(ErrNoUser)
	}

	return user, nil
}

// WithContextUser replaces the authenticated user of the context, for example
// by its stored counterpart.
func WithContextUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}
