// Package identity resolves the user behind a request.
package identity

import (
	"context"

	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/port"
)

type tokenKey struct{}

// WithToken stores a raw bearer token in ctx for providers that read it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

type anonymous struct{}

// Anonymous never resolves a user.
func Anonymous() port.IdentityProvider {
	return anonymous{}
}

func (anonymous) CurrentUser(context.Context) (*domain.User, error) {
	return nil, nil
}

// Func adapts a plain function to port.IdentityProvider.
type Func func(ctx context.Context) (*domain.User, error)

func (f Func) CurrentUser(ctx context.Context) (*domain.User, error) {
	return f(ctx)
}

// Static always resolves to u.
func Static(u domain.User) port.IdentityProvider {
	return Func(func(context.Context) (*domain.User, error) {
		return &u, nil
	})
}
