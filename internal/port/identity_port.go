package port

import (
	"context"

	"github.com/nikolayk812/merchhub/internal/domain"
)

// IdentityProvider resolves the caller. A nil user with a nil error means anonymous.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}
