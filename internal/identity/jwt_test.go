package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/merchhub/internal/domain"
	"github.com/nikolayk812/merchhub/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJWT_CurrentUser(t *testing.T) {
	secret := []byte(gofakeit.Password(true, true, true, false, false, 32))

	provider, err := identity.NewJWT(secret, zap.NewNop())
	require.NoError(t, err)

	other, err := identity.NewJWT([]byte("some-other-secret"), zap.NewNop())
	require.NoError(t, err)

	userID := gofakeit.UUID()
	email := gofakeit.Email()

	valid := identity.Claims{
		Email: email,
		Role:  "authenticated",
		UserMetadata: identity.UserMetadata{
			FullName:  "Juan Dela Cruz",
			AvatarURL: "https://lh3.example.com/a.png",
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	anon := valid
	anon.Role = "anon"

	noSubject := valid
	noSubject.Subject = ""

	tests := []struct {
		name     string
		signer   *identity.JWT
		claims   *identity.Claims
		rawToken string
		wantUser *domain.User
	}{
		{
			name:   "valid token: user",
			signer: provider,
			claims: &valid,
			wantUser: &domain.User{
				ID:        userID,
				Email:     email,
				FullName:  "Juan Dela Cruz",
				AvatarURL: "https://lh3.example.com/a.png",
			},
		},
		{name: "no token: anonymous"},
		{name: "garbage token: anonymous", rawToken: "not.a.token"},
		{name: "expired token: anonymous", signer: provider, claims: &expired},
		{name: "wrong secret: anonymous", signer: other, claims: &valid},
		{name: "anon role: anonymous", signer: provider, claims: &anon},
		{name: "no subject: anonymous", signer: provider, claims: &noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			token := tt.rawToken
			if tt.claims != nil {
				token, err = tt.signer.Sign(*tt.claims)
				require.NoError(t, err)
			}
			if token != "" {
				ctx = identity.WithToken(ctx, token)
			}

			user, err := provider.CurrentUser(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user)
		})
	}
}

func TestNewJWT_EmptySecret(t *testing.T) {
	_, err := identity.NewJWT(nil, zap.NewNop())
	require.EqualError(t, err, "secret is empty")
}

func TestStaticAndAnonymous(t *testing.T) {
	ctx := context.Background()

	user, err := identity.Anonymous().CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	want := domain.User{ID: gofakeit.UUID(), Email: gofakeit.Email()}
	user, err = identity.Static(want).CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, want, *user)
}

func TestTokenFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, identity.TokenFromContext(ctx))
	assert.Equal(t, "abc", identity.TokenFromContext(identity.WithToken(ctx, "abc")))
}
