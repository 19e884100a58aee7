package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikolayk812/merchhub/internal/domain"
	"go.uber.org/zap"
)

const anonRole = "anon"

// Claims mirrors the access tokens issued by the auth service.
type Claims struct {
	Email        string       `json:"email,omitempty"`
	Role         string       `json:"role,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

type UserMetadata struct {
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Picture   string `json:"picture,omitempty"`
}

type JWT struct {
	secret []byte
	parser *jwt.Parser
	logger *zap.Logger
}

func NewJWT(secret []byte, logger *zap.Logger) (*JWT, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret is empty")
	}

	return &JWT{
		secret: secret,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
		logger: logger,
	}, nil
}

// CurrentUser verifies the token in ctx. Missing, invalid or expired tokens
// and anon-role tokens all resolve to an anonymous caller.
func (p *JWT) CurrentUser(ctx context.Context) (*domain.User, error) {
	token := TokenFromContext(ctx)
	if token == "" {
		return nil, nil
	}

	var claims Claims
	_, err := p.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Debug("access token expired")
		} else {
			p.logger.Info("access token rejected", zap.Error(err))
		}
		return nil, nil
	}

	if claims.Subject == "" || claims.Role == anonRole {
		return nil, nil
	}

	return &domain.User{
		ID:        claims.Subject,
		Email:     claims.Email,
		FullName:  claims.UserMetadata.FullName,
		AvatarURL: claims.UserMetadata.AvatarURL,
		Picture:   claims.UserMetadata.Picture,
	}, nil
}

// Sign issues an HS256 token for claims. Used by tooling and tests.
func (p *JWT) Sign(claims Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}
	return signed, nil
}
