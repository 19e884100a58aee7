package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/merchhub/internal/identity"
	"github.com/nikolayk812/merchhub/internal/session"
	"go.uber.org/zap"
)

const (
	SessionCookie = "merchhub_session"

	sessionMaxAge = 30 * 24 * 60 * 60
	sessionIDKey  = "session_id"
)

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// BearerToken hands the Authorization bearer token to identity providers via the request context.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token = strings.TrimSpace(token); ok && token != "" {
			c.Request = c.Request.WithContext(identity.WithToken(c.Request.Context(), token))
		}
		c.Next()
	}
}

// SessionID reads the session cookie, issuing a new one when it is missing or malformed.
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = session.NewID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionIDKey, id)
		c.Next()
	}
}
