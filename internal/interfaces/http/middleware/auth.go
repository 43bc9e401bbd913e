package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fieldesk/internal/application/session"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

// ContextKeySession is the gin context key holding the resolved session.
const ContextKeySession = "session"

type AuthMiddleware struct {
	resolver *session.Resolver
	logger   logger.Interface
}

func NewAuthMiddleware(resolver *session.Resolver, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   log,
	}
}

func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		s, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			m.logger.Warnw("failed to resolve session", "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeySession, *s)
		c.Set("profile_id", s.ProfileID)
		c.Set("session_id", s.SessionID)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	// Cookie fallback for browser clients.
	token, err := c.Cookie("access_token")
	if err != nil {
		return ""
	}
	return token
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ContextKeySession)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}
