package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldesk/internal/infrastructure/permission"
	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
	"fieldesk/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, log logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   log,
	}
}

// RequireMutation gates a write endpoint. Simulated sessions are rejected
// outright; real sessions go through the policy enforcer. The usecases
// repeat both checks so a misrouted endpoint still cannot mutate.
func (m *PermissionMiddleware) RequireMutation(action authorization.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
			c.Abort()
			return
		}

		if s.Simulated() {
			utils.ErrorResponse(c, http.StatusForbidden, "demo sessions are read-only")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(s.Role.String(), action.Resource(), action.Verb())
		if err != nil {
			m.logger.Errorw("permission check failed",
				"error", err, "role", s.Role.String(), "action", string(action))
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"role", s.Role.String(), "action", string(action), "profile_id", s.ProfileID)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole admits only the listed roles. Used for admin surfaces that
// have no single mutation action, like the user listing.
func (m *PermissionMiddleware) RequireRole(roles ...authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := SessionFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "session not established")
			c.Abort()
			return
		}

		for _, role := range roles {
			if s.Role == role {
				c.Next()
				return
			}
		}

		m.logger.Warnw("role check failed", "role", s.Role.String(), "profile_id", s.ProfileID)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient role")
		c.Abort()
	}
}
