package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"fieldesk/internal/shared/authorization"
	"fieldesk/internal/shared/logger"
)

// Enforcer wraps casbin with the role policy persisted through the gorm
// adapter. The in-code mutation table stays authoritative; Seed pushes it
// into casbin so the HTTP layer has a second enforcement point.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

// Seed replays the mutation policy table into casbin. Existing rules are
// left in place so the operation is idempotent.
func (e *Enforcer) Seed() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, action := range authorization.AllActions {
		for _, role := range authorization.AllRoles {
			if !authorization.MutationAllowed(role, action) {
				continue
			}
			if _, err := e.enforcer.AddPolicy(role.String(), action.Resource(), action.Verb()); err != nil {
				e.logger.Errorw("failed to add policy",
					"error", err,
					"role", role.String(),
					"resource", action.Resource(),
					"action", action.Verb())
				return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
					role.String(), action.Resource(), action.Verb(), err)
			}
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}

	e.logger.Info("access policy seeded")
	return nil
}

func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded")
	return nil
}
