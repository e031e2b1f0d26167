// Package permission enforces route-level access with casbin, backed by the
// same database the rest of the system uses.
package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"pactum/internal/shared/logger"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seedDefaultPolicies(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enforcer) Enforce(role, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed",
			"error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// seedDefaultPolicies installs the role hierarchy and the baseline route
// policies on first start. AddPolicy is a no-op for rows that already exist.
func (e *Enforcer) seedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// admin inherits operator, operator inherits entity-self
	groupings := [][]string{
		{"admin", "operator"},
		{"operator", "entity-self"},
	}
	for _, g := range groupings {
		if _, err := e.enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return fmt.Errorf("failed to seed role hierarchy: %w", err)
		}
	}

	policies := [][]string{
		{"entity-self", "/api/entities/:sid", "GET"},
		{"entity-self", "/api/entities/:sid/profile", "PUT"},
		{"entity-self", "/api/plans", "GET"},
		{"entity-self", "/api/plans/:sid", "GET"},
		{"entity-self", "/api/contracts", "POST"},
		{"entity-self", "/api/contracts/:sid", "GET"},
		{"entity-self", "/api/contracts/:sid/activate", "POST"},
		{"entity-self", "/api/payments", "POST"},
		{"entity-self", "/api/payments/:sid", "GET"},
		{"operator", "/api/entities", "POST"},
		{"operator", "/api/entities", "GET"},
		{"operator", "/api/contracts/:sid/suspend", "POST"},
		{"operator", "/api/contracts/:sid/reinstate", "POST"},
		{"operator", "/api/contracts/:sid/terminate", "POST"},
		{"operator", "/api/contracts/:sid/annotations", "POST"},
		{"operator", "/api/payments/:sid/refund", "POST"},
		{"admin", "/api/admin/*", "GET"},
		{"admin", "/api/admin/*", "POST"},
	}
	for _, p := range policies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy: %w", err)
		}
	}

	return e.enforcer.SavePolicy()
}
