// Package constants defines shared constant values.
package constants

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyActorSID  = "actor_sid"
	ContextKeyUserRole  = "user_role"
	ContextKeyEntityID  = "entity_id"
	ContextKeySessionID = "session_id"
)

// Environment names.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Table names.
const (
	TableEntities        = "entities"
	TableEntityProfiles  = "entity_profiles"
	TablePlans           = "plans"
	TableContracts       = "contracts"
	TablePayments        = "payments"
	TableEvaluations     = "evaluations"
	TableAccounts        = "accounts"
)

// DefaultCurrency is used when a plan does not specify one.
const DefaultCurrency = "BRL"
