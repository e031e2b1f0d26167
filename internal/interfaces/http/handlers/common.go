// Package handlers contains the HTTP request handlers. Handlers validate
// input shape, build the actor session from the request context, and hand
// off to application use cases. Business rules live below this layer.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"pactum/internal/domain/contract"
	"pactum/internal/domain/entity"
	"pactum/internal/domain/evaluation"
	"pactum/internal/domain/payment"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/authorization"
	"pactum/internal/shared/constants"
	"pactum/internal/shared/session"
)

// sessionFromContext rebuilds the actor session from the keys the auth
// middleware stored. A request that skipped the middleware yields nil and
// use cases reject it as unauthenticated.
func sessionFromContext(c *gin.Context) *session.Session {
	actorSID := c.GetString(constants.ContextKeyActorSID)
	if actorSID == "" {
		return nil
	}
	return &session.Session{
		ActorSID:  actorSID,
		SessionID: c.GetString(constants.ContextKeySessionID),
		Role:      authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
		EntityID:  c.GetUint(constants.ContextKeyEntityID),
	}
}

type EntityResponse struct {
	SID       string          `json:"sid"`
	TaxID     string          `json:"tax_id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Status    string          `json:"status"`
	Profile   *entity.Profile `json:"profile,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newEntityResponse(e *entity.Entity) *EntityResponse {
	return &EntityResponse{
		SID:       e.SID(),
		TaxID:     e.TaxID(),
		Name:      e.Name(),
		Kind:      e.Kind().String(),
		Status:    e.Status().String(),
		Profile:   e.Profile(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

type PlanResponse struct {
	SID          string            `json:"sid"`
	Name         string            `json:"name"`
	PriceInCents int64             `json:"price_in_cents"`
	Currency     string            `json:"currency"`
	BillingCycle string            `json:"billing_cycle"`
	Active       bool              `json:"active"`
	Revision     int               `json:"revision"`
	Features     map[string]string `json:"features,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func newPlanResponse(p *plan.Plan) *PlanResponse {
	return &PlanResponse{
		SID:          p.SID(),
		Name:         p.Name(),
		PriceInCents: p.PriceInCents(),
		Currency:     p.Currency(),
		BillingCycle: p.Cycle().String(),
		Active:       p.IsActive(),
		Revision:     p.Revision(),
		Features:     p.Features(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func newPlanResponses(plans []*plan.Plan) []*PlanResponse {
	out := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, newPlanResponse(p))
	}
	return out
}

type ContractResponse struct {
	SID             string                `json:"sid"`
	Status          string                `json:"status"`
	SuspendReason   *string               `json:"suspend_reason,omitempty"`
	TerminateReason *string               `json:"terminate_reason,omitempty"`
	ActivatedAt     *time.Time            `json:"activated_at,omitempty"`
	SuspendedAt     *time.Time            `json:"suspended_at,omitempty"`
	TerminatedAt    *time.Time            `json:"terminated_at,omitempty"`
	Annotations     []contract.Annotation `json:"annotations,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

func newContractResponse(ct *contract.Contract) *ContractResponse {
	return &ContractResponse{
		SID:             ct.SID(),
		Status:          ct.Status().String(),
		SuspendReason:   ct.SuspendReason(),
		TerminateReason: ct.TerminateReason(),
		ActivatedAt:     ct.ActivatedAt(),
		SuspendedAt:     ct.SuspendedAt(),
		TerminatedAt:    ct.TerminatedAt(),
		Annotations:     ct.Annotations(),
		CreatedAt:       ct.CreatedAt(),
		UpdatedAt:       ct.UpdatedAt(),
	}
}

type PaymentResponse struct {
	SID            string     `json:"sid"`
	Status         string     `json:"status"`
	AmountInCents  int64      `json:"amount_in_cents"`
	Currency       string     `json:"currency"`
	IdempotencyKey string     `json:"idempotency_key"`
	GatewayRef     *string    `json:"gateway_ref,omitempty"`
	FailureReason  *string    `json:"failure_reason,omitempty"`
	SettledAt      *time.Time `json:"settled_at,omitempty"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func newPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		SID:            p.SID(),
		Status:         p.Status().String(),
		AmountInCents:  p.Amount().AmountInCents(),
		Currency:       p.Amount().Currency(),
		IdempotencyKey: p.IdempotencyKey(),
		GatewayRef:     p.GatewayRef(),
		FailureReason:  p.FailureReason(),
		SettledAt:      p.SettledAt(),
		RefundedAt:     p.RefundedAt(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

type EvaluationResponse struct {
	SID           string     `json:"sid"`
	Score         int        `json:"score"`
	Comment       string     `json:"comment,omitempty"`
	Status        string     `json:"status"`
	InactivatedAt *time.Time `json:"inactivated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newEvaluationResponse(ev *evaluation.Evaluation) *EvaluationResponse {
	return &EvaluationResponse{
		SID:           ev.SID(),
		Score:         ev.Score(),
		Comment:       ev.Comment(),
		Status:        ev.Status(),
		InactivatedAt: ev.InactivatedAt(),
		CreatedAt:     ev.CreatedAt(),
		UpdatedAt:     ev.UpdatedAt(),
	}
}
