// Package cache holds redis-backed read-through caches.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pactum/internal/domain/plan"
	vo "pactum/internal/domain/plan/valueobjects"
)

const (
	planKeyPrefix     = "pactum:plan:"
	planActiveListKey = "pactum:plans:active"
	planTTL           = 10 * time.Minute
)

// RedisPlanCache caches catalog reads. Entries are short-lived; writes to the
// catalog invalidate eagerly so the TTL is only a safety net.
type RedisPlanCache struct {
	client *redis.Client
}

func NewRedisPlanCache(client *redis.Client) *RedisPlanCache {
	return &RedisPlanCache{client: client}
}

// cachedPlan is the serialized form. The domain aggregate has private fields,
// so the cache round-trips through the reconstruct params.
type cachedPlan struct {
	ID           uint              `json:"id"`
	SID          string            `json:"sid"`
	Name         string            `json:"name"`
	PriceInCents int64             `json:"price_in_cents"`
	Currency     string            `json:"currency"`
	Cycle        string            `json:"cycle"`
	Active       bool              `json:"active"`
	Revision     int               `json:"revision"`
	SupersededBy *uint             `json:"superseded_by,omitempty"`
	Features     map[string]string `json:"features,omitempty"`
	Version      int               `json:"version"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toCached(p *plan.Plan) cachedPlan {
	return cachedPlan{
		ID:           p.ID(),
		SID:          p.SID(),
		Name:         p.Name(),
		PriceInCents: p.PriceInCents(),
		Currency:     p.Currency(),
		Cycle:        p.Cycle().String(),
		Active:       p.IsActive(),
		Revision:     p.Revision(),
		SupersededBy: p.SupersededBy(),
		Features:     p.Features(),
		Version:      p.Version(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func (c cachedPlan) toDomain() *plan.Plan {
	return plan.Reconstruct(plan.ReconstructParams{
		ID:           c.ID,
		SID:          c.SID,
		Name:         c.Name,
		PriceInCents: c.PriceInCents,
		Currency:     c.Currency,
		Cycle:        vo.BillingCycle(c.Cycle),
		Active:       c.Active,
		Revision:     c.Revision,
		SupersededBy: c.SupersededBy,
		Features:     c.Features,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	})
}

func (c *RedisPlanCache) GetPlan(ctx context.Context, sid string) (*plan.Plan, error) {
	raw, err := c.client.Get(ctx, planKeyPrefix+sid).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan cache get failed: %w", err)
	}

	var cached cachedPlan
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("plan cache decode failed: %w", err)
	}
	return cached.toDomain(), nil
}

func (c *RedisPlanCache) SetPlan(ctx context.Context, p *plan.Plan) error {
	raw, err := json.Marshal(toCached(p))
	if err != nil {
		return fmt.Errorf("plan cache encode failed: %w", err)
	}
	if err := c.client.Set(ctx, planKeyPrefix+p.SID(), raw, planTTL).Err(); err != nil {
		return fmt.Errorf("plan cache set failed: %w", err)
	}
	return nil
}

func (c *RedisPlanCache) GetActiveList(ctx context.Context) ([]*plan.Plan, error) {
	raw, err := c.client.Get(ctx, planActiveListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("plan list cache get failed: %w", err)
	}

	var cachedList []cachedPlan
	if err := json.Unmarshal(raw, &cachedList); err != nil {
		return nil, fmt.Errorf("plan list cache decode failed: %w", err)
	}

	plans := make([]*plan.Plan, 0, len(cachedList))
	for _, cp := range cachedList {
		plans = append(plans, cp.toDomain())
	}
	return plans, nil
}

func (c *RedisPlanCache) SetActiveList(ctx context.Context, plans []*plan.Plan) error {
	cachedList := make([]cachedPlan, 0, len(plans))
	for _, p := range plans {
		cachedList = append(cachedList, toCached(p))
	}

	raw, err := json.Marshal(cachedList)
	if err != nil {
		return fmt.Errorf("plan list cache encode failed: %w", err)
	}
	if err := c.client.Set(ctx, planActiveListKey, raw, planTTL).Err(); err != nil {
		return fmt.Errorf("plan list cache set failed: %w", err)
	}
	return nil
}

func (c *RedisPlanCache) InvalidatePlan(ctx context.Context, sid string) error {
	if err := c.client.Del(ctx, planKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("plan cache invalidation failed: %w", err)
	}
	return nil
}

func (c *RedisPlanCache) InvalidateActiveList(ctx context.Context) error {
	if err := c.client.Del(ctx, planActiveListKey).Err(); err != nil {
		return fmt.Errorf("plan list cache invalidation failed: %w", err)
	}
	return nil
}
