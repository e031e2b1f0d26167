package entity

import "context"

type EntityRepository interface {
	// Create persists a new entity. The storage layer enforces tax identifier
	// uniqueness; a duplicate surfaces as a conflict.
	Create(ctx context.Context, entity *Entity) error
	Update(ctx context.Context, entity *Entity) error
	GetByID(ctx context.Context, entityID uint) (*Entity, error)
	GetBySID(ctx context.Context, sid string) (*Entity, error)
	GetByTaxID(ctx context.Context, taxID string) (*Entity, error)
	List(ctx context.Context) ([]*Entity, error)
}
