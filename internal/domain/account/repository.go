package account

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, accountID uint) (*Account, error)
	GetBySID(ctx context.Context, sid string) (*Account, error)
	GetByLoginTaxID(ctx context.Context, loginTaxID string) (*Account, error)
}
