package usecases

import (
	"time"

	"pactum/internal/domain/account"
)

// PasswordVerifier checks a plaintext secret against a stored hash.
type PasswordVerifier interface {
	Verify(hash, plain string) bool
}

// TokenIssuer mints the session token returned by login.
type TokenIssuer interface {
	Issue(a *account.Account) (token string, expiresAt time.Time, err error)
}
