package usecases

import (
	"context"
	"time"

	"pactum/internal/domain/account"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
)

type LoginCommand struct {
	LoginTaxID string
	Password   string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   *account.Account
}

// LoginUseCase exchanges a tax identifier and secret for a session token.
// Unknown account and wrong password are indistinguishable to the caller.
type LoginUseCase struct {
	accountRepo account.AccountRepository
	verifier    PasswordVerifier
	issuer      TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	accountRepo account.AccountRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo: accountRepo,
		verifier:    verifier,
		issuer:      issuer,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.LoginTaxID == "" || cmd.Password == "" {
		return nil, apperrors.NewValidationError("tax identifier and password are required")
	}

	acc, err := uc.accountRepo.GetByLoginTaxID(ctx, cmd.LoginTaxID)
	if err != nil {
		return nil, err
	}
	if acc == nil || !acc.IsActive() || !uc.verifier.Verify(acc.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("login rejected", "login_tax_id", cmd.LoginTaxID)
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.issuer.Issue(acc)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_sid", acc.SID())
		return nil, apperrors.NewInternalError("failed to issue session token")
	}

	acc.RecordLogin()
	if err := uc.accountRepo.Update(ctx, acc); err != nil {
		// Login still succeeds; the timestamp is best effort.
		uc.logger.Warnw("failed to record login time", "error", err, "account_sid", acc.SID())
	}

	uc.logger.Infow("login succeeded", "account_sid", acc.SID(), "role", acc.Role())
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Account: acc}, nil
}
