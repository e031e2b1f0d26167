package usecases

import (
	"context"
	"fmt"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/domain/contract"
	"pactum/internal/domain/payment"
	vo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type InitiatePaymentCommand struct {
	Session        *session.Session
	ContractSID    string
	AmountInCents  int64
	Currency       string
	IdempotencyKey string
}

type InitiatePaymentResult struct {
	Payment *payment.Payment
	// Reused is true when the idempotency key matched an existing payment and
	// no new record was created.
	Reused bool
}

// InitiatePaymentUseCase creates a payment for a contract and sends the
// charge to the gateway. It is idempotent by idempotency key: a retried call
// returns the existing payment and never fires a second gateway charge.
type InitiatePaymentUseCase struct {
	paymentRepo  payment.PaymentRepository
	contractRepo contract.ContractRepository
	gateway      paymentgateway.PaymentGateway
	logger       logger.Interface
}

func NewInitiatePaymentUseCase(
	paymentRepo payment.PaymentRepository,
	contractRepo contract.ContractRepository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

func (uc *InitiatePaymentUseCase) Execute(ctx context.Context, cmd InitiatePaymentCommand) (*InitiatePaymentResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleEntitySelf); err != nil {
		return nil, err
	}
	if cmd.IdempotencyKey == "" {
		return nil, apperrors.NewValidationError("idempotency key is required")
	}

	ctr, err := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if err := cmd.Session.RequireEntityAccess(ctr.EntityID()); err != nil {
		return nil, err
	}
	if ctr.Status().IsTerminated() {
		return nil, apperrors.NewInvalidStateError("cannot initiate payment for a terminated contract")
	}

	// Idempotent return path: the same key always yields the same payment,
	// in whatever status it has reached.
	existing, err := uc.paymentRepo.GetByIdempotencyKey(ctx, cmd.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.ContractID() != ctr.ID() {
			return nil, apperrors.NewConflictError("idempotency key already used by another contract")
		}
		if existing.Status() == vo.PaymentStatusInitiated && existing.GatewayRef() == nil {
			// The earlier attempt never got a gateway answer. Re-issue the
			// charge with the stored key; the gateway dedupes on it, so the
			// retry drives the stuck payment forward without double-charging.
			return uc.driveCharge(ctx, existing, true)
		}
		return &InitiatePaymentResult{Payment: existing, Reused: true}, nil
	}

	open, err := uc.paymentRepo.GetOpenByContractID(ctx, ctr.ID())
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperrors.NewConflictError("contract already has a payment in progress",
			fmt.Sprintf("payment %s is %s", open.SID(), open.Status()))
	}

	amount := vo.NewMoney(cmd.AmountInCents, cmd.Currency)
	p, err := payment.NewPayment(ctr.ID(), amount, cmd.IdempotencyKey)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment", err.Error())
	}

	if err := uc.paymentRepo.Create(ctx, p); err != nil {
		// Unique constraint on the key is the backstop against a racing
		// duplicate initiation. Loser of the race returns the winner's row.
		if apperrors.IsDuplicateError(err) || apperrors.IsConflictError(err) {
			winner, lookupErr := uc.paymentRepo.GetByIdempotencyKey(ctx, cmd.IdempotencyKey)
			if lookupErr == nil && winner != nil {
				return &InitiatePaymentResult{Payment: winner, Reused: true}, nil
			}
		}
		uc.logger.Errorw("failed to create payment", "error", err, "contract_sid", cmd.ContractSID)
		return nil, err
	}

	return uc.driveCharge(ctx, p, false)
}

// driveCharge sends the charge for p and records the gateway's answer. It
// serves both fresh initiations and retries of payments the gateway never
// answered; reused distinguishes the two in the result.
func (uc *InitiatePaymentUseCase) driveCharge(ctx context.Context, p *payment.Payment, reused bool) (*InitiatePaymentResult, error) {
	amount := p.Amount()
	result, err := uc.gateway.Charge(ctx, amount.AmountInCents(), amount.Currency(), p.IdempotencyKey())
	if err != nil {
		// A timed-out or unreachable gateway proves nothing about the charge.
		// The payment stays initiated until a retry, a callback or the
		// reconciliation sweep resolves it.
		uc.logger.Warnw("gateway charge did not complete", "error", err, "payment_sid", p.SID())
		return nil, apperrors.NewUnavailableError("payment gateway unavailable, retry with the same idempotency key")
	}

	if result.Outcome == paymentgateway.OutcomeFailure && result.GatewayRef == "" {
		// Declined before the gateway assigned a reference.
		if err := p.MarkFailed("declined by gateway"); err != nil {
			return nil, apperrors.NewInvalidStateError("cannot record decline", err.Error())
		}
	} else {
		if err := p.MarkProcessing(result.GatewayRef); err != nil {
			return nil, apperrors.NewInvalidStateError("cannot start processing", err.Error())
		}
		if result.Outcome == paymentgateway.OutcomeFailure {
			// Synchronous decline from the gateway.
			if err := p.MarkFailed("declined by gateway"); err != nil {
				return nil, apperrors.NewInvalidStateError("cannot record decline", err.Error())
			}
		}
	}

	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist gateway answer", "error", err, "payment_sid", p.SID())
		return nil, err
	}

	uc.logger.Infow("payment initiated",
		"payment_sid", p.SID(),
		"contract_id", p.ContractID(),
		"amount_cents", amount.AmountInCents(),
		"status", p.Status(),
		"reused", reused,
	)
	return &InitiatePaymentResult{Payment: p, Reused: reused}, nil
}
