package usecases

import (
	"context"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/domain/payment"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/goroutine"
	"pactum/internal/shared/logger"
)

type HandleGatewayCallbackCommand struct {
	Body      []byte
	Signature string
}

type HandleGatewayCallbackResult struct {
	Payment *payment.Payment
	// Duplicate is true when the callback matched an already-terminal payment
	// and was accepted without a state change.
	Duplicate bool
}

// HandleGatewayCallbackUseCase applies an inbound gateway notification to the
// matching payment. Delivery is at-least-once and possibly out of order, so
// duplicates for a terminal payment succeed as no-ops.
type HandleGatewayCallbackUseCase struct {
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	notifier    SettlementNotifier
	logger      logger.Interface
}

func NewHandleGatewayCallbackUseCase(
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	notifier SettlementNotifier,
	logger logger.Interface,
) *HandleGatewayCallbackUseCase {
	return &HandleGatewayCallbackUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *HandleGatewayCallbackUseCase) Execute(ctx context.Context, cmd HandleGatewayCallbackCommand) (*HandleGatewayCallbackResult, error) {
	payload, err := uc.gateway.VerifyCallback(cmd.Body, cmd.Signature)
	if err != nil {
		uc.logger.Warnw("rejected unverifiable gateway callback", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid callback signature")
	}
	if payload.Outcome != paymentgateway.OutcomeSuccess && payload.Outcome != paymentgateway.OutcomeFailure {
		return nil, apperrors.NewValidationError("callback outcome must be success or failure")
	}

	p, err := uc.paymentRepo.GetByIdempotencyKey(ctx, payload.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("no payment matches callback")
	}

	if p.Status().IsTerminal() {
		uc.logger.Infow("duplicate callback for terminal payment",
			"payment_sid", p.SID(), "status", p.Status(), "outcome", payload.Outcome)
		return &HandleGatewayCallbackResult{Payment: p, Duplicate: true}, nil
	}

	if err := p.ValidateCallbackAmount(payload.AmountInCents, payload.Currency); err != nil {
		uc.logger.Warnw("callback amount mismatch", "error", err, "payment_sid", p.SID())
		return nil, apperrors.NewValidationError("callback does not match payment", err.Error())
	}

	// The callback can arrive before our own charge response was persisted.
	// Fill in the gateway reference and move forward.
	if p.GatewayRef() == nil {
		if err := p.MarkProcessing(payload.GatewayRef); err != nil {
			return nil, apperrors.NewInvalidStateError("cannot start processing", err.Error())
		}
	}

	switch payload.Outcome {
	case paymentgateway.OutcomeSuccess:
		err = p.MarkSettled()
	case paymentgateway.OutcomeFailure:
		err = p.MarkFailed(payload.FailureReason)
	}
	if err != nil {
		return nil, apperrors.NewInvalidStateError("cannot apply callback outcome", err.Error())
	}

	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		if apperrors.IsConflictError(err) {
			// A concurrent writer applied a transition first. Re-read; if the
			// payment is terminal now, this callback is a duplicate.
			current, lookupErr := uc.paymentRepo.GetByIdempotencyKey(ctx, payload.IdempotencyKey)
			if lookupErr == nil && current != nil && current.Status().IsTerminal() {
				return &HandleGatewayCallbackResult{Payment: current, Duplicate: true}, nil
			}
		}
		uc.logger.Errorw("failed to persist callback outcome", "error", err, "payment_sid", p.SID())
		return nil, err
	}

	uc.logger.Infow("gateway callback applied",
		"payment_sid", p.SID(), "outcome", payload.Outcome, "status", p.Status())

	if p.Status().IsSettled() && uc.notifier != nil {
		settled := p
		goroutine.SafeGo(uc.logger, "settlement-notify", func() {
			if err := uc.notifier.NotifySettled(context.Background(), settled); err != nil {
				uc.logger.Warnw("settlement notification failed", "error", err, "payment_sid", settled.SID())
			}
		})
	}

	return &HandleGatewayCallbackResult{Payment: p}, nil
}
