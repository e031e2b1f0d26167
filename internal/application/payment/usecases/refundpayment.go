package usecases

import (
	"context"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/domain/payment"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type RefundPaymentCommand struct {
	Session    *session.Session
	PaymentSID string
	Reason     string
}

type RefundPaymentResult struct {
	Payment *payment.Payment
}

// RefundPaymentUseCase issues a compensating request to the gateway and marks
// the payment refunded only after the gateway confirms. A refund is never
// assumed to have succeeded.
type RefundPaymentUseCase struct {
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	logger      logger.Interface
}

func NewRefundPaymentUseCase(
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	logger logger.Interface,
) *RefundPaymentUseCase {
	return &RefundPaymentUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

func (uc *RefundPaymentUseCase) Execute(ctx context.Context, cmd RefundPaymentCommand) (*RefundPaymentResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleOperator); err != nil {
		return nil, err
	}

	p, err := uc.paymentRepo.GetBySID(ctx, cmd.PaymentSID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("payment not found")
	}
	if !p.Status().IsSettled() {
		return nil, apperrors.NewInvalidStateError("only a settled payment can be refunded",
			"current status: "+p.Status().String())
	}
	if p.GatewayRef() == nil {
		return nil, apperrors.NewInvalidStateError("payment has no gateway reference")
	}

	if err := uc.gateway.Refund(ctx, *p.GatewayRef()); err != nil {
		// Without gateway confirmation the payment stays settled and the
		// caller retries.
		uc.logger.Warnw("gateway refund did not complete", "error", err, "payment_sid", p.SID())
		return nil, apperrors.NewUnavailableError("payment gateway unavailable, refund not applied")
	}

	if err := p.MarkRefunded(); err != nil {
		return nil, apperrors.NewInvalidStateError("cannot refund payment", err.Error())
	}
	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist refund", "error", err, "payment_sid", p.SID())
		return nil, err
	}

	uc.logger.Infow("payment refunded",
		"payment_sid", p.SID(), "reason", cmd.Reason, "actor", cmd.Session.ActorSID)
	return &RefundPaymentResult{Payment: p}, nil
}
