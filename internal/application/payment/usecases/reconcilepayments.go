package usecases

import (
	"context"
	"time"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/domain/payment"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/goroutine"
	"pactum/internal/shared/logger"
)

type ReconcilePaymentsCommand struct {
	// ProcessingTimeout is how long a payment may sit open without a gateway
	// answer before the sweep intervenes.
	ProcessingTimeout time.Duration
}

type ReconcilePaymentsResult struct {
	Checked int
	Settled int
	Failed  int
}

// ReconcilePaymentsUseCase bridges missed callbacks and lost charges. It
// re-queries the gateway for payments stuck in processing, re-issues charges
// that never reached the gateway, and applies the authoritative outcome.
// Per-payment failures are logged and retried on the next sweep, never fatal.
type ReconcilePaymentsUseCase struct {
	paymentRepo payment.PaymentRepository
	gateway     paymentgateway.PaymentGateway
	notifier    SettlementNotifier
	logger      logger.Interface
}

func NewReconcilePaymentsUseCase(
	paymentRepo payment.PaymentRepository,
	gateway paymentgateway.PaymentGateway,
	notifier SettlementNotifier,
	logger logger.Interface,
) *ReconcilePaymentsUseCase {
	return &ReconcilePaymentsUseCase{
		paymentRepo: paymentRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *ReconcilePaymentsUseCase) Execute(ctx context.Context, cmd ReconcilePaymentsCommand) (*ReconcilePaymentsResult, error) {
	cutoff := biztime.NowUTC().Add(-cmd.ProcessingTimeout)
	stuck, err := uc.paymentRepo.GetStuckOpen(ctx, cutoff)
	if err != nil {
		uc.logger.Errorw("failed to list stuck payments", "error", err)
		return nil, err
	}

	result := &ReconcilePaymentsResult{}
	for _, p := range stuck {
		result.Checked++
		if err := uc.reconcileOne(ctx, p, result); err != nil {
			uc.logger.Warnw("reconciliation deferred to next sweep",
				"error", err, "payment_sid", p.SID())
		}
	}

	if result.Checked > 0 {
		uc.logger.Infow("reconciliation sweep finished",
			"checked", result.Checked, "settled", result.Settled, "failed", result.Failed)
	}
	return result, nil
}

func (uc *ReconcilePaymentsUseCase) reconcileOne(ctx context.Context, p *payment.Payment, result *ReconcilePaymentsResult) error {
	var (
		outcome  paymentgateway.Outcome
		redriven bool
	)
	if p.GatewayRef() == nil {
		// Initiated but never accepted by the gateway. Re-issue the charge
		// with the stored key; the gateway dedupes on it, so this resumes
		// the original attempt instead of double-charging.
		amount := p.Amount()
		res, err := uc.gateway.Charge(ctx, amount.AmountInCents(), amount.Currency(), p.IdempotencyKey())
		if err != nil {
			return err
		}
		if res.GatewayRef != "" {
			if err := p.MarkProcessing(res.GatewayRef); err != nil {
				return err
			}
			redriven = true
		}
		outcome = res.Outcome
	} else {
		var err error
		outcome, err = uc.gateway.QueryStatus(ctx, *p.GatewayRef())
		if err != nil {
			return err
		}
	}

	switch outcome {
	case paymentgateway.OutcomeSuccess:
		if err := p.MarkSettled(); err != nil {
			return err
		}
		result.Settled++
	case paymentgateway.OutcomeFailure:
		if err := p.MarkFailed("reported failed by gateway during reconciliation"); err != nil {
			return err
		}
		result.Failed++
	default:
		// Still pending at the gateway; leave it for the next sweep. A
		// re-driven charge is persisted either way so the reference sticks.
		if !redriven {
			return nil
		}
	}

	if err := uc.paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if p.Status().IsSettled() && uc.notifier != nil {
		settled := p
		goroutine.SafeGo(uc.logger, "settlement-notify", func() {
			if err := uc.notifier.NotifySettled(context.Background(), settled); err != nil {
				uc.logger.Warnw("settlement notification failed", "error", err, "payment_sid", settled.SID())
			}
		})
	}
	return nil
}
