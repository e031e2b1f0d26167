// Package scheduler runs the periodic background jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	paymentUsecases "pactum/internal/application/payment/usecases"
	"pactum/internal/shared/logger"
)

// ReconciliationScheduler periodically sweeps payments stuck in processing
// and asks the gateway for their authoritative status. Bridges missed
// callbacks; a failed sweep is retried on the next tick.
type ReconciliationScheduler struct {
	reconcileUC       *paymentUsecases.ReconcilePaymentsUseCase
	logger            logger.Interface
	stopChan          chan struct{}
	stopOnce          sync.Once
	wg                sync.WaitGroup
	interval          time.Duration
	processingTimeout time.Duration
}

func NewReconciliationScheduler(
	reconcileUC *paymentUsecases.ReconcilePaymentsUseCase,
	interval time.Duration,
	processingTimeout time.Duration,
	logger logger.Interface,
) *ReconciliationScheduler {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if processingTimeout <= 0 {
		processingTimeout = 30 * time.Minute
	}
	return &ReconciliationScheduler{
		reconcileUC:       reconcileUC,
		logger:            logger,
		stopChan:          make(chan struct{}),
		interval:          interval,
		processingTimeout: processingTimeout,
	}
}

// Start launches the sweep loop and returns immediately.
func (s *ReconciliationScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reconciliation scheduler",
		"interval", s.interval, "processing_timeout", s.processingTimeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully. Safe to call more than once.
func (s *ReconciliationScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping reconciliation scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("reconciliation scheduler stopped")
	})
}

func (s *ReconciliationScheduler) runLoop(ctx context.Context) {
	// Sweep immediately on startup to clear anything left from a previous run.
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reconciliation scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReconciliationScheduler) sweep(ctx context.Context) {
	result, err := s.reconcileUC.Execute(ctx, paymentUsecases.ReconcilePaymentsCommand{
		ProcessingTimeout: s.processingTimeout,
	})
	if err != nil {
		s.logger.Errorw("reconciliation sweep failed", "error", err)
		return
	}
	s.logger.Debugw("reconciliation sweep complete",
		"checked", result.Checked, "settled", result.Settled, "failed", result.Failed)
}
