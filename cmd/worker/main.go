// The worker runs the payment reconciliation sweep as a standalone process,
// for deployments where the API server is started with --no-scheduler.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	paymentUsecases "pactum/internal/application/payment/usecases"
	"pactum/internal/infrastructure/config"
	"pactum/internal/infrastructure/database"
	"pactum/internal/infrastructure/email"
	"pactum/internal/infrastructure/gateway"
	"pactum/internal/infrastructure/repository"
	"pactum/internal/infrastructure/scheduler"
	"pactum/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger()
	log.Infow("starting reconciliation worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	paymentRepo := repository.NewPaymentRepository(database.Get())
	paymentGateway := gateway.NewHTTPGateway(&cfg.Gateway, log)
	notifier := email.NewAdminSettlementNotifier(&cfg.Email, log)

	reconcileUC := paymentUsecases.NewReconcilePaymentsUseCase(paymentRepo, paymentGateway, notifier, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewReconciliationScheduler(
		reconcileUC,
		time.Duration(cfg.Billing.ReconcileIntervalMinutes)*time.Minute,
		time.Duration(cfg.Billing.ProcessingTimeoutMinutes)*time.Minute,
		log,
	)
	sched.Start(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Infow("shutting down reconciliation worker")
	sched.Stop()
	log.Infow("reconciliation worker exited")
}
