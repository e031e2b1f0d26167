// Package email sends operational notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"pactum/internal/domain/payment"
	"pactum/internal/shared/config"
	"pactum/internal/shared/logger"
)

// AdminSettlementNotifier emails the administrative address when a payment
// settles. Implements the payment use cases' SettlementNotifier port.
type AdminSettlementNotifier struct {
	dialer *gomail.Dialer
	cfg    *config.EmailConfig
	logger logger.Interface
}

func NewAdminSettlementNotifier(cfg *config.EmailConfig, log logger.Interface) *AdminSettlementNotifier {
	return &AdminSettlementNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		cfg:    cfg,
		logger: log,
	}
}

func (n *AdminSettlementNotifier) NotifySettled(_ context.Context, p *payment.Payment) error {
	if n.cfg.AdminAddress == "" || n.cfg.SMTPHost == "" {
		n.logger.Debugw("settlement email skipped, smtp not configured", "payment_sid", p.SID())
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	msg.SetHeader("To", n.cfg.AdminAddress)
	msg.SetHeader("Subject", fmt.Sprintf("Payment %s settled", p.SID()))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Payment %s settled.\n\nAmount: %s\nIdempotency key: %s\n",
		p.SID(), p.Amount().String(), p.IdempotencyKey(),
	))

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send settlement email: %w", err)
	}
	return nil
}
