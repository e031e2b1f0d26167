package mappers

import (
	"fmt"

	"pactum/internal/domain/payment"
	vo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/infrastructure/persistence/models"
)

func PaymentToModel(p *payment.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:             p.ID(),
		SID:            p.SID(),
		ContractID:     p.ContractID(),
		AmountInCents:  p.Amount().AmountInCents(),
		Currency:       p.Amount().Currency(),
		Status:         p.Status().String(),
		IdempotencyKey: p.IdempotencyKey(),
		GatewayRef:     p.GatewayRef(),
		FailureReason:  p.FailureReason(),
		SettledAt:      p.SettledAt(),
		RefundedAt:     p.RefundedAt(),
		Version:        p.Version(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func PaymentToDomain(model *models.PaymentModel) (*payment.Payment, error) {
	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	return payment.Reconstruct(payment.ReconstructParams{
		ID:             model.ID,
		SID:            model.SID,
		ContractID:     model.ContractID,
		Amount:         vo.NewMoney(model.AmountInCents, model.Currency),
		Status:         status,
		IdempotencyKey: model.IdempotencyKey,
		GatewayRef:     model.GatewayRef,
		FailureReason:  model.FailureReason,
		SettledAt:      model.SettledAt,
		RefundedAt:     model.RefundedAt,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}), nil
}
