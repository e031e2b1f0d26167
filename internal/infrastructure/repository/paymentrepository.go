package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pactum/internal/domain/payment"
	vo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("idempotency key already exists")
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

// Update applies a state transition guarded by the optimistic version column.
// A concurrent writer that already advanced the row causes a conflict instead
// of a silent double-apply.
func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	model := mappers.PaymentToModel(p)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"gateway_ref":    model.GatewayRef,
			"failure_reason": model.FailureReason,
			"settled_at":     model.SettledAt,
			"refunded_at":    model.RefundedAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("payment was modified concurrently")
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by sid: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).Where("idempotency_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment by idempotency key: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetByContractID(ctx context.Context, contractID uint) ([]*payment.Payment, error) {
	var modelList []models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return paymentsToDomain(modelList)
}

func (r *PaymentRepository) GetOpenByContractID(ctx context.Context, contractID uint) (*payment.Payment, error) {
	openStatuses := []string{
		vo.PaymentStatusInitiated.String(),
		vo.PaymentStatusProcessing.String(),
	}

	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("contract_id = ? AND status IN ?", contractID, openStatuses).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetLatestByContractID(ctx context.Context, contractID uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("contract_id = ?", contractID).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest payment: %w", err)
	}
	return mappers.PaymentToDomain(&model)
}

func (r *PaymentRepository) GetStuckOpen(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	var modelList []models.PaymentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status IN ? AND updated_at < ?",
			[]string{vo.PaymentStatusInitiated.String(), vo.PaymentStatusProcessing.String()}, cutoff).
		Order("updated_at ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list stuck payments: %w", err)
	}
	return paymentsToDomain(modelList)
}

func paymentsToDomain(modelList []models.PaymentModel) ([]*payment.Payment, error) {
	payments := make([]*payment.Payment, 0, len(modelList))
	for i := range modelList {
		p, err := mappers.PaymentToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}
