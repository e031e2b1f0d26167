package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"pactum/internal/domain/contract"
	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/infrastructure/persistence/models"
)

func ContractToModel(c *contract.Contract) (*models.ContractModel, error) {
	model := &models.ContractModel{
		ID:               c.ID(),
		SID:              c.SID(),
		EntityID:         c.EntityID(),
		PlanID:           c.PlanID(),
		Status:           c.Status().String(),
		CurrentPaymentID: c.CurrentPaymentID(),
		SuspendReason:    c.SuspendReason(),
		TerminateReason:  c.TerminateReason(),
		ActivatedAt:      c.ActivatedAt(),
		SuspendedAt:      c.SuspendedAt(),
		TerminatedAt:     c.TerminatedAt(),
		Version:          c.Version(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
	if len(c.Annotations()) > 0 {
		raw, err := json.Marshal(c.Annotations())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal annotations: %w", err)
		}
		model.Annotations = datatypes.JSON(raw)
	}
	return model, nil
}

func ContractToDomain(model *models.ContractModel) (*contract.Contract, error) {
	status := vo.ContractStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid contract status: %s", model.Status)
	}

	var annotations []contract.Annotation
	if len(model.Annotations) > 0 {
		if err := json.Unmarshal(model.Annotations, &annotations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal annotations: %w", err)
		}
	}

	return contract.Reconstruct(contract.ReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		EntityID:         model.EntityID,
		PlanID:           model.PlanID,
		Status:           status,
		CurrentPaymentID: model.CurrentPaymentID,
		SuspendReason:    model.SuspendReason,
		TerminateReason:  model.TerminateReason,
		ActivatedAt:      model.ActivatedAt,
		SuspendedAt:      model.SuspendedAt,
		TerminatedAt:     model.TerminatedAt,
		Annotations:      annotations,
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}), nil
}
