package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"pactum/internal/domain/plan"
	vo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/infrastructure/persistence/models"
)

func PlanToModel(p *plan.Plan) (*models.PlanModel, error) {
	model := &models.PlanModel{
		ID:           p.ID(),
		SID:          p.SID(),
		Name:         p.Name(),
		PriceInCents: p.PriceInCents(),
		Currency:     p.Currency(),
		BillingCycle: p.Cycle().String(),
		Active:       p.IsActive(),
		Revision:     p.Revision(),
		SupersededBy: p.SupersededBy(),
		Version:      p.Version(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
	if len(p.Features()) > 0 {
		raw, err := json.Marshal(p.Features())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal plan features: %w", err)
		}
		model.Features = datatypes.JSON(raw)
	}
	return model, nil
}

func PlanToDomain(model *models.PlanModel) (*plan.Plan, error) {
	cycle := vo.BillingCycle(model.BillingCycle)
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", model.BillingCycle)
	}

	var features map[string]string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	return plan.Reconstruct(plan.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Name:         model.Name,
		PriceInCents: model.PriceInCents,
		Currency:     model.Currency,
		Cycle:        cycle,
		Active:       model.Active,
		Revision:     model.Revision,
		SupersededBy: model.SupersededBy,
		Features:     features,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}), nil
}
