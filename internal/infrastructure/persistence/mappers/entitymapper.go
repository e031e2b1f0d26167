package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"pactum/internal/domain/entity"
	vo "pactum/internal/domain/entity/valueobjects"
	"pactum/internal/infrastructure/persistence/models"
)

func EntityToModel(e *entity.Entity) *models.EntityModel {
	return &models.EntityModel{
		ID:        e.ID(),
		SID:       e.SID(),
		TaxID:     e.TaxID(),
		Name:      e.Name(),
		Kind:      e.Kind().String(),
		Status:    e.Status().String(),
		Version:   e.Version(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

func EntityProfileToModel(entityID uint, p *entity.Profile) (*models.EntityProfileModel, error) {
	model := &models.EntityProfileModel{
		EntityID:     entityID,
		Address:      p.Address,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		BankName:     p.BankName,
		BankAccount:  p.BankAccount,
	}
	if len(p.Attributes) > 0 {
		raw, err := json.Marshal(p.Attributes)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile attributes: %w", err)
		}
		model.Attributes = datatypes.JSON(raw)
	}
	return model, nil
}

func EntityToDomain(model *models.EntityModel, profileModel *models.EntityProfileModel) (*entity.Entity, error) {
	kind := vo.EntityKind(model.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid entity kind: %s", model.Kind)
	}
	status := vo.EntityStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid entity status: %s", model.Status)
	}

	var profile *entity.Profile
	if profileModel != nil {
		profile = &entity.Profile{
			Address:      profileModel.Address,
			ContactEmail: profileModel.ContactEmail,
			ContactPhone: profileModel.ContactPhone,
			BankName:     profileModel.BankName,
			BankAccount:  profileModel.BankAccount,
		}
		if len(profileModel.Attributes) > 0 {
			if err := json.Unmarshal(profileModel.Attributes, &profile.Attributes); err != nil {
				return nil, fmt.Errorf("failed to unmarshal profile attributes: %w", err)
			}
		}
	}

	return entity.Reconstruct(entity.ReconstructParams{
		ID:        model.ID,
		SID:       model.SID,
		TaxID:     model.TaxID,
		Name:      model.Name,
		Kind:      kind,
		Status:    status,
		Profile:   profile,
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}), nil
}
