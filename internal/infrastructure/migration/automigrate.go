package migration

import (
	"pactum/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.EntityModel{},
		&models.EntityProfileModel{},
		&models.PlanModel{},
		&models.ContractModel{},
		&models.PaymentModel{},
		&models.EvaluationModel{},
		&models.AccountModel{},
	}
}
