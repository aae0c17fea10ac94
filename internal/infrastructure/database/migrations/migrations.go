package migrations

import (
	"github.com/AgroVista/agro-vista-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate cria/atualiza o esquema a partir das entidades
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Farm{},
		&entities.ESGChecklist{},
		&entities.ESGResponse{},
		&entities.Badge{},
		&entities.FinancialProjection{},
		&entities.Challenge{},
		&entities.ChallengeProgress{},
		&entities.Animal{},
		&entities.Weighing{},
	)
}

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Add indexes to the esg_responses table
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_esg_responses_farm_id ON esg_responses ("farmId")`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_esg_responses_responded_at ON esg_responses ("respondedAt")`).Error; err != nil {
		return err
	}

	// Add indexes to the badges table
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_badges_farm_id ON badges ("farmId")`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_badges_awarded_at ON badges ("awardedAt")`).Error; err != nil {
		return err
	}

	// Add indexes to the financial_projections table
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_financial_projections_farm_id ON financial_projections ("farmId")`).Error; err != nil {
		return err
	}

	// Add indexes to the challenge_progress table
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_challenge_progress_farm_id ON challenge_progress ("farmId")`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_challenge_progress_challenge_id ON challenge_progress ("challengeId")`).Error; err != nil {
		return err
	}

	// Add indexes to the animals and weighings tables
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_animals_farm_id ON animals ("farmId")`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_animals_status ON animals (status)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_weighings_animal_id ON weighings ("animalId")`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_weighings_date ON weighings (date)`).Error; err != nil {
		return err
	}

	return nil
}
