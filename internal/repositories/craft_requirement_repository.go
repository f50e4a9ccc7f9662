package repositories

import (
	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

type CraftRequirementRepository interface {
	CreateBatch(crafts []*models.CraftRequirement) error
	FindByRequest(requestID string) ([]models.CraftRequirement, error)
}

type CraftRequirementRepositoryImpl struct {
	db *gorm.DB
}

func NewCraftRequirementRepository(db *gorm.DB) CraftRequirementRepository {
	return &CraftRequirementRepositoryImpl{db: db}
}

func (r *CraftRequirementRepositoryImpl) CreateBatch(crafts []*models.CraftRequirement) error {
	if len(crafts) == 0 {
		return nil
	}
	return r.db.Create(crafts).Error
}

func (r *CraftRequirementRepositoryImpl) FindByRequest(requestID string) ([]models.CraftRequirement, error) {
	var crafts []models.CraftRequirement
	err := r.db.Preload("Trade").
		Where("labor_request_id = ?", requestID).
		Order("created_at ASC").
		Find(&crafts).Error
	return crafts, err
}
