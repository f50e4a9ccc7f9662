package repositories

import (
	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

// ReferenceRepository serves the trade and region lookup tables.
type ReferenceRepository interface {
	CreateTrade(trade *models.Trade) error
	CreateRegion(region *models.Region) error
	FindTradeNames(ids []string) (map[string]string, error)
	FindAllTrades() ([]models.Trade, error)
	FindAllRegions() ([]models.Region, error)
}

type ReferenceRepositoryImpl struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &ReferenceRepositoryImpl{db: db}
}

func (r *ReferenceRepositoryImpl) CreateTrade(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

func (r *ReferenceRepositoryImpl) CreateRegion(region *models.Region) error {
	return r.db.Create(region).Error
}

func (r *ReferenceRepositoryImpl) FindTradeNames(ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var trades []models.Trade
	if err := r.db.Where("id IN ?", ids).Find(&trades).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(trades))
	for _, t := range trades {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (r *ReferenceRepositoryImpl) FindAllTrades() ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.Order("name ASC").Find(&trades).Error
	return trades, err
}

func (r *ReferenceRepositoryImpl) FindAllRegions() ([]models.Region, error) {
	var regions []models.Region
	err := r.db.Order("name ASC").Find(&regions).Error
	return regions, err
}
