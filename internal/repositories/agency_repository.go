package repositories

import (
	"errors"

	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAgencyNotFound = errors.New("agency not found")
)

type AgencyRepository interface {
	CreateAgency(agency *models.Agency) error
	FindAgencyByID(id string) (*models.Agency, error)
	FindAgencyByEmail(email string) (*models.Agency, error)

	// FindActiveByCoverage returns active agencies whose declared trade
	// and region coverage includes the given pair.
	FindActiveByCoverage(tradeID, regionID string) ([]models.Agency, error)
}

type AgencyRepositoryImpl struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) AgencyRepository {
	return &AgencyRepositoryImpl{db: db}
}

func (r *AgencyRepositoryImpl) CreateAgency(agency *models.Agency) error {
	return r.db.Create(agency).Error
}

func (r *AgencyRepositoryImpl) FindAgencyByID(id string) (*models.Agency, error) {
	var agency models.Agency
	err := r.db.First(&agency, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, err
	}
	return &agency, nil
}

func (r *AgencyRepositoryImpl) FindAgencyByEmail(email string) (*models.Agency, error) {
	var agency models.Agency
	err := r.db.First(&agency, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, err
	}
	return &agency, nil
}

func (r *AgencyRepositoryImpl) FindActiveByCoverage(tradeID, regionID string) ([]models.Agency, error) {
	var agencies []models.Agency
	err := r.db.
		Where("status = ?", models.AgencyStatusActive).
		Where("trade_ids @> ?", toJSONArray(tradeID)).
		Where("region_ids @> ?", toJSONArray(regionID)).
		Find(&agencies).Error
	return agencies, err
}

// toJSONArray renders a single id as a JSONB array literal for the
// containment operator.
func toJSONArray(id string) string {
	return `["` + id + `"]`
}
