package repositories

import (
	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

type AgencyResponseRepository interface {
	CreateResponse(response *models.AgencyResponse) error
	FindByNotification(notificationID string) (*models.AgencyResponse, error)
}

type AgencyResponseRepositoryImpl struct {
	db *gorm.DB
}

func NewAgencyResponseRepository(db *gorm.DB) AgencyResponseRepository {
	return &AgencyResponseRepositoryImpl{db: db}
}

func (r *AgencyResponseRepositoryImpl) CreateResponse(response *models.AgencyResponse) error {
	return r.db.Create(response).Error
}

func (r *AgencyResponseRepositoryImpl) FindByNotification(notificationID string) (*models.AgencyResponse, error) {
	var response models.AgencyResponse
	err := r.db.First(&response, "notification_id = ?", notificationID).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}
