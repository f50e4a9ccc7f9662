package repositories

import (
	"errors"

	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("labor request not found")
)

type LaborRequestRepository interface {
	CreateRequest(request *models.LaborRequest) error
	FindRequestByID(id string) (*models.LaborRequest, error)

	// FindRequestByToken is the elevated read path for the token-gated
	// summary: the submitter has no session, so the lookup is keyed by
	// token alone instead of a requester-scoped predicate.
	FindRequestByToken(token string) (*models.LaborRequest, error)

	UpdateRequestStatus(id string, status models.RequestStatus) error

	// DeleteRequest is the compensating action for a failed craft batch.
	// Hard delete: the request never became visible to anyone.
	DeleteRequest(id string) error

	CountRequests() (int64, error)
}

type LaborRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewLaborRequestRepository(db *gorm.DB) LaborRequestRepository {
	return &LaborRequestRepositoryImpl{db: db}
}

func (r *LaborRequestRepositoryImpl) CreateRequest(request *models.LaborRequest) error {
	return r.db.Create(request).Error
}

func (r *LaborRequestRepositoryImpl) FindRequestByID(id string) (*models.LaborRequest, error) {
	var request models.LaborRequest
	err := r.db.Preload("Crafts").First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *LaborRequestRepositoryImpl) FindRequestByToken(token string) (*models.LaborRequest, error) {
	var request models.LaborRequest
	err := r.db.Preload("Crafts").Preload("Crafts.Trade").
		First(&request, "confirmation_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *LaborRequestRepositoryImpl) UpdateRequestStatus(id string, status models.RequestStatus) error {
	result := r.db.Model(&models.LaborRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *LaborRequestRepositoryImpl) DeleteRequest(id string) error {
	return r.db.Delete(&models.LaborRequest{}, "id = ?", id).Error
}

func (r *LaborRequestRepositoryImpl) CountRequests() (int64, error) {
	var count int64
	err := r.db.Model(&models.LaborRequest{}).Count(&count).Error
	return count, err
}
