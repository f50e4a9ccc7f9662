package services

import (
	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/repositories"
)

// ReferenceService serves the trade and region dictionaries used by the
// public intake form.
type ReferenceService struct {
	referenceRepo repositories.ReferenceRepository
}

func NewReferenceService(referenceRepo repositories.ReferenceRepository) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

func (s *ReferenceService) ListTrades() ([]models.Trade, error) {
	trades, err := s.referenceRepo.FindAllTrades()
	if err != nil {
		logger.WithError(err).Error("failed to list trades")
		return nil, appErrors.InternalError(err)
	}
	return trades, nil
}

func (s *ReferenceService) ListRegions() ([]models.Region, error) {
	regions, err := s.referenceRepo.FindAllRegions()
	if err != nil {
		logger.WithError(err).Error("failed to list regions")
		return nil, appErrors.InternalError(err)
	}
	return regions, nil
}
