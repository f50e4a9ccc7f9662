package services

import (
	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/repositories"
)

// PlatformMetrics aggregates intake and fan-out counters for the
// monitoring endpoint.
type PlatformMetrics struct {
	TotalRequests      int64            `json:"total_requests"`
	TotalNotifications int64            `json:"total_notifications"`
	ByStatus           map[string]int64 `json:"notifications_by_status"`
}

type MetricsService struct {
	requestRepo      repositories.LaborRequestRepository
	notificationRepo repositories.NotificationRepository
}

func NewMetricsService(
	requestRepo repositories.LaborRequestRepository,
	notificationRepo repositories.NotificationRepository,
) *MetricsService {
	return &MetricsService{
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *MetricsService) GetPlatformMetrics() (*PlatformMetrics, error) {
	totalRequests, err := s.requestRepo.CountRequests()
	if err != nil {
		logger.WithError(err).Error("failed to count labor requests")
		return nil, appErrors.InternalError(err)
	}

	stats, err := s.notificationRepo.GetPlatformStats()
	if err != nil {
		logger.WithError(err).Error("failed to load notification stats")
		return nil, appErrors.InternalError(err)
	}

	return &PlatformMetrics{
		TotalRequests:      totalRequests,
		TotalNotifications: stats.TotalNotifications,
		ByStatus:           stats.ByStatus,
	}, nil
}
