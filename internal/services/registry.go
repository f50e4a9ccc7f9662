package services

import (
	"crewlink_backend/internal/algorithms"
	"crewlink_backend/internal/email"
	"crewlink_backend/internal/ratelimit"
	"crewlink_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories into services once, at startup.
type ServiceContainer struct {
	LaborRequest *LaborRequestService
	Notification *NotificationService
	Summary      *SummaryService
	Auth         *AuthService
	Reference    *ReferenceService
	Metrics      *MetricsService
}

func NewServiceContainer(db *gorm.DB, limiter ratelimit.Limiter, emailProvider email.Provider) *ServiceContainer {
	requestRepo := repositories.NewLaborRequestRepository(db)
	craftRepo := repositories.NewCraftRequirementRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	agencyRepo := repositories.NewAgencyRepository(db)
	responseRepo := repositories.NewAgencyResponseRepository(db)
	referenceRepo := repositories.NewReferenceRepository(db)

	matcher := algorithms.NewCoverageMatcher(agencyRepo)

	return &ServiceContainer{
		LaborRequest: NewLaborRequestService(requestRepo, craftRepo, notificationRepo, agencyRepo, matcher, emailProvider),
		Notification: NewNotificationService(notificationRepo, responseRepo),
		Summary:      NewSummaryService(requestRepo, notificationRepo),
		Auth:         NewAuthService(agencyRepo, limiter),
		Reference:    NewReferenceService(referenceRepo),
		Metrics:      NewMetricsService(requestRepo, notificationRepo),
	}
}
