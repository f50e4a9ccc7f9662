package handlers

import (
	"crewlink_backend/internal/services"
	"crewlink_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	LaborRequest *LaborRequestHandler
	Notification *NotificationHandler
	Auth         *AuthHandler
	Reference    *ReferenceHandler
	Metrics      *MetricsHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		LaborRequest: NewLaborRequestHandler(base, svcs.LaborRequest, svcs.Summary),
		Notification: NewNotificationHandler(base, svcs.Notification),
		Auth:         NewAuthHandler(base, svcs.Auth),
		Reference:    NewReferenceHandler(base, svcs.Reference),
		Metrics:      NewMetricsHandler(base, svcs.Metrics),
	}
}
