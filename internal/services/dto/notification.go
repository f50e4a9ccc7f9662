package dto

import (
	"time"

	"crewlink_backend/internal/models"
)

// RespondInput captures an agency's answer to a notification.
type RespondInput struct {
	Interested *bool  `json:"interested" validate:"required"`
	Message    string `json:"message" validate:"omitempty,max=2000"`
}

// NotificationView is the inbox representation of a notification.
type NotificationView struct {
	ID           string                    `json:"id"`
	Status       models.NotificationStatus `json:"status"`
	ProjectName  string                    `json:"project_name"`
	CompanyName  string                    `json:"company_name"`
	TradeName    string                    `json:"trade_name"`
	WorkerCount  int                       `json:"worker_count"`
	StartDate    *time.Time                `json:"start_date,omitempty"`
	SentAt       *time.Time                `json:"sent_at,omitempty"`
	ViewedAt     *time.Time                `json:"viewed_at,omitempty"`
	RespondedAt  *time.Time                `json:"responded_at,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// NotificationListResult pages an agency inbox.
type NotificationListResult struct {
	Notifications []NotificationView `json:"notifications"`
	Total         int64              `json:"total"`
}
