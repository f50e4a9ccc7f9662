package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is the fan-out artifact: one agency being notified about
// one craft requirement. Rows are never hard-deleted; archiving is a
// status change.
type Notification struct {
	BaseModel
	LaborRequestID string             `gorm:"type:uuid;not null;index" json:"labor_request_id"`
	CraftID        string             `gorm:"type:uuid;not null;index" json:"craft_id"`
	AgencyID       string             `gorm:"type:uuid;not null;index" json:"agency_id"`
	Status         NotificationStatus `gorm:"not null;default:'pending'" json:"status"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	ViewedAt       *time.Time         `json:"viewed_at,omitempty"`
	RespondedAt    *time.Time         `json:"responded_at,omitempty"`
	DeliveryError  *string            `json:"delivery_error,omitempty"`
	Data           datatypes.JSON     `gorm:"type:jsonb" json:"data,omitempty"` // matcher-supplied metadata

	LaborRequest *LaborRequest     `gorm:"foreignKey:LaborRequestID" json:"labor_request,omitempty"`
	Craft        *CraftRequirement `gorm:"foreignKey:CraftID" json:"craft,omitempty"`
}

// AgencyResponse persists the interest flag and message captured when an
// agency responds to a notification.
type AgencyResponse struct {
	BaseModel
	NotificationID string `gorm:"type:uuid;not null;index" json:"notification_id"`
	AgencyID       string `gorm:"type:uuid;not null;index" json:"agency_id"`
	Interested     bool   `gorm:"not null" json:"interested"`
	Message        string `json:"message"`
}
