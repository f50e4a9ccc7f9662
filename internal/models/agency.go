package models

import "gorm.io/datatypes"

// Agency is a staffing agency that receives craft notifications and
// authenticates against the inbox endpoints.
type Agency struct {
	BaseModel
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	ContactPhone string         `json:"contact_phone"`
	City         string         `json:"city"`
	Status       AgencyStatus   `gorm:"not null;default:'active'" json:"status"`
	TradeIDs     datatypes.JSON `gorm:"type:jsonb" json:"trade_ids"`  // trades the agency staffs
	RegionIDs    datatypes.JSON `gorm:"type:jsonb" json:"region_ids"` // regions the agency serves
}
