package models

import "time"

// LaborRequest is a contractor's staffing submission. Immutable after
// creation except for Status. Owns its craft requirements.
type LaborRequest struct {
	BaseModel
	ProjectName       string        `gorm:"not null" json:"project_name"`
	CompanyName       string        `gorm:"not null" json:"company_name"`
	ContactEmail      string        `gorm:"not null" json:"contact_email"`
	ContactPhone      string        `gorm:"not null" json:"contact_phone"`
	AdditionalDetails *string       `json:"additional_details,omitempty"`
	Status            RequestStatus `gorm:"not null;default:'pending'" json:"status"`

	// Single-use lookup key for the unauthenticated submitter.
	ConfirmationToken        string     `gorm:"uniqueIndex;size:64;not null" json:"-"`
	ConfirmationTokenExpires *time.Time `json:"-"`

	Crafts []CraftRequirement `gorm:"foreignKey:LaborRequestID" json:"crafts,omitempty"`
}

// CraftRequirement is one trade/region/skill staffing need within a
// labor request.
type CraftRequirement struct {
	BaseModel
	LaborRequestID  string     `gorm:"type:uuid;not null;index" json:"labor_request_id"`
	TradeID         string     `gorm:"type:uuid;not null;index" json:"trade_id"`
	RegionID        string     `gorm:"type:uuid;not null;index" json:"region_id"`
	ExperienceLevel string     `gorm:"not null" json:"experience_level"`
	WorkerCount     int        `gorm:"not null" json:"worker_count"`
	StartDate       time.Time  `gorm:"not null" json:"start_date"`
	DurationDays    int        `gorm:"not null" json:"duration_days"`
	HoursPerWeek    int        `gorm:"not null" json:"hours_per_week"`
	PayRateMin      *float64   `json:"pay_rate_min,omitempty"`
	PayRateMax      *float64   `json:"pay_rate_max,omitempty"`
	PerDiemRate     *float64   `json:"per_diem_rate,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Trade           *Trade     `gorm:"foreignKey:TradeID" json:"trade,omitempty"`
}

// HasValidPayRange reports whether an optional pay range is ordered.
func (c *CraftRequirement) HasValidPayRange() bool {
	if c.PayRateMin == nil || c.PayRateMax == nil {
		return true
	}
	return *c.PayRateMax >= *c.PayRateMin
}
