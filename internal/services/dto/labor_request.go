package dto

import "time"

// CraftInput is one trade/region/skill staffing need in a submission.
type CraftInput struct {
	TradeID         string    `json:"trade_id" validate:"required,uuid"`
	RegionID        string    `json:"region_id" validate:"required,uuid"`
	ExperienceLevel string    `json:"experience_level" validate:"required,is-experience-level"`
	WorkerCount     int       `json:"worker_count" validate:"required,min=1"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	DurationDays    int       `json:"duration_days" validate:"required,gt=0"`
	HoursPerWeek    int       `json:"hours_per_week" validate:"required,gt=0"`
	PayRateMin      *float64  `json:"pay_rate_min" validate:"omitempty,min=0"`
	PayRateMax      *float64  `json:"pay_rate_max" validate:"omitempty,min=0"`
	PerDiemRate     *float64  `json:"per_diem_rate" validate:"omitempty,min=0"`
	Notes           *string   `json:"notes" validate:"omitempty,max=2000"`
}

// SubmitRequestInput is the public intake payload.
type SubmitRequestInput struct {
	ProjectName       string       `json:"project_name" validate:"required,max=200"`
	CompanyName       string       `json:"company_name" validate:"required,max=200"`
	ContactEmail      string       `json:"contact_email" validate:"required,email"`
	ContactPhone      string       `json:"contact_phone" validate:"required,max=30"`
	AdditionalDetails *string      `json:"additional_details" validate:"omitempty,max=5000"`
	Crafts            []CraftInput `json:"crafts" validate:"required,min=1,dive"`
}

// SubmitRequestResult is returned to the submitter.
type SubmitRequestResult struct {
	RequestID         string         `json:"request_id"`
	ConfirmationToken string         `json:"confirmation_token"`
	TotalMatches      int            `json:"total_matches"`
	MatchesByCraft    map[string]int `json:"matches_by_craft"`
}
