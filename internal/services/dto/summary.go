package dto

import "time"

// CraftMatchSummary is one row of the per-craft match breakdown.
type CraftMatchSummary struct {
	CraftID    string `json:"craft_id"`
	TradeName  string `json:"trade_name"`
	MatchCount int64  `json:"match_count"`
}

// RequestSummary is the token-gated view of a submission. Contact
// fields are masked; the raw values never leave the service.
type RequestSummary struct {
	RequestID    string              `json:"request_id"`
	ProjectName  string              `json:"project_name"`
	CompanyName  string              `json:"company_name"`
	ContactEmail string              `json:"contact_email"`
	ContactPhone string              `json:"contact_phone"`
	Status       string              `json:"status"`
	CraftCount   int                 `json:"craft_count"`
	TotalMatches int64               `json:"total_matches"`
	Crafts       []CraftMatchSummary `json:"crafts"`
	CreatedAt    time.Time           `json:"created_at"`
}
