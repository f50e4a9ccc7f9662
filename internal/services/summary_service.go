package services

import (
	"errors"
	"regexp"
	"time"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services/dto"
	"crewlink_backend/internal/utils"
)

// Token format is checked before touching storage so malformed values
// never reach the query.
var confirmationTokenPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

type SummaryService struct {
	requestRepo      repositories.LaborRequestRepository
	notificationRepo repositories.NotificationRepository
}

func NewSummaryService(
	requestRepo repositories.LaborRequestRepository,
	notificationRepo repositories.NotificationRepository,
) *SummaryService {
	return &SummaryService{
		requestRepo:      requestRepo,
		notificationRepo: notificationRepo,
	}
}

// GetByToken returns the masked submission summary for a confirmation
// token. Unknown tokens are not found; known-but-expired tokens are
// gone, which tells the submitter the link worked once.
func (s *SummaryService) GetByToken(token string) (*dto.RequestSummary, error) {
	if !confirmationTokenPattern.MatchString(token) {
		return nil, appErrors.ErrSummaryTokenInvalid
	}

	request, err := s.requestRepo.FindRequestByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, appErrors.ErrRequestNotFound
		}
		logger.WithError(err).Error("failed to load request by token")
		return nil, appErrors.InternalError(err)
	}

	// A missing expiry means the token was never valid for lookup.
	if request.ConfirmationTokenExpires == nil || time.Now().After(*request.ConfirmationTokenExpires) {
		return nil, appErrors.ErrSummaryTokenExpired
	}

	counts, err := s.notificationRepo.CountByCraft(request.ID)
	if err != nil {
		logger.WithError(err).Error("failed to count notifications per craft", "request_id", request.ID)
		return nil, appErrors.InternalError(err)
	}

	summary := &dto.RequestSummary{
		RequestID:    request.ID,
		ProjectName:  request.ProjectName,
		CompanyName:  request.CompanyName,
		ContactEmail: utils.MaskEmail(request.ContactEmail),
		ContactPhone: utils.MaskPhone(request.ContactPhone),
		Status:       string(request.Status),
		CraftCount:   len(request.Crafts),
		Crafts:       make([]dto.CraftMatchSummary, 0, len(request.Crafts)),
		CreatedAt:    request.CreatedAt,
	}

	for i := range request.Crafts {
		craft := &request.Crafts[i]
		tradeName := "Unknown Trade"
		if craft.Trade != nil {
			tradeName = craft.Trade.Name
		}
		matchCount := counts[craft.ID]
		summary.TotalMatches += matchCount
		summary.Crafts = append(summary.Crafts, dto.CraftMatchSummary{
			CraftID:    craft.ID,
			TradeName:  tradeName,
			MatchCount: matchCount,
		})
	}

	return summary, nil
}
