package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/auth"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/ratelimit"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services/dto"
)

type AuthService struct {
	agencyRepo repositories.AgencyRepository
	limiter    ratelimit.Limiter
}

func NewAuthService(agencyRepo repositories.AgencyRepository, limiter ratelimit.Limiter) *AuthService {
	return &AuthService{
		agencyRepo: agencyRepo,
		limiter:    limiter,
	}
}

// Login authenticates an agency account. Failed attempts are counted
// per normalized email; once the window threshold is crossed, further
// attempts are rejected before credentials are checked.
func (s *AuthService) Login(ctx context.Context, input *dto.LoginInput) (*dto.LoginResult, error) {
	key := ratelimit.HashKey(strings.ToLower(strings.TrimSpace(input.Email)))

	result, err := s.limiter.Check(ctx, key)
	if err != nil {
		// Limiter trouble never locks agencies out.
		logger.WithError(err).Warn("rate limiter check failed, allowing attempt")
	} else if !result.Allowed {
		return nil, appErrors.ErrRateLimited.WithDetails(map[string]interface{}{
			"retry_after_seconds": result.RetryAfter(time.Now()),
		})
	}

	agency, err := s.agencyRepo.FindAgencyByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrAgencyNotFound) {
			s.recordFailure(ctx, key)
			return nil, appErrors.ErrInvalidCredentials
		}
		logger.WithError(err).Error("failed to load agency for login")
		return nil, appErrors.InternalError(err)
	}

	if agency.Status != models.AgencyStatusActive {
		// Suspended accounts get the same answer as bad passwords.
		s.recordFailure(ctx, key)
		return nil, appErrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(input.Password, agency.PasswordHash) {
		s.recordFailure(ctx, key)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(agency.ID)
	if err != nil {
		logger.WithError(err).Error("failed to issue access token", "agency_id", agency.ID)
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResult{
		AccessToken: token,
		AgencyID:    agency.ID,
		AgencyName:  agency.Name,
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, key string) {
	if err := s.limiter.RecordFailure(ctx, key); err != nil {
		logger.WithError(err).Warn("failed to record login failure")
	}
}
