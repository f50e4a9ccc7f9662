package services

import (
	"context"
	"testing"
	"time"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/auth"
	"crewlink_backend/internal/config"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/ratelimit"
	"crewlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPassword = "correct-horse-battery"

func newAuthFixture(t *testing.T, threshold int) (*AuthService, *fakeAgencyRepo) {
	t.Helper()

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.TTL = 60

	agencies := newFakeAgencyRepo()
	limiter := ratelimit.NewMemoryLimiter(15*time.Minute, threshold)
	return NewAuthService(agencies, limiter), agencies
}

func seedAgency(t *testing.T, agencies *fakeAgencyRepo, status models.AgencyStatus) *models.Agency {
	t.Helper()
	hash, err := auth.HashPassword(loginPassword)
	require.NoError(t, err)
	return agencies.add(&models.Agency{
		Name:         "Crew Staffing",
		Email:        "ops@crew.example",
		PasswordHash: hash,
		Status:       status,
	})
}

func TestLoginIssuesToken(t *testing.T) {
	svc, agencies := newAuthFixture(t, 5)
	agency := seedAgency(t, agencies, models.AgencyStatusActive)

	result, err := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "ops@crew.example",
		Password: loginPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, agency.ID, result.AgencyID)

	claims, err := auth.ParseToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, agency.ID, claims.AgencyID)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, agencies := newAuthFixture(t, 5)
	seedAgency(t, agencies, models.AgencyStatusActive)

	_, err := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "  OPS@crew.example ",
		Password: loginPassword,
	})
	require.NoError(t, err)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, agencies := newAuthFixture(t, 5)
	seedAgency(t, agencies, models.AgencyStatusActive)

	_, err := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "ops@crew.example",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestLoginUnknownAndSuspendedLookTheSame(t *testing.T) {
	svc, agencies := newAuthFixture(t, 5)
	seedAgency(t, agencies, models.AgencyStatusSuspended)

	_, suspendedErr := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "ops@crew.example",
		Password: loginPassword,
	})
	_, unknownErr := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "nobody@crew.example",
		Password: loginPassword,
	})

	assert.ErrorIs(t, suspendedErr, appErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, appErrors.ErrInvalidCredentials)
}

func TestLoginThrottlesAfterRepeatedFailures(t *testing.T) {
	threshold := 3
	svc, agencies := newAuthFixture(t, threshold)
	seedAgency(t, agencies, models.AgencyStatusActive)

	input := &dto.LoginInput{Email: "ops@crew.example", Password: "wrong-password"}
	for i := 0; i < threshold; i++ {
		_, err := svc.Login(context.Background(), input)
		assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials, "attempt %d", i+1)
	}

	// The next attempt is rejected before credentials are checked, even
	// with the right password.
	_, err := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "ops@crew.example",
		Password: loginPassword,
	})
	assert.ErrorIs(t, err, appErrors.ErrRateLimited)
}

func TestLoginThrottleIsPerEmail(t *testing.T) {
	threshold := 2
	svc, agencies := newAuthFixture(t, threshold)
	seedAgency(t, agencies, models.AgencyStatusActive)

	for i := 0; i < threshold; i++ {
		_, _ = svc.Login(context.Background(), &dto.LoginInput{
			Email:    "other@crew.example",
			Password: "wrong-password",
		})
	}

	// Failures against another account do not lock this one out.
	_, err := svc.Login(context.Background(), &dto.LoginInput{
		Email:    "ops@crew.example",
		Password: loginPassword,
	})
	require.NoError(t, err)
}
