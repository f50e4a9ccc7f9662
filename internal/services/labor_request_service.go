package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/email"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services/dto"

	"gorm.io/datatypes"
)

const confirmationTokenTTL = 24 * time.Hour

// AgencyMatcher is the external matching capability. The pipeline makes
// no assumption about its algorithm, ranking or determinism.
type AgencyMatcher interface {
	MatchTrades(tradeID, regionID string) ([]string, error)
}

type LaborRequestService struct {
	requestRepo      repositories.LaborRequestRepository
	craftRepo        repositories.CraftRequirementRepository
	notificationRepo repositories.NotificationRepository
	agencyRepo       repositories.AgencyRepository
	matcher          AgencyMatcher
	emailProvider    email.Provider
}

func NewLaborRequestService(
	requestRepo repositories.LaborRequestRepository,
	craftRepo repositories.CraftRequirementRepository,
	notificationRepo repositories.NotificationRepository,
	agencyRepo repositories.AgencyRepository,
	matcher AgencyMatcher,
	emailProvider email.Provider,
) *LaborRequestService {
	return &LaborRequestService{
		requestRepo:      requestRepo,
		craftRepo:        craftRepo,
		notificationRepo: notificationRepo,
		agencyRepo:       agencyRepo,
		matcher:          matcher,
		emailProvider:    emailProvider,
	}
}

// Submit runs the full intake pipeline: validate, persist the request
// and its crafts, match each craft against agencies and fan out one
// notification per (craft, matched agency) pair.
func (s *LaborRequestService) Submit(req *dto.SubmitRequestInput) (*dto.SubmitRequestResult, error) {
	// Cross-field checks the tag validator cannot express. Everything is
	// rejected here, before any write.
	for _, craft := range req.Crafts {
		if craft.PayRateMin != nil && craft.PayRateMax != nil && *craft.PayRateMax < *craft.PayRateMin {
			return nil, appErrors.NewBadRequestError("pay_rate_max cannot be less than pay_rate_min")
		}
	}

	token, err := generateConfirmationToken()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	now := time.Now()
	expires := now.Add(confirmationTokenTTL)

	request := &models.LaborRequest{
		ProjectName:              req.ProjectName,
		CompanyName:              req.CompanyName,
		ContactEmail:             req.ContactEmail,
		ContactPhone:             req.ContactPhone,
		AdditionalDetails:        req.AdditionalDetails,
		Status:                   models.RequestStatusPending,
		ConfirmationToken:        token,
		ConfirmationTokenExpires: &expires,
	}

	if err := s.requestRepo.CreateRequest(request); err != nil {
		logger.WithError(err).Error("failed to persist labor request", "company", req.CompanyName)
		return nil, appErrors.ErrRequestCreationFailed
	}

	crafts := make([]*models.CraftRequirement, 0, len(req.Crafts))
	for _, c := range req.Crafts {
		crafts = append(crafts, &models.CraftRequirement{
			LaborRequestID:  request.ID,
			TradeID:         c.TradeID,
			RegionID:        c.RegionID,
			ExperienceLevel: c.ExperienceLevel,
			WorkerCount:     c.WorkerCount,
			StartDate:       c.StartDate,
			DurationDays:    c.DurationDays,
			HoursPerWeek:    c.HoursPerWeek,
			PayRateMin:      c.PayRateMin,
			PayRateMax:      c.PayRateMax,
			PerDiemRate:     c.PerDiemRate,
			Notes:           c.Notes,
		})
	}

	if err := s.craftRepo.CreateBatch(crafts); err != nil {
		// Compensating delete, not a transaction. A failed delete leaves
		// an orphaned request behind; it is logged and accepted.
		logger.WithError(err).Error("failed to persist craft requirements", "request_id", request.ID)
		if delErr := s.requestRepo.DeleteRequest(request.ID); delErr != nil {
			logger.WithError(delErr).Error("compensating delete of labor request failed", "request_id", request.ID)
		}
		return nil, appErrors.ErrRequestCreationFailed
	}

	totalMatches := 0
	matchesByCraft := make(map[string]int, len(crafts))

	for _, craft := range crafts {
		agencyIDs, err := s.matcher.MatchTrades(craft.TradeID, craft.RegionID)
		if err != nil {
			// Partial degradation: a failed match counts as zero matches
			// for this craft, the submission itself still succeeds.
			logger.WithError(err).Warn("agency matching failed for craft",
				"craft_id", craft.ID, "trade_id", craft.TradeID, "region_id", craft.RegionID)
			matchesByCraft[craft.ID] = 0
			continue
		}

		matchesByCraft[craft.ID] = len(agencyIDs)
		totalMatches += len(agencyIDs)

		s.fanOutNotifications(request, craft, agencyIDs)
	}

	if err := s.requestRepo.UpdateRequestStatus(request.ID, models.RequestStatusProcessed); err != nil {
		logger.WithError(err).Warn("failed to mark labor request processed", "request_id", request.ID)
	}

	return &dto.SubmitRequestResult{
		RequestID:         request.ID,
		ConfirmationToken: token,
		TotalMatches:      totalMatches,
		MatchesByCraft:    matchesByCraft,
	}, nil
}

// fanOutNotifications creates one pending notification per matched
// agency on the system write path and triggers delivery. Insert errors
// do not abort the craft: a craft that lands zero notifications is not
// retried here.
func (s *LaborRequestService) fanOutNotifications(request *models.LaborRequest, craft *models.CraftRequirement, agencyIDs []string) {
	if len(agencyIDs) == 0 {
		return
	}

	meta, _ := json.Marshal(map[string]string{
		"trade_id":  craft.TradeID,
		"region_id": craft.RegionID,
	})

	notifications := make([]*models.Notification, 0, len(agencyIDs))
	for _, agencyID := range agencyIDs {
		notifications = append(notifications, &models.Notification{
			LaborRequestID: request.ID,
			CraftID:        craft.ID,
			AgencyID:       agencyID,
			Status:         models.NotificationStatusPending,
			Data:           datatypes.JSON(meta),
		})
	}

	if err := s.notificationRepo.CreateBulkAsSystem(notifications); err != nil {
		logger.WithError(err).Error("notification fan-out insert failed",
			"craft_id", craft.ID, "agency_count", len(agencyIDs))
		return
	}

	go s.DispatchDelivery(request, craft, notifications)
}

// DispatchDelivery emails each notified agency and records the delivery
// outcome on the notification (pending -> sent/failed).
func (s *LaborRequestService) DispatchDelivery(request *models.LaborRequest, craft *models.CraftRequirement, notifications []*models.Notification) {
	tradeName := "Unknown Trade"
	if craft.Trade != nil {
		tradeName = craft.Trade.Name
	}
	subject, body := email.NewCraftNotification(request.ProjectName, tradeName, craft.WorkerCount)

	for _, n := range notifications {
		agency, err := s.agencyRepo.FindAgencyByID(n.AgencyID)
		if err != nil {
			s.recordDeliveryFailure(n.ID, "agency lookup failed")
			continue
		}

		sendErr := s.emailProvider.Send(&email.Email{
			To:      []string{agency.Email},
			Subject: subject,
			Body:    body,
		})
		if sendErr != nil {
			s.recordDeliveryFailure(n.ID, sendErr.Error())
			continue
		}

		if err := s.notificationRepo.MarkSent(n.ID, time.Now()); err != nil {
			logger.WithError(err).Warn("failed to mark notification sent", "notification_id", n.ID)
		}
	}
}

func (s *LaborRequestService) recordDeliveryFailure(notificationID, reason string) {
	if err := s.notificationRepo.MarkDeliveryFailed(notificationID, reason); err != nil {
		logger.WithError(err).Warn("failed to record delivery failure", "notification_id", notificationID)
	}
}

// generateConfirmationToken returns 32 cryptographically random bytes
// as 64 lowercase hex characters.
func generateConfirmationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
