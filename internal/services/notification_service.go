package services

import (
	"errors"
	"time"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/logger"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services/dto"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	responseRepo     repositories.AgencyResponseRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	responseRepo repositories.AgencyResponseRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		responseRepo:     responseRepo,
	}
}

// GetInbox lists the agency's notifications. Listing is a read with a
// side effect: delivery-phase records (pending/sent/failed) flip to
// "new" once the agency has seen its inbox.
func (s *NotificationService) GetInbox(agencyID string, criteria repositories.NotificationSearchCriteria) (*dto.NotificationListResult, error) {
	notifications, total, err := s.notificationRepo.FindAgencyNotifications(agencyID, criteria)
	if err != nil {
		logger.WithError(err).Error("failed to load agency inbox", "agency_id", agencyID)
		return nil, appErrors.InternalError(err)
	}

	var freshIDs []string
	for i := range notifications {
		if models.CanTransitionNotification(notifications[i].Status, models.NotificationStatusNew) {
			freshIDs = append(freshIDs, notifications[i].ID)
			notifications[i].Status = models.NotificationStatusNew
		}
	}

	if len(freshIDs) > 0 {
		if err := s.notificationRepo.MarkManyNew(freshIDs); err != nil {
			logger.WithError(err).Warn("failed to mark inbox notifications new", "agency_id", agencyID)
		}
	}

	views := make([]dto.NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, toNotificationView(&notifications[i]))
	}

	return &dto.NotificationListResult{
		Notifications: views,
		Total:         total,
	}, nil
}

// MarkViewed records that the agency opened a notification. Calling it
// on an already-viewed record is a no-op, not an error.
func (s *NotificationService) MarkViewed(id, agencyID string) error {
	notification, err := s.findOwned(id, agencyID)
	if err != nil {
		return err
	}

	if notification.Status == models.NotificationStatusViewed {
		return nil
	}

	if !models.CanTransitionNotification(notification.Status, models.NotificationStatusViewed) {
		return appErrors.ErrInvalidNotificationStatus
	}

	if err := s.notificationRepo.MarkViewed(id, time.Now()); err != nil {
		return s.mapRepoError(err)
	}
	return nil
}

// Respond records the agency's interest decision and moves the
// notification to "responded". One response per notification.
func (s *NotificationService) Respond(id, agencyID string, input *dto.RespondInput) error {
	notification, err := s.findOwned(id, agencyID)
	if err != nil {
		return err
	}

	if !models.CanTransitionNotification(notification.Status, models.NotificationStatusResponded) {
		return appErrors.ErrInvalidNotificationStatus
	}

	response := &models.AgencyResponse{
		NotificationID: id,
		AgencyID:       agencyID,
		Interested:     *input.Interested,
		Message:        input.Message,
	}
	if err := s.responseRepo.CreateResponse(response); err != nil {
		logger.WithError(err).Error("failed to persist agency response", "notification_id", id)
		return appErrors.InternalError(err)
	}

	if err := s.notificationRepo.MarkResponded(id, time.Now()); err != nil {
		return s.mapRepoError(err)
	}
	return nil
}

// Archive removes the notification from the agency's working set. Any
// non-archived record may be archived; archived is terminal.
func (s *NotificationService) Archive(id, agencyID string) error {
	notification, err := s.findOwned(id, agencyID)
	if err != nil {
		return err
	}

	if !models.CanTransitionNotification(notification.Status, models.NotificationStatusArchived) {
		return appErrors.ErrInvalidNotificationStatus
	}

	if err := s.notificationRepo.MarkArchived(id); err != nil {
		return s.mapRepoError(err)
	}
	return nil
}

func (s *NotificationService) findOwned(id, agencyID string) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindAgencyNotification(id, agencyID)
	if err != nil {
		return nil, s.mapRepoError(err)
	}
	return notification, nil
}

func (s *NotificationService) mapRepoError(err error) *appErrors.AppError {
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		// Rows owned by other agencies surface as not found, never as
		// forbidden: existence is not disclosed across tenants.
		return appErrors.ErrNotificationNotFound
	}
	return appErrors.InternalError(err)
}

func toNotificationView(n *models.Notification) dto.NotificationView {
	view := dto.NotificationView{
		ID:          n.ID,
		Status:      n.Status,
		SentAt:      n.SentAt,
		ViewedAt:    n.ViewedAt,
		RespondedAt: n.RespondedAt,
		CreatedAt:   n.CreatedAt,
	}
	if n.LaborRequest != nil {
		view.ProjectName = n.LaborRequest.ProjectName
		view.CompanyName = n.LaborRequest.CompanyName
	}
	if n.Craft != nil {
		view.WorkerCount = n.Craft.WorkerCount
		start := n.Craft.StartDate
		view.StartDate = &start
		if n.Craft.Trade != nil {
			view.TradeName = n.Craft.Trade.Name
		}
	}
	return view
}
