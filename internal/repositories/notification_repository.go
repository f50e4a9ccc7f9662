package repositories

import (
	"errors"
	"time"

	"crewlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationSearchCriteria filters an agency's inbox. Query is a
// free-text term matched against the originating request; wildcard
// characters in it are escaped before use.
type NotificationSearchCriteria struct {
	Query    string                    `form:"q" json:"q" validate:"omitempty,max=200"`
	Status   models.NotificationStatus `form:"status" json:"status" validate:"omitempty,is-notification-status"`
	Page     int                       `form:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int                       `form:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}

// PlatformNotificationStats feeds the monitoring endpoint.
type PlatformNotificationStats struct {
	TotalNotifications int64            `json:"total_notifications"`
	ByStatus           map[string]int64 `json:"by_status"`
}

type NotificationRepository interface {
	// CreateBulkAsSystem inserts fan-out records on the elevated write
	// path: the acting principal is the system, not the notified agency,
	// so no agency-scoped predicate applies.
	CreateBulkAsSystem(notifications []*models.Notification) error

	// FindAgencyNotification is the row-authorized read: the record must
	// belong to the calling agency.
	FindAgencyNotification(id, agencyID string) (*models.Notification, error)

	// FindAgencyNotifications lists (and searches) the agency inbox.
	FindAgencyNotifications(agencyID string, criteria NotificationSearchCriteria) ([]models.Notification, int64, error)

	// Delivery-phase updates, driven by the fan-out dispatcher.
	MarkSent(id string, at time.Time) error
	MarkDeliveryFailed(id string, deliveryError string) error

	// Agency-phase updates, driven by the lifecycle manager.
	MarkManyNew(ids []string) error
	MarkViewed(id string, at time.Time) error
	MarkResponded(id string, at time.Time) error
	MarkArchived(id string) error

	// CountByCraft returns notification counts per craft for a request.
	CountByCraft(requestID string) (map[string]int64, error)

	GetPlatformStats() (*PlatformNotificationStats, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateBulkAsSystem(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.Create(notifications).Error
}

func (r *NotificationRepositoryImpl) FindAgencyNotification(id, agencyID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Preload("Craft").Preload("Craft.Trade").Preload("LaborRequest").
		First(&notification, "id = ? AND agency_id = ?", id, agencyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindAgencyNotifications(agencyID string, criteria NotificationSearchCriteria) ([]models.Notification, int64, error) {
	query := r.db.Model(&models.Notification{}).
		Joins("JOIN labor_requests ON labor_requests.id = notifications.labor_request_id").
		Where("notifications.agency_id = ?", agencyID)

	if criteria.Query != "" {
		search := "%" + EscapeLikePattern(criteria.Query) + "%"
		query = query.Where("labor_requests.project_name ILIKE ? OR labor_requests.company_name ILIKE ?", search, search)
	}

	if criteria.Status != "" {
		query = query.Where("notifications.status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var notifications []models.Notification
	err := query.Preload("Craft").Preload("Craft.Trade").Preload("LaborRequest").
		Order("notifications.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) MarkSent(id string, at time.Time) error {
	return r.updateFields(id, map[string]interface{}{
		"status":  models.NotificationStatusSent,
		"sent_at": at,
	})
}

func (r *NotificationRepositoryImpl) MarkDeliveryFailed(id string, deliveryError string) error {
	return r.updateFields(id, map[string]interface{}{
		"status":         models.NotificationStatusFailed,
		"delivery_error": deliveryError,
	})
}

func (r *NotificationRepositoryImpl) MarkManyNew(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Notification{}).
		Where("id IN ?", ids).
		Update("status", models.NotificationStatusNew).Error
}

func (r *NotificationRepositoryImpl) MarkViewed(id string, at time.Time) error {
	return r.updateFields(id, map[string]interface{}{
		"status":    models.NotificationStatusViewed,
		"viewed_at": at,
	})
}

func (r *NotificationRepositoryImpl) MarkResponded(id string, at time.Time) error {
	return r.updateFields(id, map[string]interface{}{
		"status":       models.NotificationStatusResponded,
		"responded_at": at,
	})
}

func (r *NotificationRepositoryImpl) MarkArchived(id string) error {
	return r.updateFields(id, map[string]interface{}{
		"status": models.NotificationStatusArchived,
	})
}

// No optimistic locking here: two concurrent updates against the same
// record resolve as last-write-wins at the storage layer.
func (r *NotificationRepositoryImpl) updateFields(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountByCraft(requestID string) (map[string]int64, error) {
	type row struct {
		CraftID string
		Count   int64
	}
	var rows []row
	err := r.db.Model(&models.Notification{}).
		Select("craft_id, COUNT(*) as count").
		Where("labor_request_id = ?", requestID).
		Group("craft_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.CraftID] = r.Count
	}
	return counts, nil
}

func (r *NotificationRepositoryImpl) GetPlatformStats() (*PlatformNotificationStats, error) {
	stats := &PlatformNotificationStats{ByStatus: make(map[string]int64)}

	if err := r.db.Model(&models.Notification{}).Count(&stats.TotalNotifications).Error; err != nil {
		return nil, err
	}

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Notification{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.Count
	}

	return stats, nil
}
