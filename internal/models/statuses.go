package models

type RequestStatus string
type NotificationStatus string
type AgencyStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusProcessed RequestStatus = "processed"
	RequestStatusClosed    RequestStatus = "closed"

	// Delivery phase, set by the fan-out dispatcher.
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"

	// Agency-facing phase. "new" is applied when the agency's inbox
	// first loads the record.
	NotificationStatusNew       NotificationStatus = "new"
	NotificationStatusViewed    NotificationStatus = "viewed"
	NotificationStatusResponded NotificationStatus = "responded"
	NotificationStatusArchived  NotificationStatus = "archived"

	AgencyStatusActive    AgencyStatus = "active"
	AgencyStatusSuspended AgencyStatus = "suspended"
)

// notificationTransitions is the single source of truth for allowed
// status edges. Callers never set a status directly.
var notificationTransitions = map[NotificationStatus][]NotificationStatus{
	NotificationStatusPending: {NotificationStatusSent, NotificationStatusFailed, NotificationStatusNew, NotificationStatusArchived},
	NotificationStatusSent:    {NotificationStatusNew, NotificationStatusArchived},
	NotificationStatusFailed:  {NotificationStatusNew, NotificationStatusArchived},
	NotificationStatusNew:     {NotificationStatusViewed, NotificationStatusArchived},
	NotificationStatusViewed:  {NotificationStatusResponded, NotificationStatusArchived},
	// responded keeps the response but can still be archived
	NotificationStatusResponded: {NotificationStatusArchived},
	// archived is terminal
	NotificationStatusArchived: {},
}

// CanTransitionNotification reports whether a notification may move
// from one status to another.
func CanTransitionNotification(from, to NotificationStatus) bool {
	for _, allowed := range notificationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
