package services

import (
	"testing"

	"crewlink_backend/internal/appErrors"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/repositories"
	"crewlink_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inboxAgencyID = "agency-1"

type notificationFixture struct {
	svc           *NotificationService
	notifications *fakeNotificationRepo
	responses     *fakeResponseRepo
}

func newNotificationFixture() *notificationFixture {
	f := &notificationFixture{
		notifications: newFakeNotificationRepo(),
		responses:     &fakeResponseRepo{},
	}
	f.svc = NewNotificationService(f.notifications, f.responses)
	return f
}

func (f *notificationFixture) seed(status models.NotificationStatus) *models.Notification {
	return f.notifications.add(&models.Notification{
		AgencyID: inboxAgencyID,
		Status:   status,
	})
}

func TestGetInboxFlipsDeliveryStatusesToNew(t *testing.T) {
	f := newNotificationFixture()
	pending := f.seed(models.NotificationStatusPending)
	sent := f.seed(models.NotificationStatusSent)
	failed := f.seed(models.NotificationStatusFailed)
	viewed := f.seed(models.NotificationStatusViewed)

	result, err := f.svc.GetInbox(inboxAgencyID, repositories.NotificationSearchCriteria{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Total)

	// Listing itself moves delivery-phase records into the agency phase.
	assert.Equal(t, models.NotificationStatusNew, f.notifications.get(pending.ID).Status)
	assert.Equal(t, models.NotificationStatusNew, f.notifications.get(sent.ID).Status)
	assert.Equal(t, models.NotificationStatusNew, f.notifications.get(failed.ID).Status)
	assert.Equal(t, models.NotificationStatusViewed, f.notifications.get(viewed.ID).Status)

	// The response already reflects the flip.
	for _, view := range result.Notifications {
		if view.ID == pending.ID {
			assert.Equal(t, models.NotificationStatusNew, view.Status)
		}
	}
}

func TestMarkViewedTransitionsFromNew(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusNew)

	require.NoError(t, f.svc.MarkViewed(n.ID, inboxAgencyID))

	stored := f.notifications.get(n.ID)
	assert.Equal(t, models.NotificationStatusViewed, stored.Status)
	assert.NotNil(t, stored.ViewedAt)
}

func TestMarkViewedIsIdempotent(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusNew)

	require.NoError(t, f.svc.MarkViewed(n.ID, inboxAgencyID))
	firstViewedAt := f.notifications.get(n.ID).ViewedAt

	require.NoError(t, f.svc.MarkViewed(n.ID, inboxAgencyID))
	assert.Equal(t, firstViewedAt, f.notifications.get(n.ID).ViewedAt)
}

func TestMarkViewedRejectsRegressionFromResponded(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusResponded)

	err := f.svc.MarkViewed(n.ID, inboxAgencyID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidNotificationStatus)
	assert.Equal(t, models.NotificationStatusResponded, f.notifications.get(n.ID).Status)
}

func TestMarkViewedHidesForeignRows(t *testing.T) {
	f := newNotificationFixture()
	n := f.notifications.add(&models.Notification{
		AgencyID: "someone-else",
		Status:   models.NotificationStatusNew,
	})

	err := f.svc.MarkViewed(n.ID, inboxAgencyID)
	assert.ErrorIs(t, err, appErrors.ErrNotificationNotFound)
}

func TestRespondPersistsResponseAndTransitions(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusViewed)

	interested := true
	err := f.svc.Respond(n.ID, inboxAgencyID, &dto.RespondInput{
		Interested: &interested,
		Message:    "We can staff this crew in two weeks.",
	})
	require.NoError(t, err)

	stored := f.notifications.get(n.ID)
	assert.Equal(t, models.NotificationStatusResponded, stored.Status)
	assert.NotNil(t, stored.RespondedAt)

	response, err := f.responses.FindByNotification(n.ID)
	require.NoError(t, err)
	assert.True(t, response.Interested)
	assert.Equal(t, inboxAgencyID, response.AgencyID)
}

func TestRespondRequiresViewedState(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusNew)

	interested := false
	err := f.svc.Respond(n.ID, inboxAgencyID, &dto.RespondInput{Interested: &interested})
	assert.ErrorIs(t, err, appErrors.ErrInvalidNotificationStatus)
	assert.Empty(t, f.responses.responses)
}

func TestArchiveAllowedFromAnyNonArchivedState(t *testing.T) {
	f := newNotificationFixture()

	for _, status := range []models.NotificationStatus{
		models.NotificationStatusPending,
		models.NotificationStatusSent,
		models.NotificationStatusFailed,
		models.NotificationStatusNew,
		models.NotificationStatusViewed,
		models.NotificationStatusResponded,
	} {
		n := f.seed(status)
		require.NoError(t, f.svc.Archive(n.ID, inboxAgencyID), "archive from %s", status)
		assert.Equal(t, models.NotificationStatusArchived, f.notifications.get(n.ID).Status)
	}
}

func TestArchiveIsTerminal(t *testing.T) {
	f := newNotificationFixture()
	n := f.seed(models.NotificationStatusArchived)

	assert.ErrorIs(t, f.svc.Archive(n.ID, inboxAgencyID), appErrors.ErrInvalidNotificationStatus)
	assert.ErrorIs(t, f.svc.MarkViewed(n.ID, inboxAgencyID), appErrors.ErrInvalidNotificationStatus)
}
