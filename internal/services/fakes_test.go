package services

import (
	"errors"
	"sync"
	"time"

	"crewlink_backend/internal/email"
	"crewlink_backend/internal/models"
	"crewlink_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository doubles. Everything is mutex-guarded because the
// fan-out dispatcher runs on its own goroutine.

type fakeRequestRepo struct {
	mu         sync.Mutex
	requests   map[string]*models.LaborRequest
	deleted    []string
	failCreate bool
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.LaborRequest)}
}

func (r *fakeRequestRepo) CreateRequest(request *models.LaborRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("insert failed")
	}
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) FindRequestByID(id string) (*models.LaborRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, repositories.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeRequestRepo) FindRequestByToken(token string) (*models.LaborRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.ConfirmationToken == token {
			return req, nil
		}
	}
	return nil, repositories.ErrRequestNotFound
}

func (r *fakeRequestRepo) UpdateRequestStatus(id string, status models.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return repositories.ErrRequestNotFound
	}
	req.Status = status
	return nil
}

func (r *fakeRequestRepo) DeleteRequest(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRequestRepo) CountRequests() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.requests)), nil
}

type fakeCraftRepo struct {
	mu         sync.Mutex
	crafts     []*models.CraftRequirement
	failCreate bool
}

func (r *fakeCraftRepo) CreateBatch(crafts []*models.CraftRequirement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("batch insert failed")
	}
	for _, c := range crafts {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
	}
	r.crafts = append(r.crafts, crafts...)
	return nil
}

func (r *fakeCraftRepo) FindByRequest(requestID string) ([]models.CraftRequirement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CraftRequirement
	for _, c := range r.crafts {
		if c.LaborRequestID == requestID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*models.Notification
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*models.Notification)}
}

func (r *fakeNotificationRepo) add(n *models.Notification) *models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.notifications[n.ID] = n
	return n
}

func (r *fakeNotificationRepo) get(id string) *models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notifications[id]
}

func (r *fakeNotificationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notifications)
}

func (r *fakeNotificationRepo) CreateBulkAsSystem(notifications []*models.Notification) error {
	r.mu.Lock()
	if r.failCreate {
		r.mu.Unlock()
		return errors.New("bulk insert failed")
	}
	r.mu.Unlock()
	for _, n := range notifications {
		r.add(n)
	}
	return nil
}

func (r *fakeNotificationRepo) FindAgencyNotification(id, agencyID string) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.AgencyID != agencyID {
		return nil, repositories.ErrNotificationNotFound
	}
	copied := *n
	return &copied, nil
}

func (r *fakeNotificationRepo) FindAgencyNotifications(agencyID string, criteria repositories.NotificationSearchCriteria) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.AgencyID != agencyID {
			continue
		}
		if criteria.Status != "" && n.Status != criteria.Status {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkSent(id string, at time.Time) error {
	return r.update(id, func(n *models.Notification) {
		n.Status = models.NotificationStatusSent
		n.SentAt = &at
	})
}

func (r *fakeNotificationRepo) MarkDeliveryFailed(id string, deliveryError string) error {
	return r.update(id, func(n *models.Notification) {
		n.Status = models.NotificationStatusFailed
		n.DeliveryError = &deliveryError
	})
}

func (r *fakeNotificationRepo) MarkManyNew(ids []string) error {
	for _, id := range ids {
		if err := r.update(id, func(n *models.Notification) {
			n.Status = models.NotificationStatusNew
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkViewed(id string, at time.Time) error {
	return r.update(id, func(n *models.Notification) {
		n.Status = models.NotificationStatusViewed
		n.ViewedAt = &at
	})
}

func (r *fakeNotificationRepo) MarkResponded(id string, at time.Time) error {
	return r.update(id, func(n *models.Notification) {
		n.Status = models.NotificationStatusResponded
		n.RespondedAt = &at
	})
}

func (r *fakeNotificationRepo) MarkArchived(id string) error {
	return r.update(id, func(n *models.Notification) {
		n.Status = models.NotificationStatusArchived
	})
}

func (r *fakeNotificationRepo) update(id string, fn func(*models.Notification)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return repositories.ErrNotificationNotFound
	}
	fn(n)
	return nil
}

func (r *fakeNotificationRepo) CountByCraft(requestID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, n := range r.notifications {
		if n.LaborRequestID == requestID {
			counts[n.CraftID]++
		}
	}
	return counts, nil
}

func (r *fakeNotificationRepo) GetPlatformStats() (*repositories.PlatformNotificationStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repositories.PlatformNotificationStats{ByStatus: make(map[string]int64)}
	for _, n := range r.notifications {
		stats.TotalNotifications++
		stats.ByStatus[string(n.Status)]++
	}
	return stats, nil
}

type fakeAgencyRepo struct {
	mu       sync.Mutex
	agencies map[string]*models.Agency
}

func newFakeAgencyRepo() *fakeAgencyRepo {
	return &fakeAgencyRepo{agencies: make(map[string]*models.Agency)}
}

func (r *fakeAgencyRepo) add(a *models.Agency) *models.Agency {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.agencies[a.ID] = a
	return a
}

func (r *fakeAgencyRepo) CreateAgency(agency *models.Agency) error {
	r.add(agency)
	return nil
}

func (r *fakeAgencyRepo) FindAgencyByID(id string) (*models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.agencies[id]
	if !ok {
		return nil, repositories.ErrAgencyNotFound
	}
	return a, nil
}

func (r *fakeAgencyRepo) FindAgencyByEmail(email string) (*models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.agencies {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, repositories.ErrAgencyNotFound
}

func (r *fakeAgencyRepo) FindActiveByCoverage(tradeID, regionID string) ([]models.Agency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Agency
	for _, a := range r.agencies {
		if a.Status == models.AgencyStatusActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeResponseRepo struct {
	mu        sync.Mutex
	responses []*models.AgencyResponse
}

func (r *fakeResponseRepo) CreateResponse(response *models.AgencyResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	r.responses = append(r.responses, response)
	return nil
}

func (r *fakeResponseRepo) FindByNotification(notificationID string) (*models.AgencyResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, resp := range r.responses {
		if resp.NotificationID == notificationID {
			return resp, nil
		}
	}
	return nil, errors.New("response not found")
}

// fakeMatcher returns canned agency lists per trade id.
type fakeMatcher struct {
	matches map[string][]string
	errs    map[string]error
}

func (m *fakeMatcher) MatchTrades(tradeID, regionID string) ([]string, error) {
	if err := m.errs[tradeID]; err != nil {
		return nil, err
	}
	return m.matches[tradeID], nil
}

// fakeEmailProvider records sends and can be told to fail.
type fakeEmailProvider struct {
	mu       sync.Mutex
	sent     []*email.Email
	failNext bool
}

func (p *fakeEmailProvider) Send(msg *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext {
		p.failNext = false
		return errors.New("smtp unavailable")
	}
	p.sent = append(p.sent, msg)
	return nil
}

func (p *fakeEmailProvider) sentCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sent)
}
