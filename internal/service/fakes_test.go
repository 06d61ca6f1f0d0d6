package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/khadamat/backend/internal/hashing"
	"github.com/khadamat/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// In-memory repository doubles. They mimic the store contracts the GORM
// repositories provide, including unique-key behavior.

type memUsers struct {
	mu   sync.Mutex
	seq  uint
	byID map[uint]*models.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[uint]*models.User)}
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.MobileNumber == u.MobileNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUsers) GetByMobileNumber(_ context.Context, number string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.MobileNumber == number {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) ExistsByMobileNumber(ctx context.Context, number string) (bool, error) {
	u, err := m.GetByMobileNumber(ctx, number)
	return u != nil, err
}

func (m *memUsers) Update(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) UpdatePassword(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.byID[u.ID]; ok {
		stored.PasswordHash = u.PasswordHash
	}
	return nil
}

func (m *memUsers) ListAll(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memServices struct {
	mu   sync.Mutex
	seq  uint
	byID map[uint]*models.Service
}

func newMemServices() *memServices {
	return &memServices{byID: make(map[uint]*models.Service)}
}

func (m *memServices) GetByID(_ context.Context, id uint) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (m *memServices) List(_ context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Service, 0, len(m.byID))
	for _, s := range m.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memServices) GetOrCreateByType(_ context.Context, svc *models.Service) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.byID {
		if s.ServiceType == svc.ServiceType {
			*svc = *s
			return false, nil
		}
	}
	m.seq++
	svc.ID = m.seq
	cp := *svc
	m.byID[svc.ID] = &cp
	return true, nil
}

// memStore backs both OrderRepo and TrackingRepo so the checkout
// transaction has a single place to succeed or fail atomically.
type memStore struct {
	mu           sync.Mutex
	orderSeq     uint
	trackSeq     uint
	orders       map[uint]*models.Order
	tracking     map[uint]*models.OrderTracking // keyed by order ID
	failTracking bool
}

func newMemStore() *memStore {
	return &memStore{
		orders:   make(map[uint]*models.Order),
		tracking: make(map[uint]*models.OrderTracking),
	}
}

func (m *memStore) CreateWithTracking(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTracking {
		return errors.New("tracking insert failed")
	}
	m.orderSeq++
	o.ID = m.orderSeq
	o.CreatedAt = time.Now().Add(time.Duration(m.orderSeq) * time.Millisecond)
	cp := *o
	m.orders[o.ID] = &cp

	m.trackSeq++
	t := &models.OrderTracking{
		OrderID:               o.ID,
		RemainingDeliveryTime: o.EstimatedDeliveryTime,
	}
	t.ID = m.trackSeq
	m.tracking[o.ID] = t
	o.Tracking = t
	return nil
}

func (m *memStore) GetByIDForUser(_ context.Context, id, userID uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok && o.UserID == userID {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) ListByUser(_ context.Context, userID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) UpdateStatus(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.orders[o.ID]; ok {
		stored.Status = o.Status
	}
	return nil
}

func (m *memStore) GetOrCreate(_ context.Context, orderID uint, remaining int) (*models.OrderTracking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tracking[orderID]; ok {
		cp := *t
		return &cp, nil
	}
	m.trackSeq++
	t := &models.OrderTracking{
		OrderID:               orderID,
		RemainingDeliveryTime: remaining,
	}
	t.ID = m.trackSeq
	m.tracking[orderID] = t
	cp := *t
	return &cp, nil
}

func (m *memStore) dropTracking(orderID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tracking, orderID)
}

// countingHasher wraps the real bcrypt hasher (at MinCost) and records
// dummy comparisons so tests can assert the constant-work branch ran.
type countingHasher struct {
	*hashing.Bcrypt
	dummyCalls int
}

func newCountingHasher() *countingHasher {
	return &countingHasher{Bcrypt: hashing.NewBcrypt(bcrypt.MinCost)}
}

func (h *countingHasher) DummyCompare(password string) {
	h.dummyCalls++
	h.Bcrypt.DummyCompare(password)
}

type staticTokens struct {
	mu sync.Mutex
	n  int
}

func (t *staticTokens) Issue(userID uint) (string, string, time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n++
	jti := fmt.Sprintf("jti-%d-%d", userID, t.n)
	return "token-" + jti, jti, time.Now().Add(time.Hour), nil
}
