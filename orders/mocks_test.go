package orders

import (
	"context"
	"errors"
	"sort"
	"sync"

	"mandi/models"
	"mandi/notify"
)

// in-memory Repository double
type memRepo struct {
	mu         sync.Mutex
	orders     []models.Order
	failInsert bool
	saves      int
}

func (m *memRepo) Insert(_ context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInsert {
		return errors.New("insert failed")
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *memRepo) Get(_ context.Context, orderID string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (m *memRepo) List(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// reverse insertion order, then a stable sort by createdAt desc keeps
	// later-inserted orders first among equal timestamps
	var result []models.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			result = append(result, m.orders[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *memRepo) SaveTimeline(_ context.Context, orderID string, timeline []models.OrderStatusEvent, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			m.orders[i].Timeline = timeline
			m.orders[i].Status = status
			m.saves++
			return nil
		}
	}
	return ErrOrderNotFound
}

func (m *memRepo) ListUndelivered(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []models.Order
	for _, o := range m.orders {
		if o.Status != "delivered" {
			result = append(result, o)
		}
	}
	return result, nil
}

// in-memory CommitLock double
type memLock struct {
	mu       sync.Mutex
	held     map[string]bool
	releases int
}

func (l *memLock) Acquire(_ context.Context, userID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held == nil {
		l.held = make(map[string]bool)
	}
	if l.held[userID] {
		return false, nil
	}
	l.held[userID] = true
	return true, nil
}

func (l *memLock) Release(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, userID)
	l.releases++
}

// notifier double that records what was emitted
type recordingNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (n *recordingNotifier) Notify(title, _ string, _ notify.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.titles = append(n.titles, title)
}

func testProduct(id, title string) models.Product {
	return models.Product{
		ProductID:   id,
		Title:       title,
		PriceRange:  models.PriceRange{Min: 10, Max: 100},
		SellerID:    "seller1",
		SellerName:  "Green Valley Farms",
		QualityTier: "verified",
		Category:    "vegetable",
		Unit:        "kg",
	}
}
