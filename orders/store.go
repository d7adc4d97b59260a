package orders

import (
	"context"
	"log"
	"time"

	"mandi/models"
)

// Store is the read side. Every read re-derives the timeline from elapsed
// wall-clock time before returning, so a freshly loaded order reflects the
// transitions that should have fired even if no process was around to append
// them — fulfilment progress survives reloads.
type Store struct {
	Repo Repository
	Now  func() time.Time
}

func NewStore(repo Repository) *Store {
	return &Store{Repo: repo, Now: time.Now}
}

func (s *Store) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	order, err := s.Repo.Get(ctx, orderID)
	if err != nil {
		return models.Order{}, err
	}
	s.refresh(ctx, &order)
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	result, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range result {
		s.refresh(ctx, &result[i])
	}
	return result, nil
}

// refresh materializes any events that have fired since the timeline was
// last stored. Derivation is deterministic, so writing it back is idempotent;
// a best-effort failure to persist only means the next read re-derives.
func (s *Store) refresh(ctx context.Context, order *models.Order) {
	derived := DeriveTimeline(order.CreatedAt, s.Now())
	if len(derived) <= len(order.Timeline) {
		return
	}
	order.Timeline = derived
	order.Status = StatusBadge(derived)
	if err := s.Repo.SaveTimeline(ctx, order.OrderID, derived, order.Status); err != nil {
		log.Printf("order %s: timeline save failed: %v", order.OrderID, err)
	}
}
