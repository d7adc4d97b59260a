package cart

import (
	"fmt"
	"sync"

	"mandi/models"
	"mandi/notify"
)

// Store holds the line items for one user session. It is an explicit state
// object: callers get it from a Sessions registry and pass it by reference,
// nothing here lives in ambient globals.
//
// Every mutation is total: invalid quantities are normalized (AddItem clamps
// to 1, UpdateQuantity treats <= 0 as removal) and unknown product ids are
// no-ops, so none of these methods can fail.
type Store struct {
	mu       sync.Mutex
	lines    []models.CartLine
	notifier notify.Notifier
}

func NewStore(n notify.Notifier) *Store {
	if n == nil {
		n = notify.LogNotifier{}
	}
	return &Store{notifier: n}
}

// AddItem puts product in the cart. If a line for the product already exists
// its quantity is incremented and the original unit price is kept; otherwise
// a new line is appended. Quantities below 1 are clamped to 1.
// Returns true when an existing line was updated, false when a line was added.
func (s *Store) AddItem(p models.Product, quantity int, unitPrice float64) bool {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	updated := false
	for i := range s.lines {
		if s.lines[i].Product.ProductID == p.ProductID {
			s.lines[i].Quantity += quantity
			updated = true
			break
		}
	}
	if !updated {
		s.lines = append(s.lines, models.CartLine{Product: p, Quantity: quantity, UnitPrice: unitPrice})
	}
	s.mu.Unlock()

	if updated {
		s.notifier.Notify("Cart Updated", fmt.Sprintf("Updated %s quantity in cart", p.Title), notify.SeverityInfo)
	} else {
		s.notifier.Notify("Added to Cart", fmt.Sprintf("%s added to your cart", p.Title), notify.SeverityInfo)
	}
	return updated
}

// RemoveItem deletes the line for productID. Unknown ids are a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	removed := false
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.Product.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	s.lines = kept
	s.mu.Unlock()

	if removed {
		s.notifier.Notify("Removed from Cart", "Item removed from your cart", notify.SeverityInfo)
	}
}

// UpdateQuantity sets the line's quantity to exactly quantity (absolute, not
// additive). Zero or negative removes the line. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ProductID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Snapshot returns a deep copy of the lines plus the total, taken under a
// single lock so the pair is consistent. The copy is what gets frozen into
// an order; later cart mutations never reach it.
func (s *Store) Snapshot() ([]models.CartLine, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked(), s.totalLocked()
}

// Restore replaces the cart contents, used when rehydrating a session from
// a persisted snapshot. Lines with the same product id are collapsed.
func (s *Store) Restore(lines []models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	for _, line := range lines {
		merged := false
		for i := range s.lines {
			if s.lines[i].Product.ProductID == line.Product.ProductID {
				s.lines[i].Quantity += line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			s.lines = append(s.lines, line)
		}
	}
}

func (s *Store) totalLocked() float64 {
	total := 0.0
	for _, line := range s.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

func (s *Store) copyLocked() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}
