package cart

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"mandi/models"
	"mandi/notify"
	"mandi/rdx"
)

const snapshotTTL = 30 * 24 * time.Hour

// Sessions owns one Store per active user session. The first access for a
// user tries to rehydrate the cart from its Redis snapshot so a process
// restart doesn't lose what they had picked.
type Sessions struct {
	mu       sync.Mutex
	carts    map[string]*Store
	notifier notify.Notifier
	load     func(userID string) ([]models.CartLine, error)
}

func NewSessions(n notify.Notifier) *Sessions {
	return &Sessions{
		carts:    make(map[string]*Store),
		notifier: n,
		load:     loadSnapshot,
	}
}

// Get returns the session cart for userID, creating (and restoring) it on
// first use. The snapshot load runs outside the registry lock: a slow Redis
// only delays the user being rehydrated, never everyone else's lookup.
func (s *Sessions) Get(userID string) *Store {
	s.mu.Lock()
	st, ok := s.carts[userID]
	if !ok {
		st = NewStore(s.notifier)
		s.carts[userID] = st
	}
	s.mu.Unlock()

	if !ok {
		if lines, err := s.load(userID); err == nil && len(lines) > 0 {
			st.Restore(lines)
		}
	}
	return st
}

// Persist writes the cart's current lines to Redis. The snapshot is a cache
// of the in-memory state, never the source of truth.
func (s *Sessions) Persist(userID string, st *Store) {
	lines := st.Lines()
	data, err := json.Marshal(lines)
	if err != nil {
		log.Println("cart snapshot marshal error:", err)
		return
	}
	if err := rdx.RdxSet("cart:"+userID, string(data), snapshotTTL); err != nil {
		log.Println("cart snapshot save error:", err)
	}
}

// Drop removes the persisted snapshot, used after checkout clears the cart.
func (s *Sessions) Drop(userID string) {
	if err := rdx.RdxDel("cart:" + userID); err != nil {
		log.Println("cart snapshot delete error:", err)
	}
}

func loadSnapshot(userID string) ([]models.CartLine, error) {
	data, err := rdx.RdxGet("cart:" + userID)
	if err != nil || data == "" {
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
