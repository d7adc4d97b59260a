package cart

import (
	"sync/atomic"
	"testing"
	"time"

	"mandi/models"
)

func TestGetRehydratesFromSnapshot(t *testing.T) {
	var loads int32
	s := NewSessions(nil)
	s.load = func(userID string) ([]models.CartLine, error) {
		atomic.AddInt32(&loads, 1)
		return []models.CartLine{
			{Product: product("1", "Premium Organic Tomatoes"), Quantity: 2, UnitPrice: 50},
		}, nil
	}

	st := s.Get("vendor1")
	if st.ItemCount() != 2 {
		t.Fatalf("expected rehydrated quantity 2, got %d", st.ItemCount())
	}

	// same store comes back, without another load
	if again := s.Get("vendor1"); again != st {
		t.Fatal("expected the same store instance on repeat access")
	}
	if n := atomic.LoadInt32(&loads); n != 1 {
		t.Fatalf("expected a single snapshot load, got %d", n)
	}
}

func TestGetDoesNotBlockOtherUsersOnSlowLoad(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	s := NewSessions(nil)
	s.load = func(userID string) ([]models.CartLine, error) {
		if userID == "slow" {
			close(started)
			<-release
		}
		return nil, nil
	}

	slowDone := make(chan struct{})
	go func() {
		s.Get("slow")
		close(slowDone)
	}()
	<-started

	// slow's snapshot load is in flight; another user's lookup must not wait
	fastDone := make(chan struct{})
	go func() {
		s.Get("fast")
		close(fastDone)
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("registry lookup blocked behind another user's snapshot load")
	}

	close(release)
	<-slowDone
}
