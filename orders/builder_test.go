package orders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mandi/cart"
	"mandi/models"
)

func newTestBuilder(repo *memRepo, n *recordingNotifier) *Builder {
	b := NewBuilder(repo, n)
	b.Lock = &memLock{}
	b.Delay = 0
	b.Now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	return b
}

func TestPlaceOrderHappyPath(t *testing.T) {
	repo := &memRepo{}
	n := &recordingNotifier{}
	b := newTestBuilder(repo, n)

	st := cart.NewStore(n)
	st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 2, 50)
	st.AddItem(testProduct("2", "Fresh Green Onions"), 1, 30)

	order, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}

	if !strings.HasPrefix(order.OrderID, "ORD") {
		t.Fatalf("unexpected order id %q", order.OrderID)
	}
	if order.Total != 130 {
		t.Fatalf("expected total 130, got %v", order.Total)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	if order.PaymentMethod != "cod" {
		t.Fatalf("expected payment method cod, got %q", order.PaymentMethod)
	}
	if order.Status != "placed" {
		t.Fatalf("expected status placed, got %q", order.Status)
	}
	if len(order.Timeline) != 1 || order.Timeline[0].Status != StatusPlaced {
		t.Fatalf("expected single %q event, got %v", StatusPlaced, order.Timeline)
	}

	if !st.IsEmpty() {
		t.Fatal("cart should be empty after checkout")
	}

	stored, err := repo.Get(context.Background(), order.OrderID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if stored.UserID != "vendor1" {
		t.Fatalf("expected owner vendor1, got %q", stored.UserID)
	}

	// mutating the cart afterwards must not leak into the stored order
	st.AddItem(testProduct("3", "Cooking Oil Multi-Pack"), 5, 200)
	stored, _ = repo.Get(context.Background(), order.OrderID)
	if len(stored.Lines) != 2 {
		t.Fatalf("stored order shares state with the cart: %d lines", len(stored.Lines))
	}

	last := n.titles[len(n.titles)-1]
	if last != "Order Placed Successfully!" {
		t.Fatalf("expected success notification, got %q", last)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	b := newTestBuilder(&memRepo{}, &recordingNotifier{})
	st := cart.NewStore(nil)

	_, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlaceOrderPaymentValidation(t *testing.T) {
	cases := []struct {
		name    string
		payment models.PaymentDetails
		want    []string
	}{
		{"upi without id", models.PaymentDetails{Method: "upi"}, []string{"upiId"}},
		{"card missing cvv and name", models.PaymentDetails{
			Method: "card",
			Card:   models.CardDetails{Number: "4111111111111111", Expiry: "12/27"},
		}, []string{"card.cvv", "card.name"}},
		{"unknown method", models.PaymentDetails{Method: "cheque"}, []string{"method"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memRepo{}
			b := newTestBuilder(repo, &recordingNotifier{})
			st := cart.NewStore(nil)
			st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 1, 50)

			_, err := b.PlaceOrder(context.Background(), st, "vendor1", tc.payment)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(verr.Fields) != len(tc.want) {
				t.Fatalf("expected fields %v, got %v", tc.want, verr.Fields)
			}
			for i, f := range tc.want {
				if verr.Fields[i] != f {
					t.Fatalf("expected fields %v, got %v", tc.want, verr.Fields)
				}
			}
			if st.IsEmpty() {
				t.Fatal("cart must survive a rejected payment")
			}
			if len(repo.orders) != 0 {
				t.Fatal("no order may be persisted on rejected payment")
			}
		})
	}
}

func TestPlaceOrderCanceledDuringProcessing(t *testing.T) {
	repo := &memRepo{}
	b := newTestBuilder(repo, &recordingNotifier{})
	b.Delay = time.Minute

	st := cart.NewStore(nil)
	st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 1, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.PlaceOrder(ctx, st, "vendor1", models.PaymentDetails{Method: "upi", UPIID: "vendor@upi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatal("canceled checkout must leave no persisted order")
	}
	if st.IsEmpty() {
		t.Fatal("canceled checkout must leave the cart intact")
	}
}

func TestPlaceOrderInsertFailureKeepsCart(t *testing.T) {
	repo := &memRepo{failInsert: true}
	b := newTestBuilder(repo, &recordingNotifier{})

	st := cart.NewStore(nil)
	st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 1, 50)

	_, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"})
	if err == nil {
		t.Fatal("expected insert failure to surface")
	}
	if st.IsEmpty() {
		t.Fatal("cart must not be cleared when persistence fails")
	}
}

func TestPlaceOrderRejectsConcurrentCheckout(t *testing.T) {
	repo := &memRepo{}
	b := newTestBuilder(repo, &recordingNotifier{})

	lock := b.Lock.(*memLock)
	if ok, _ := lock.Acquire(context.Background(), "vendor1"); !ok {
		t.Fatal("could not pre-hold the commit lock")
	}

	st := cart.NewStore(nil)
	st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 1, 50)

	_, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"})
	if !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("expected ErrCheckoutInProgress, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatal("rejected checkout must not persist an order")
	}
	if st.IsEmpty() {
		t.Fatal("rejected checkout must leave the cart intact")
	}

	// a different user is not affected by vendor1's lock
	st2 := cart.NewStore(nil)
	st2.AddItem(testProduct("2", "Fresh Green Onions"), 1, 30)
	if _, err := b.PlaceOrder(context.Background(), st2, "vendor2", models.PaymentDetails{Method: "cod"}); err != nil {
		t.Fatalf("other user's checkout should proceed: %v", err)
	}
}

func TestPlaceOrderReleasesCommitLock(t *testing.T) {
	repo := &memRepo{}
	b := newTestBuilder(repo, &recordingNotifier{})
	lock := b.Lock.(*memLock)

	st := cart.NewStore(nil)
	st.AddItem(testProduct("1", "Premium Organic Tomatoes"), 1, 50)
	if _, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"}); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if lock.releases != 1 {
		t.Fatalf("expected lock released once after success, got %d", lock.releases)
	}

	// a failed insert must release the lock too
	repo.failInsert = true
	st.AddItem(testProduct("2", "Fresh Green Onions"), 1, 30)
	if _, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"}); err == nil {
		t.Fatal("expected insert failure to surface")
	}
	if lock.releases != 2 {
		t.Fatalf("expected lock released after failure, got %d releases", lock.releases)
	}

	repo.failInsert = false
	if _, err := b.PlaceOrder(context.Background(), st, "vendor1", models.PaymentDetails{Method: "cod"}); err != nil {
		t.Fatalf("checkout after a released lock should proceed: %v", err)
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id := NewOrderID(now)
		if !strings.HasPrefix(id, "ORD") {
			t.Fatalf("unexpected prefix in %q", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Fatal("same-millisecond ids should still differ")
	}
}
