package orders

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"mandi/cart"
	"mandi/models"
	"mandi/notify"
	"mandi/utils"
)

// defaultProcessingDelay simulates the payment confirmation window. The
// operation can be canceled through the context while it is pending, in
// which case nothing has been persisted.
const defaultProcessingDelay = 2 * time.Second

// Builder converts a non-empty session cart into a persisted order. The
// snapshot + insert + cart-clear sequence is atomic from the caller's view:
// either the order exists and the cart is empty, or neither happened.
type Builder struct {
	Repo     Repository
	Notifier notify.Notifier
	Lock     CommitLock
	Delay    time.Duration
	Now      func() time.Time
}

func NewBuilder(repo Repository, n notify.Notifier) *Builder {
	if n == nil {
		n = notify.LogNotifier{}
	}
	return &Builder{
		Repo:     repo,
		Notifier: n,
		Lock:     RedisCommitLock{},
		Delay:    defaultProcessingDelay,
		Now:      time.Now,
	}
}

// PlaceOrder runs the checkout for userID's cart with the given payment
// selection. Failure modes: ErrEmptyCart, *ValidationError (missing payment
// fields), context cancellation during the confirmation window, or a
// persistence error — in every one of them the cart is untouched and no
// order exists.
func (b *Builder) PlaceOrder(ctx context.Context, st *cart.Store, userID string, payment models.PaymentDetails) (models.Order, error) {
	if st.IsEmpty() {
		return models.Order{}, ErrEmptyCart
	}

	if err := validatePayment(payment); err != nil {
		b.Notifier.Notify("Error", err.Error(), notify.SeverityError)
		return models.Order{}, err
	}

	// Simulated payment confirmation. Other operations stay available while
	// this waits; canceling the context returns to cart editing with zero
	// persisted trace.
	if b.Delay > 0 {
		timer := time.NewTimer(b.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return models.Order{}, ctx.Err()
		case <-timer.C:
		}
	}

	// The commit runs under a per-user lock so a double-submitted checkout
	// cannot insert the same cart twice.
	ok, err := b.Lock.Acquire(ctx, userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("acquire checkout lock: %w", err)
	}
	if !ok {
		return models.Order{}, ErrCheckoutInProgress
	}
	defer b.Lock.Release(userID)

	now := b.Now()
	lines, total := st.Snapshot()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		OrderID:       NewOrderID(now),
		UserID:        userID,
		Lines:         lines,
		Total:         total,
		PaymentMethod: payment.Method,
		CreatedAt:     now,
		Timeline:      DeriveTimeline(now, now),
	}
	order.Status = StatusBadge(order.Timeline)

	if err := b.Repo.Insert(ctx, order); err != nil {
		return models.Order{}, fmt.Errorf("persist order: %w", err)
	}

	// Only after the order is safely persisted does the cart empty.
	st.Clear()

	b.Notifier.Notify("Order Placed Successfully!",
		fmt.Sprintf("Your order %s has been confirmed", order.OrderID),
		notify.SeveritySuccess)

	return order, nil
}

// NewOrderID builds a timestamp-derived token: sortable by creation time,
// with a numeric suffix to keep same-millisecond checkouts distinct.
func NewOrderID(now time.Time) string {
	return "ORD" + strconv.FormatInt(now.UnixMilli(), 10) + utils.GenerateRandomDigitString(4)
}

func validatePayment(p models.PaymentDetails) error {
	switch p.Method {
	case "cod":
		return nil
	case "upi":
		if p.UPIID == "" {
			return &ValidationError{Fields: []string{"upiId"}}
		}
		return nil
	case "card":
		var missing []string
		if p.Card.Number == "" {
			missing = append(missing, "card.number")
		}
		if p.Card.Expiry == "" {
			missing = append(missing, "card.expiry")
		}
		if p.Card.CVV == "" {
			missing = append(missing, "card.cvv")
		}
		if p.Card.Name == "" {
			missing = append(missing, "card.name")
		}
		if len(missing) > 0 {
			return &ValidationError{Fields: missing}
		}
		return nil
	default:
		return &ValidationError{Fields: []string{"method"}}
	}
}
