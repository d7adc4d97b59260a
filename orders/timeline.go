package orders

import (
	"time"

	"mandi/models"
)

// Fulfilment status ladder. Transitions only ever move forward through this
// list; Delivered is terminal.
const (
	StatusPlaced         = "Order Placed"
	StatusConfirmed      = "Order Confirmed"
	StatusReachedGodown  = "Reached Nearest Godown"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

type timelineStep struct {
	status      string
	description string
	offset      time.Duration // from order creation, strictly increasing
}

var timelineSteps = []timelineStep{
	{StatusPlaced, "Your order has been successfully placed", 0},
	{StatusConfirmed, "Seller has confirmed your order", 1 * time.Minute},
	{StatusReachedGodown, "Items have arrived at the local distribution center", 2 * time.Minute},
	{StatusOutForDelivery, "Your order is on the way to you", 3 * time.Minute},
	{StatusDelivered, "Order has been successfully delivered", 4 * time.Minute},
}

// DeriveTimeline computes the events that have fired for an order created at
// createdAt, as of now. It is a pure function of the two instants: no timers,
// no session state, so a reload or a different process derives the exact same
// timeline. Calling it twice with the same inputs yields identical results.
func DeriveTimeline(createdAt, now time.Time) []models.OrderStatusEvent {
	var events []models.OrderStatusEvent
	for _, step := range timelineSteps {
		at := createdAt.Add(step.offset)
		if at.After(now) {
			break
		}
		events = append(events, models.OrderStatusEvent{
			Status:      step.status,
			Timestamp:   at,
			Description: step.description,
		})
	}
	return events
}

// coarse badge vocabulary used on order listings
var statusBadges = map[string]string{
	StatusPlaced:         "placed",
	StatusConfirmed:      "confirmed",
	StatusReachedGodown:  "shipped",
	StatusOutForDelivery: "shipped",
	StatusDelivered:      "delivered",
}

// StatusBadge returns the listing badge for the last fired event.
func StatusBadge(timeline []models.OrderStatusEvent) string {
	if len(timeline) == 0 {
		return "placed"
	}
	return statusBadges[timeline[len(timeline)-1].Status]
}

// Delivered reports whether the timeline has reached its terminal state.
func Delivered(timeline []models.OrderStatusEvent) bool {
	return len(timeline) > 0 && timeline[len(timeline)-1].Status == StatusDelivered
}
