package mq

import (
	"context"
	"encoding/json"
	"log"

	"mandi/models"
	"mandi/rdx"
)

const orderEventsChannel = "order-events"

// Emit publishes an order lifecycle event to Redis pub/sub. Delivery is
// best-effort; a failed publish is logged and dropped, never surfaced to
// the checkout path.
func Emit(ctx context.Context, event models.OrderEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, orderEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
		return
	}
}

// StartOrderEventWorker consumes order events and appends them to the
// owning user's notification list, capped at the most recent 100.
func StartOrderEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, orderEventsChannel)
	ch := sub.Channel()

	log.Println("[OrderEventWorker] Listening for order events...")

	for msg := range ch {
		var event models.OrderEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[OrderEventWorker] Failed to parse event: %v", err)
			continue
		}

		key := "notifications:" + event.UserID
		if err := rdx.Conn.LPush(ctx, key, msg.Payload).Err(); err != nil {
			log.Printf("[OrderEventWorker] LPush error: %v", err)
			continue
		}
		rdx.Conn.LTrim(ctx, key, 0, 99)
	}
}
