package orders

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"mandi/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

const wsPollInterval = 2 * time.Second

// GET /api/orders/:orderid/ws — push each newly fired timeline event to the
// client, then close once the order is delivered. Progress is re-derived
// from elapsed time on every tick, so a client reconnecting mid-delivery
// catches up immediately. Browsers cannot set headers on websocket dials,
// so the token may also arrive as a ?token= query parameter.
func (h *Handlers) OrderStatusWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	token := r.Header.Get("Authorization")
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	claims, err := middleware.ValidateJWT(token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := ps.ByName("orderid")

	order, err := h.Store.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not load order", http.StatusInternalServerError)
		return
	}
	if order.UserID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	// Drain client frames so pings and close frames are handled.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sent := 0
	ticker := time.NewTicker(wsPollInterval)
	defer ticker.Stop()

	for {
		timeline := DeriveTimeline(order.CreatedAt, time.Now())
		for ; sent < len(timeline); sent++ {
			data, err := json.Marshal(timeline[sent])
			if err != nil {
				log.Println("order ws marshal error:", err)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
		if Delivered(timeline) {
			return
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
