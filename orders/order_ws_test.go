package orders

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"mandi/globals"
	"mandi/middleware"
	"mandi/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func mintToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestOrderStatusWSRequiresToken(t *testing.T) {
	repo := &memRepo{}
	h := &Handlers{Store: NewStore(repo)}

	r := httptest.NewRequest("GET", "/api/orders/ORD1/ws", nil)
	w := httptest.NewRecorder()
	h.OrderStatusWS(w, r, httprouter.Params{{Key: "orderid", Value: "ORD1"}})

	if w.Code != 401 {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}

func TestOrderStatusWSRejectsOtherUsersOrder(t *testing.T) {
	repo := &memRepo{}
	order := models.Order{
		OrderID:   "ORD1",
		UserID:    "vendor1",
		CreatedAt: time.Now(),
	}
	order.Timeline = DeriveTimeline(order.CreatedAt, order.CreatedAt)
	order.Status = StatusBadge(order.Timeline)
	if err := repo.Insert(context.Background(), order); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	h := &Handlers{Store: NewStore(repo)}

	// header token
	r := httptest.NewRequest("GET", "/api/orders/ORD1/ws", nil)
	r.Header.Set("Authorization", "Bearer "+mintToken(t, "intruder"))
	w := httptest.NewRecorder()
	h.OrderStatusWS(w, r, httprouter.Params{{Key: "orderid", Value: "ORD1"}})
	if w.Code != 403 {
		t.Fatalf("expected 403 for another user's order, got %d", w.Code)
	}

	// same check with the query-parameter form browsers use
	r = httptest.NewRequest("GET", "/api/orders/ORD1/ws?token="+mintToken(t, "intruder"), nil)
	w = httptest.NewRecorder()
	h.OrderStatusWS(w, r, httprouter.Params{{Key: "orderid", Value: "ORD1"}})
	if w.Code != 403 {
		t.Fatalf("expected 403 via query token, got %d", w.Code)
	}
}
