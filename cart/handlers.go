package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mandi/db"
	"mandi/models"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Handlers exposes the session cart over HTTP. One instance is created in
// routes and shared; the per-user state lives in Sessions.
type Handlers struct {
	Sessions *Sessions
}

func NewHandlers(sessions *Sessions) *Handlers {
	return &Handlers{Sessions: sessions}
}

func (h *Handlers) respondCart(w http.ResponseWriter, st *Store) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"items":      st.Lines(),
		"totalPrice": st.TotalPrice(),
		"itemCount":  st.ItemCount(),
	})
}

// GET /api/cart
func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.respondCart(w, h.Sessions.Get(userID))
}

// POST /api/cart/add
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID string  `json:"productId"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unitPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ProductID == "" {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": input.ProductID}).Decode(&product); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	// The catalog price range is advisory; the selected price is taken as-is.
	if input.UnitPrice <= 0 {
		input.UnitPrice = product.PriceRange.Min
	}

	st := h.Sessions.Get(userID)
	st.AddItem(product, input.Quantity, input.UnitPrice)
	h.Sessions.Persist(userID, st)

	h.respondCart(w, st)
}

// PUT /api/cart/item/:productid
func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	st := h.Sessions.Get(userID)
	st.UpdateQuantity(ps.ByName("productid"), input.Quantity)
	h.Sessions.Persist(userID, st)

	h.respondCart(w, st)
}

// DELETE /api/cart/item/:productid
func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	st := h.Sessions.Get(userID)
	st.RemoveItem(ps.ByName("productid"))
	h.Sessions.Persist(userID, st)

	h.respondCart(w, st)
}

// DELETE /api/cart/clear
func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	st := h.Sessions.Get(userID)
	st.Clear()
	h.Sessions.Drop(userID)

	h.respondCart(w, st)
}
