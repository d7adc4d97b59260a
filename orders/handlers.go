package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mandi/auth"
	"mandi/cart"
	"mandi/models"
	"mandi/mq"
	"mandi/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	Builder  *Builder
	Store    *Store
	Sessions *cart.Sessions
	Identity auth.IdentityProvider
}

func NewHandlers(builder *Builder, store *Store, sessions *cart.Sessions, identity auth.IdentityProvider) *Handlers {
	return &Handlers{
		Builder:  builder,
		Store:    store,
		Sessions: sessions,
		Identity: identity,
	}
}

// POST /api/orders — checkout the session cart.
func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	who, err := h.Identity.FromRequest(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payment models.PaymentDetails
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid payment payload", http.StatusBadRequest)
		return
	}

	st := h.Sessions.Get(who.UserID)
	order, err := h.Builder.PlaceOrder(r.Context(), st, who.UserID, payment)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrEmptyCart):
			utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, ErrCheckoutInProgress):
			utils.RespondWithError(w, http.StatusConflict, "Checkout already in progress")
		case errors.As(err, &verr):
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
				"error":  verr.Error(),
				"fields": verr.Fields,
			})
		case errors.Is(err, context.Canceled):
			// Caller backed out during the confirmation window; nothing was
			// created, nothing to report.
			return
		default:
			log.Println("PlaceOrder error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Order creation failed")
		}
		return
	}

	// Cart is empty now; reflect that in the persisted snapshot too.
	h.Sessions.Drop(who.UserID)

	mq.Emit(r.Context(), models.OrderEvent{
		Type:    "order.placed",
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Status:  order.Status,
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GET /api/orders/:orderid
func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := h.Store.GetOrder(r.Context(), ps.ByName("orderid"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		log.Println("GetOrder error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not load order")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// GET /api/orders — list the caller's orders, newest first.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.Store.ListOrders(r.Context(), userID)
	if err != nil {
		log.Println("ListOrders error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not list orders")
		return
	}
	if result == nil {
		result = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
