package handlers

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/globallang/gla-backend/internal/http/respond"
	"github.com/globallang/gla-backend/internal/models"
	"github.com/globallang/gla-backend/internal/payments"
	"github.com/globallang/gla-backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentHandler owns checkout: provider intents and recorded payments.
type PaymentHandler struct {
	payments storage.PaymentStore
	intents  payments.IntentCreator
	log      zerolog.Logger
}

// NewPaymentHandler constructs the handler.
func NewPaymentHandler(store storage.PaymentStore, intents payments.IntentCreator, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: store, intents: intents, log: log}
}

type intentRequest struct {
	Price float64 `json:"price"`
}

// CreateIntent asks the provider for a card payment intent covering the
// posted price. The price arrives in whole currency units and is charged in
// minor units, currency fixed to usd.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Price <= 0 {
		respond.Error(w, http.StatusBadRequest, "price must be positive")
		return
	}
	amount := int64(math.Round(req.Price * 100))
	intent, err := h.intents.CreateIntent(r.Context(), amount, "usd")
	if err != nil {
		h.log.Error().Err(err).Msg("create payment intent")
		respond.Error(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}
	respond.JSON(w, http.StatusOK, intent)
}

type paymentResult struct {
	Payment      models.Payment `json:"payment"`
	DeletedCount int64          `json:"deletedCount"`
}

// Create records a completed checkout and clears the paid cart items in the
// same transaction, returning both outcomes.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	for _, id := range payment.CartItemIDs {
		if _, err := uuid.Parse(id); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid cart item id")
			return
		}
	}
	for _, id := range payment.ClassIDs {
		if _, err := uuid.Parse(id); err != nil {
			respond.Error(w, http.StatusBadRequest, "invalid class id")
			return
		}
	}
	stored, deleted, err := h.payments.RecordPayment(r.Context(), payment)
	if err != nil {
		h.log.Error().Err(err).Msg("record payment")
		respond.Error(w, http.StatusInternalServerError, "failed to record payment")
		return
	}
	respond.JSON(w, http.StatusOK, paymentResult{Payment: stored, DeletedCount: deleted})
}
