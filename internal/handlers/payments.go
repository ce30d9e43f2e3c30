package handlers

import (
	"log"
	"net/http"

	"metro-homes/internal/models"
	"metro-homes/internal/payments"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentStore is the payment persistence surface the handler needs.
type PaymentStore interface {
	ListPayments() ([]models.Payment, error)
	ListPaymentsByEmail(email string) ([]models.Payment, error)
	ListPaymentsByAgent(agentEmail string) ([]models.Payment, error)
	CreatePayment(payment *models.Payment) error
}

// OfferMarker flips the paid offer's status once the payment lands.
type OfferMarker interface {
	UpdateOfferStatus(id string, status models.OfferStatus) (int64, error)
}

// PaymentHandler handles payment routes and the provider intent bridge.
type PaymentHandler struct {
	store   PaymentStore
	offers  OfferMarker
	intents payments.IntentCreator
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(store PaymentStore, offers OfferMarker, intents payments.IntentCreator) *PaymentHandler {
	return &PaymentHandler{store: store, offers: offers, intents: intents}
}

// CreateIntent converts the price to cents and requests a provider
// intent (POST /create-payment-intent). Only the client secret is
// returned, never the provider response.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amountCents := payments.MinorUnits(req.Price)
	if req.Price <= 0 || amountCents < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	clientSecret, err := h.intents.CreateIntent(c.Request.Context(), amountCents)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ListAll returns every payment (GET /payments, admin only).
func (h *PaymentHandler) ListAll(c *gin.Context) {
	records, err := h.store.ListPayments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListByEmail returns a buyer's payment history (GET /payments/:email).
func (h *PaymentHandler) ListByEmail(c *gin.Context) {
	records, err := h.store.ListPaymentsByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// ListByAgent returns payments for the agent's sold listings
// (GET /soldProperties/:agentEmail).
func (h *PaymentHandler) ListByAgent(c *gin.Context) {
	records, err := h.store.ListPaymentsByAgent(c.Param("agentEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Create records a confirmed payment (POST /payments) and marks the
// paid offer as bought.
func (h *PaymentHandler) Create(c *gin.Context) {
	var in models.Payment
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Email == "" || in.AgentEmail == "" || in.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, agentEmail and propertyId are required"})
		return
	}
	if _, err := uuid.Parse(in.PropertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}
	if in.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	if err := h.store.CreatePayment(&in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if in.OfferID != "" {
		if _, err := h.offers.UpdateOfferStatus(in.OfferID, models.OfferStatusBought); err != nil {
			log.Printf("Warning: failed to mark offer %s as bought: %v", in.OfferID, err)
		}
	}
	c.JSON(http.StatusCreated, in)
}
