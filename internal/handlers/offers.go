package handlers

import (
	"errors"
	"net/http"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferStore is the offer persistence surface the handler needs.
type OfferStore interface {
	ListOffers() ([]models.Offer, error)
	ListOffersByEmail(email string) ([]models.Offer, error)
	ListOffersByAgent(agentEmail string) ([]models.Offer, error)
	GetOfferByBuyer(email, propertyID string) (*models.Offer, error)
	CreateOffer(offer *models.Offer) error
	UpdateOfferStatus(id string, status models.OfferStatus) (int64, error)
}

// PropertyGetter fetches the listing an offer targets, so the amount is
// checked against stored prices rather than anything client-supplied.
type PropertyGetter interface {
	GetPropertyByID(id string) (*models.Property, error)
}

// OfferHandler handles offer routes.
type OfferHandler struct {
	store      OfferStore
	properties PropertyGetter
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(store OfferStore, properties PropertyGetter) *OfferHandler {
	return &OfferHandler{store: store, properties: properties}
}

// ListAll returns every offer (GET /offers, admin only).
func (h *OfferHandler) ListAll(c *gin.Context) {
	offers, err := h.store.ListOffers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListByEmail returns a buyer's offers (GET /offers/:email).
func (h *OfferHandler) ListByEmail(c *gin.Context) {
	offers, err := h.store.ListOffersByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListByAgent returns offers sent on an agent's listings
// (GET /sentOffers/:agentEmail).
func (h *OfferHandler) ListByAgent(c *gin.Context) {
	offers, err := h.store.ListOffersByAgent(c.Param("agentEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

// Create places an offer (POST /offers): at most one per buyer per
// listing, and the amount must fall inside the stored price range.
func (h *OfferHandler) Create(c *gin.Context) {
	var in models.Offer
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Email == "" || in.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and propertyId are required"})
		return
	}
	if _, err := uuid.Parse(in.PropertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}

	_, err := h.store.GetOfferByBuyer(in.Email, in.PropertyID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already made an offer for this property"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	property, err := h.properties.GetPropertyByID(in.PropertyID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if in.Amount < property.MinPrice || in.Amount > property.MaxPrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offered amount must be within the price range"})
		return
	}

	in.AgentEmail = property.AgentEmail
	in.PropertyTitle = property.Title
	in.PropertyLocation = property.Location
	in.Status = models.OfferStatusPending

	if err := h.store.CreateOffer(&in); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already made an offer for this property"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// UpdateStatus records the agent's decision
// (PATCH /offers/status/:id).
func (h *OfferHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}

	var req struct {
		Status models.OfferStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOfferDecision(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	modified, err := h.store.UpdateOfferStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
