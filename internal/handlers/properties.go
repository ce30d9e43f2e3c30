package handlers

import (
	"errors"
	"net/http"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyStore is the listing persistence surface the handler needs.
type PropertyStore interface {
	ListAllProperties() ([]models.Property, error)
	SearchVerifiedProperties(search, sortOrder string) ([]models.Property, error)
	GetPropertyByID(id string) (*models.Property, error)
	ListPropertiesByAgent(email string) ([]models.Property, error)
	CreateProperty(property *models.Property) error
	UpdateProperty(id string, updates map[string]interface{}) (int64, error)
	DeletePropertyByID(id string) (int64, error)
	UpdatePropertyStatus(id string, status models.PropertyStatus) (int64, error)
	AdvertiseProperty(id string) (int64, error)
	ListAdvertisedProperties() ([]models.Property, error)
}

// PropertyHandler handles listing routes.
type PropertyHandler struct {
	store PropertyStore
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(store PropertyStore) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// propertyID validates the :id path param before it reaches the store.
// A malformed id is a client error, not a store exception.
func propertyID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return "", false
	}
	return id, true
}

// ListAll returns every listing regardless of status (GET /allProperties).
func (h *PropertyHandler) ListAll(c *gin.Context) {
	properties, err := h.store.ListAllProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Search returns Verified listings matching the location substring,
// ordered by price spread (GET /properties?search&sort).
func (h *PropertyHandler) Search(c *gin.Context) {
	search := c.Query("search")
	sort := c.DefaultQuery("sort", "asc")

	properties, err := h.store.SearchVerifiedProperties(search, sort)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Get returns a single listing (GET /property/:id).
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	property, err := h.store.GetPropertyByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, property)
}

// ListByAgent returns the agent's own listings
// (GET /myAddedProperties/:email).
func (h *PropertyHandler) ListByAgent(c *gin.Context) {
	email := c.Param("email")
	properties, err := h.store.ListPropertiesByAgent(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Create inserts a new listing (POST /property). Prices are validated
// here, at the write boundary; new listings start Pending.
func (h *PropertyHandler) Create(c *gin.Context) {
	var in models.Property
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Title == "" || in.Location == "" || in.AgentEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, location and agentEmail are required"})
		return
	}
	if err := in.ValidatePrices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Status = models.PropertyStatusPending
	in.IsAdvertised = false

	if err := h.store.CreateProperty(&in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// Update applies field changes to a listing (PUT /property/update/:id).
// The record is fetched first so partial price updates can still be
// checked against the stored counterpart.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}

	var req struct {
		Title       *string  `json:"title"`
		Location    *string  `json:"location"`
		ImageURL    *string  `json:"image"`
		Description *string  `json:"description"`
		MinPrice    *float64 `json:"min_price"`
		MaxPrice    *float64 `json:"max_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.store.GetPropertyByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MinPrice != nil {
		property.MinPrice = *req.MinPrice
		updates["min_price"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		property.MaxPrice = *req.MaxPrice
		updates["max_price"] = *req.MaxPrice
	}
	if err := property.ValidatePrices(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	modified, err := h.store.UpdateProperty(id, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// Delete removes a listing (DELETE /property/:id).
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	deleted, err := h.store.DeletePropertyByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// UpdateStatus sets the moderation status
// (PATCH /property/status/:id, admin only).
func (h *PropertyHandler) UpdateStatus(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}

	var req struct {
		Status models.PropertyStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPropertyStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	modified, err := h.store.UpdatePropertyStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// Advertise flags a listing for the advertised section
// (PUT /property/advertise/:id, admin only).
func (h *PropertyHandler) Advertise(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	modified, err := h.store.AdvertiseProperty(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// ListAdvertised returns advertised listings (GET /properties/advertised).
func (h *PropertyHandler) ListAdvertised(c *gin.Context) {
	properties, err := h.store.ListAdvertisedProperties()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}
