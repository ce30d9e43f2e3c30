package handlers

import (
	"errors"
	"net/http"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistStore is the wishlist persistence surface the handler needs.
type WishlistStore interface {
	ListWishlistsByEmail(email string) ([]models.Wishlist, error)
	GetWishlistEntry(email, propertyID string) (*models.Wishlist, error)
	CreateWishlist(entry *models.Wishlist) error
}

// WishlistHandler handles wishlist routes.
type WishlistHandler struct {
	store WishlistStore
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(store WishlistStore) *WishlistHandler {
	return &WishlistHandler{store: store}
}

// List returns a user's saved listings (GET /wishlists/:email).
func (h *WishlistHandler) List(c *gin.Context) {
	entries, err := h.store.ListWishlistsByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create adds a listing to the wishlist (POST /wishlists/:email). The
// pre-check gives the friendly message; the unique index decides the
// race when two identical adds arrive at once.
func (h *WishlistHandler) Create(c *gin.Context) {
	var in models.Wishlist
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Email = c.Param("email")
	if in.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "propertyId is required"})
		return
	}
	if _, err := uuid.Parse(in.PropertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}

	_, err := h.store.GetWishlistEntry(in.Email, in.PropertyID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You have already added"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateWishlist(&in); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already added"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}
