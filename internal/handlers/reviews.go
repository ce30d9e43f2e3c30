package handlers

import (
	"net/http"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewStore is the review persistence surface the handler needs.
type ReviewStore interface {
	ListReviews() ([]models.Review, error)
	ListReviewsByAuthor(email string) ([]models.Review, error)
	ListReviewsByProperty(propertyID string) ([]models.Review, error)
	CreateReview(review *models.Review) error
	DeleteReviewByID(id string) (int64, error)
}

// ReviewHandler handles review routes.
type ReviewHandler struct {
	store ReviewStore
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(store ReviewStore) *ReviewHandler {
	return &ReviewHandler{store: store}
}

// ListAll returns every review (GET /reviews, admin only).
func (h *ReviewHandler) ListAll(c *gin.Context) {
	reviews, err := h.store.ListReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListByAuthor returns the caller's reviews (GET /myReviews/:email).
func (h *ReviewHandler) ListByAuthor(c *gin.Context) {
	reviews, err := h.store.ListReviewsByAuthor(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListByProperty returns reviews for a listing (GET /reviews/:propertyId).
func (h *ReviewHandler) ListByProperty(c *gin.Context) {
	propertyID := c.Param("propertyId")
	if _, err := uuid.Parse(propertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}
	reviews, err := h.store.ListReviewsByProperty(propertyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create inserts a review (POST /reviews).
func (h *ReviewHandler) Create(c *gin.Context) {
	var in models.Review
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.AuthorEmail == "" || in.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "authorEmail and propertyId are required"})
		return
	}
	if _, err := uuid.Parse(in.PropertyID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}

	if err := h.store.CreateReview(&in); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// Delete removes a review (DELETE /review/:id).
func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id format"})
		return
	}
	deleted, err := h.store.DeleteReviewByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
