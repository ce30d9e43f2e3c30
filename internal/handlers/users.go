package handlers

import (
	"errors"
	"net/http"

	"metro-homes/internal/auth"
	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserStore is the user persistence surface the handler needs.
type UserStore interface {
	GetUserByEmail(email string) (*models.User, error)
	ListUsers() ([]models.User, error)
	CreateUser(user *models.User) error
	UpdateUserStatus(email string, status models.UserStatus) (int64, error)
	UpdateUserByEmail(email string, updates map[string]interface{}) (int64, error)
	DeleteUserByEmail(email string) (int64, error)
}

// UserHandler handles user and token routes.
type UserHandler struct {
	store  UserStore
	secret []byte
}

// NewUserHandler creates a new user handler.
func NewUserHandler(store UserStore, secret []byte) *UserHandler {
	return &UserHandler{store: store, secret: secret}
}

// IssueToken signs a bearer token for the given email (POST /jwt).
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := auth.SignToken(req.Email, h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UpsertUser implements the sign-in upsert (PUT /user): a new email is
// inserted, an existing one is returned unchanged unless the request
// carries status "Requested", which updates only the status field.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var in models.User
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	existing, err := h.store.GetUserByEmail(in.Email)
	if err == nil {
		if in.Status == models.UserStatusRequested {
			modified, err := h.store.UpdateUserStatus(in.Email, in.Status)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateUser(&in); err != nil {
		// Two concurrent first sign-ins can both miss the lookup; the
		// email unique index picks the winner and the loser gets the
		// stored row back.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			stored, getErr := h.store.GetUserByEmail(in.Email)
			if getErr == nil {
				c.JSON(http.StatusOK, stored)
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, in)
}

// ListUsers returns every user (GET /users, admin only).
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by email (GET /user/:email).
func (h *UserHandler) GetUser(c *gin.Context) {
	email := c.Param("email")
	user, err := h.store.GetUserByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies role/status changes (PATCH /users/update/:email).
// Role writes are validated against the closed role set.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	email := c.Param("email")

	var req struct {
		Role   models.UserRole   `json:"role"`
		Status models.UserStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
		updates["role"] = req.Role
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	modified, err := h.store.UpdateUserByEmail(email, updates)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if modified == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}

// DeleteUser removes a user (DELETE /deleteUser/:email, admin only).
func (h *UserHandler) DeleteUser(c *gin.Context) {
	email := c.Param("email")
	deleted, err := h.store.DeleteUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
