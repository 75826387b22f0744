// ./connect21-backend/internal/handlers/user_handler.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"connect21/backend/internal/models"
)

// ListUsers returns every account the identity provider knows about.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Identity.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserData returns the whole users tree from the store.
func (h *Handler) GetUserData(c *gin.Context) {
	tree, err := h.Store.Get(c.Request.Context(), "users")
	if err != nil {
		log.Printf("Error fetching user data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if tree == nil {
		c.JSON(http.StatusOK, "no data")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// AddUserPayload wraps the user record to upsert.
type AddUserPayload struct {
	User models.User `json:"user" binding:"required"`
}

// AddUser ensures a record exists under users/<uid>. The write runs as a
// create-if-absent transaction, so re-adding an existing uid performs no
// write and concurrent first registrations cannot both initialize the
// record.
func (h *Handler) AddUser(c *gin.Context) {
	var payload AddUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}
	if payload.User.UID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User uid is required"})
		return
	}

	// New records start with an empty session history.
	payload.User.SavedGames = map[string]map[string]map[string]interface{}{}

	created, err := h.Store.CreateIfAbsent(c.Request.Context(), "users/"+payload.User.UID, payload.User)
	if err != nil {
		log.Printf("Error adding user %s: %v", payload.User.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User added successfully"})
}

// CreateUserPayload defines the expected JSON for creating an account.
type CreateUserPayload struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateUser creates an account with the identity provider.
func (h *Handler) CreateUser(c *gin.Context) {
	var payload CreateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.Identity.CreateUser(c.Request.Context(), models.CreateUserParams{
		Email:       payload.Email,
		Password:    payload.Password,
		DisplayName: payload.DisplayName,
		PhoneNumber: payload.PhoneNumber,
	})
	if err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
