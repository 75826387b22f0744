// ./connect21-backend/internal/handlers/tester_handler.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddTesterPayload defines the expected JSON for enrolling a tester.
type AddTesterPayload struct {
	GroupEmail string `json:"groupEmail" binding:"required"`
	UserEmail  string `json:"userEmail" binding:"required"`
}

// AddAndroidTester adds a user's email to the Android testers group in the
// external directory. A single remote call, so no partial state is possible.
func (h *Handler) AddAndroidTester(c *gin.Context) {
	var payload AddTesterPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupEmail and userEmail are required"})
		return
	}

	member, err := h.Directory.AddGroupMember(c.Request.Context(), payload.GroupEmail, payload.UserEmail)
	if err != nil {
		log.Printf("Error adding tester: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}
