// ./connect21-backend/internal/handlers/game_handler.go
package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sessions are stored under <name>/saved_games/<day>/<millis>. The day key
// must be a single path segment, so it cannot use a slash-delimited date.
const sessionDateLayout = "2006-01-02"

// SaveGameData appends a batch of game-state fragments under a fresh
// session path. The request body is a flat JSON array in which exactly one
// element carries a "user" field naming the owner; the remaining elements
// are opaque fragments, each pushed independently with a store-generated
// key. A failure mid-loop leaves the fragments written so far in place —
// each one is independently meaningful, so no rollback is attempted.
func (h *Handler) SaveGameData(c *gin.Context) {
	var items []map[string]interface{}
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	owner, fragments := splitOwner(items)
	name, _ := owner["name"].(string)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user"})
		return
	}

	now := h.now()
	sessionPath := fmt.Sprintf("%s/saved_games/%s/%d", name, now.Format(sessionDateLayout), now.UnixMilli())

	ctx := c.Request.Context()
	if err := h.Store.Set(ctx, sessionPath, map[string]interface{}{}); err != nil {
		log.Printf("Error creating session container %q: %v", sessionPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for _, fragment := range fragments {
		if _, err := h.Store.Push(ctx, sessionPath, fragment); err != nil {
			log.Printf("Error saving game data at %q: %v", sessionPath, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"path": sessionPath})
}

// splitOwner partitions the input into the owner descriptor (the first
// element with a "user" field) and the remaining fragments.
func splitOwner(items []map[string]interface{}) (map[string]interface{}, []map[string]interface{}) {
	var owner map[string]interface{}
	fragments := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if raw, ok := item["user"]; ok && owner == nil {
			owner, _ = raw.(map[string]interface{})
			continue
		}
		fragments = append(fragments, item)
	}
	return owner, fragments
}
