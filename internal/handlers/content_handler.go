// ./connect21-backend/internal/handlers/content_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Content lives under categories/<long date>, e.g. "categories/January 05, 2024".
const longDateLayout = "January 02, 2006"

// promptDateLayouts are the accepted shapes for the :dt path parameter.
var promptDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"01/02/2006",
	"January 02, 2006",
	"January 2, 2006",
}

func parsePromptDate(value string) (time.Time, bool) {
	for _, layout := range promptDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GetCategories returns the full category tree.
func (h *Handler) GetCategories(c *gin.Context) {
	tree, err := h.Store.Get(c.Request.Context(), "categories")
	if err != nil {
		log.Printf("Error fetching categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if tree == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No categories found"})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// GetPrompts returns the content subtree for the day named by :dt. A day
// with no content is a successful null, not an error.
func (h *Handler) GetPrompts(c *gin.Context) {
	date, ok := parsePromptDate(c.Param("dt"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}
	tree, err := h.Store.Get(c.Request.Context(), "categories/"+date.Format(longDateLayout))
	if err != nil {
		log.Printf("Error fetching prompts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// GetDBPath returns the subtree at an arbitrary caller-supplied path.
func (h *Handler) GetDBPath(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path query parameter"})
		return
	}
	tree, err := h.Store.Get(c.Request.Context(), path)
	if err != nil {
		log.Printf("Error fetching path %q: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tree == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data found at path"})
		return
	}
	c.JSON(http.StatusOK, tree)
}
