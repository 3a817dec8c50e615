package handler

import (
	"errors"
	"net/http"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService service.ContentService
}

func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// RegisterRoutes registers content CRUD routes. Reads are public, writes
// require authentication plus ownership.
func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("", h.List)
	router.GET("/:content_id", h.Get)
	router.POST("", authRequired, h.Create)
	router.PUT("/:content_id", authRequired, h.Update)
	router.DELETE("/:content_id", authRequired, h.Delete)
}

// Create submits a new content entry
// POST /api/contents
func (h *ContentHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.contentService.Create(c.Request.Context(), userID.(string), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content"})
		return
	}

	c.JSON(http.StatusCreated, content)
}

// Get retrieves a single active content entry
// GET /api/contents/:content_id
func (h *ContentHandler) Get(c *gin.Context) {
	content, err := h.contentService.Get(c.Request.Context(), c.Param("content_id"))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}

	c.JSON(http.StatusOK, content)
}

// List retrieves contents with filtering, sorting and pagination
// GET /api/contents?page=1&limit=10&category=GAME&search=...&sort_by=average_rating
func (h *ContentHandler) List(c *gin.Context) {
	var req dto.QueryContentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contents, err := h.contentService.List(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contents"})
		return
	}

	c.JSON(http.StatusOK, contents)
}

// Update edits an owned content entry
// PUT /api/contents/:content_id
func (h *ContentHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.contentService.Update(c.Request.Context(), userID.(string), c.Param("content_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		case errors.Is(err, service.ErrNotContentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidCategory):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		}
		return
	}

	c.JSON(http.StatusOK, content)
}

// Delete soft-deletes an owned content entry
// DELETE /api/contents/:content_id
func (h *ContentHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	err := h.contentService.Delete(c.Request.Context(), userID.(string), c.Param("content_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		case errors.Is(err, service.ErrNotContentOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}
