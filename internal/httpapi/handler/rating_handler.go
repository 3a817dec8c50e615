package handler

import (
	"errors"
	"net/http"
	"strconv"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes under /contents/:content_id
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	ratings := router.Group("/:content_id/ratings")
	{
		// Public read access
		ratings.GET("", h.List)
		ratings.GET("/average", h.GetAverage)

		// Authenticated
		ratings.POST("", authRequired, h.Create)
		ratings.GET("/me", authRequired, h.GetUserRating)
	}
}

// Create records the caller's rating for a content
// POST /api/contents/:content_id/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	contentID := c.Param("content_id")
	if _, err := uuid.Parse(contentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content ID"})
		return
	}

	// Set by AuthMiddleware
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.RateContent(c.Request.Context(), userID.(string), contentID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		case errors.Is(err, service.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{"error": "User has already rated this content"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record rating"})
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// GetUserRating retrieves the current user's rating for a content
// GET /api/contents/:content_id/ratings/me
func (h *RatingHandler) GetUserRating(c *gin.Context) {
	contentID := c.Param("content_id")
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	rating, err := h.ratingService.GetUserRating(c.Request.Context(), userID.(string), contentID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rating"})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// List retrieves all ratings for a content with pagination
// GET /api/contents/:content_id/ratings?page=1&page_size=20
func (h *RatingHandler) List(c *gin.Context) {
	contentID := c.Param("content_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	ratings, err := h.ratingService.GetContentRatings(c.Request.Context(), contentID, page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ratings"})
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetAverage retrieves the stored average rating and count for a content
// GET /api/contents/:content_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	contentID := c.Param("content_id")

	agg, err := h.ratingService.GetContentAggregate(c.Request.Context(), contentID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch aggregate"})
		return
	}

	c.JSON(http.StatusOK, agg)
}
