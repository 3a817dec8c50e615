package dto

import (
	"time"

	"mediarate/internal/httpapi/models"
)

// CreateRatingRequest for rating a content (1 to 5 stars). Out-of-range
// values are rejected here, before the operation is ever invoked.
type CreateRatingRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

// RatingResponse for returning a created rating, internal fields excluded
type RatingResponse struct {
	UserID    string    `json:"user_id"`
	ContentID string    `json:"content_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		UserID:    rating.UserID,
		ContentID: rating.ContentID,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// RatingListItem for the public list view, carries the rater's username
// instead of the raw user id
type RatingListItem struct {
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AggregateResponse is the denormalized summary for a content
type AggregateResponse struct {
	ContentID     string  `json:"content_id"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// PaginatedRatingResponse for returning paginated ratings
type PaginatedRatingResponse struct {
	Data       []RatingListItem `json:"data"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	Total      int              `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// NewPaginatedRatingResponse creates a paginated rating response
func NewPaginatedRatingResponse(data []RatingListItem, total, page, pageSize int) *PaginatedRatingResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedRatingResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
