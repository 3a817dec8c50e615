package dto

import (
	"time"

	"mediarate/internal/httpapi/models"
)

// CreateContentRequest: payload for submitting a new content entry
type CreateContentRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  *string `json:"description,omitempty"`
	Category     string  `json:"category" binding:"required"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" binding:"omitempty,url,max=500"`
	ContentURL   *string `json:"content_url,omitempty" binding:"omitempty,url,max=500"`
	Author       *string `json:"author,omitempty" binding:"omitempty,max=100"`
}

// UpdateContentRequest: payload for editing an owned content entry. All
// fields optional; absent fields are left untouched.
type UpdateContentRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" binding:"omitempty,url,max=500"`
	ContentURL   *string `json:"content_url,omitempty" binding:"omitempty,url,max=500"`
	Author       *string `json:"author,omitempty" binding:"omitempty,max=100"`
}

// QueryContentsRequest: list-endpoint query parameters
type QueryContentsRequest struct {
	Page      int     `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int     `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Search    string  `form:"search" binding:"omitempty,min=2"`
	Category  string  `form:"category"`
	MinRating float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	CreatedBy string  `form:"created_by" binding:"omitempty,uuid"`
	SortBy    string  `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at updated_at title average_rating rating_count"`
	Order     string  `form:"order,default=desc" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ContentResponse for returning content information
type ContentResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	Category      string    `json:"category"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	ContentURL    *string   `json:"content_url,omitempty"`
	Author        *string   `json:"author,omitempty"`
	CreatedBy     string    `json:"created_by"`
	RatingCount   int64     `json:"rating_count"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromModelToContentResponse converts a Content model to ContentResponse DTO
func FromModelToContentResponse(c *models.Content) *ContentResponse {
	return &ContentResponse{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Category:      string(c.Category),
		ThumbnailURL:  c.ThumbnailURL,
		ContentURL:    c.ContentURL,
		Author:        c.Author,
		CreatedBy:     c.CreatedBy,
		RatingCount:   c.RatingCount,
		AverageRating: c.AverageRating,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// PaginatedContentResponse for returning paginated contents
type PaginatedContentResponse struct {
	Data       []ContentResponse `json:"data"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"total_pages"`
}

// NewPaginatedContentResponse creates a paginated content response
func NewPaginatedContentResponse(data []ContentResponse, total int64, page, pageSize int) *PaginatedContentResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &PaginatedContentResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
