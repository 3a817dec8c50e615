package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentCategory is the fixed set of media kinds a content entry can be.
type ContentCategory string

const (
	CategoryGame    ContentCategory = "GAME"
	CategoryVideo   ContentCategory = "VIDEO"
	CategoryArtwork ContentCategory = "ARTWORK"
	CategoryMusic   ContentCategory = "MUSIC"
)

// Valid reports whether the category is one of the fixed enum values.
func (c ContentCategory) Valid() bool {
	switch c {
	case CategoryGame, CategoryVideo, CategoryArtwork, CategoryMusic:
		return true
	}
	return false
}

type Content struct {
	ID            string          `gorm:"primaryKey;type:uuid" json:"id"`
	Title         string          `gorm:"size:255;not null;index" json:"title"`
	Description   *string         `json:"description,omitempty"`
	Category      ContentCategory `gorm:"size:20;not null;index" json:"category"`
	ThumbnailURL  *string         `gorm:"size:500" json:"thumbnail_url,omitempty"`
	ContentURL    *string         `gorm:"size:500" json:"content_url,omitempty"`
	Author        *string         `gorm:"size:100" json:"author,omitempty"`
	CreatedBy     string          `gorm:"type:uuid;not null;index" json:"created_by"`
	RatingCount   int64           `gorm:"default:0;not null" json:"rating_count"`
	AverageRating float64         `gorm:"type:decimal(3,2);default:0;not null" json:"average_rating"`
	Status        bool            `gorm:"default:true;not null" json:"status"` // false = soft-deleted
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Associations
	Creator User     `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;constraint:OnDelete:CASCADE;"`
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a Content
func (content *Content) BeforeCreate(tx *gorm.DB) (err error) {
	if content.ID == "" {
		content.ID = uuid.New().String()
	}
	return
}

func (Content) TableName() string {
	return "contents"
}
