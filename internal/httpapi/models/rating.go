package models

import "time"

// Rating is one user's score for one content entry. The composite primary
// key doubles as the storage-level uniqueness guard: a user can hold at most
// one rating per content, and a concurrent duplicate insert fails on the
// constraint even when it slips past the application pre-check.
type Rating struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;type:uuid;index"`
	ContentID string    `json:"content_id" gorm:"primaryKey;type:uuid;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Content Content `json:"content,omitempty" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
