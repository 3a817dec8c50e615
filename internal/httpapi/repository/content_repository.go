package repository

import (
	"context"
	"fmt"
	"strings"

	"mediarate/internal/httpapi/models"

	"gorm.io/gorm"
)

// ContentFilter carries the validated list-query parameters.
type ContentFilter struct {
	Search    string
	Category  models.ContentCategory
	CreatedBy string
	MinRating float64
	SortBy    string // created_at | updated_at | title | average_rating | rating_count
	Order     string // asc | desc
	Page      int
	PageSize  int
}

type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

// sortColumns whitelists the sortable fields so the ORDER BY clause is never
// built from raw client input.
var sortColumns = map[string]string{
	"created_at":     "created_at",
	"updated_at":     "updated_at",
	"title":          "title",
	"average_rating": "average_rating",
	"rating_count":   "rating_count",
}

// List returns active contents matching the filter plus the total match count.
func (r *ContentRepo) List(ctx context.Context, f ContentFilter) ([]models.Content, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Content{}).Where("status = ?", true)

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.CreatedBy != "" {
		query = query.Where("created_by = ?", f.CreatedBy)
	}
	if f.MinRating > 0 {
		query = query.Where("average_rating >= ?", f.MinRating)
	}
	if f.Search != "" {
		p := "%" + f.Search + "%"
		query = query.Where(
			"(title ILIKE ? OR COALESCE(description,'') ILIKE ? OR COALESCE(author,'') ILIKE ?)",
			p, p, p,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if strings.EqualFold(f.Order, "asc") {
		direction = "asc"
	}

	var list []models.Content
	offset := (f.Page - 1) * f.PageSize
	if err := query.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Limit(f.PageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// GetByID returns an active content entry.
func (r *ContentRepo) GetByID(ctx context.Context, id string) (*models.Content, error) {
	var c models.Content
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, true).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepo) Create(ctx context.Context, c *models.Content) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create content: %w", err)
	}
	return nil
}

func (r *ContentRepo) Update(ctx context.Context, c *models.Content) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// SoftDelete flips the status flag instead of removing the row, so existing
// ratings stay intact for the aggregate history.
func (r *ContentRepo) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&models.Content{}).
		Where("id = ? AND status = ?", id, true).
		Update("status", false)
	if result.Error != nil {
		return fmt.Errorf("delete content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
