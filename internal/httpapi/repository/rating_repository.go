package repository

import (
	"errors"

	"mediarate/internal/httpapi/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateRating is returned when an insert trips the composite
// primary key on (user_id, content_id). The storage constraint is the
// authoritative duplicate guard; the service-level lookup is only an
// optimization.
var ErrDuplicateRating = errors.New("rating already exists for this user and content")

// ContentAggregate is the denormalized summary derived from a content's ratings.
type ContentAggregate struct {
	Count   int64
	Average float64
}

type RatingRepository interface {
	Create(rating *models.Rating) error
	GetByUserAndContent(userID, contentID string) (*models.Rating, error)
	GetByContent(contentID string, page, pageSize int) ([]models.Rating, int64, error)
	AggregateForContent(contentID string) (ContentAggregate, error)
	// WithTx returns a repository bound to the given transaction handle, so
	// the rate-content flow can run its reads and writes in one atomic unit.
	WithTx(tx *gorm.DB) RatingRepository
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) WithTx(tx *gorm.DB) RatingRepository {
	return &ratingRepository{db: tx}
}

// Create inserts a new rating. A unique-constraint violation is mapped to
// ErrDuplicateRating so the service can turn a lost race into a conflict.
func (r *ratingRepository) Create(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateRating
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateRating
		}
		return err
	}
	return nil
}

// GetByUserAndContent retrieves a user's rating for a specific content
func (r *ratingRepository) GetByUserAndContent(userID, contentID string) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByContent retrieves all ratings for a content with pagination
func (r *ratingRepository) GetByContent(contentID string, page, pageSize int) ([]models.Rating, int64, error) {
	var ratings []models.Rating
	var total int64

	if err := r.db.Model(&models.Rating{}).Where("content_id = ?", contentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("content_id = ?", contentID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&ratings).Error
	if err != nil {
		return nil, 0, err
	}

	return ratings, total, nil
}

// AggregateForContent computes count and mean in a single query so two
// concurrent writers never see a count from one snapshot and an average
// from another. Returns {0, 0} when the content has no ratings.
func (r *ratingRepository) AggregateForContent(contentID string) (ContentAggregate, error) {
	var row struct {
		Count   int64
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COUNT(rating) as count, COALESCE(AVG(rating), 0) as average").
		Where("content_id = ?", contentID).
		Scan(&row).Error
	if err != nil {
		return ContentAggregate{}, err
	}

	return ContentAggregate{Count: row.Count, Average: row.Average}, nil
}
