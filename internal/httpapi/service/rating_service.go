package service

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/models"
	"mediarate/internal/httpapi/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrAlreadyRated    = errors.New("user has already rated this content")
	ErrRatingNotFound  = errors.New("rating not found")
	// ErrRatingFailed covers any storage failure during the atomic write.
	// It is surfaced opaquely and never retried here: after a conflict a
	// blind retry could observe its own committed rating.
	ErrRatingFailed = errors.New("rating could not be recorded")
)

type RatingService interface {
	RateContent(ctx context.Context, userID, contentID string, req dto.CreateRatingRequest) (*dto.RatingResponse, error)
	GetUserRating(ctx context.Context, userID, contentID string) (*dto.RatingResponse, error)
	GetContentRatings(ctx context.Context, contentID string, page, pageSize int) (*dto.PaginatedRatingResponse, error)
	GetContentAggregate(ctx context.Context, contentID string) (*dto.AggregateResponse, error)
}

type ratingService struct {
	db          *gorm.DB
	ratingRepo  repository.RatingRepository
	contentRepo *repository.ContentRepo
	logger      *slog.Logger
}

func NewRatingService(db *gorm.DB, ratingRepo repository.RatingRepository, contentRepo *repository.ContentRepo, logger *slog.Logger) RatingService {
	return &ratingService{
		db:          db,
		ratingRepo:  ratingRepo,
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// RateContent creates the caller's rating for a content and keeps the
// denormalized aggregates consistent. The duplicate lookup, the insert, the
// content aggregate rewrite, and the author counter increment all run inside
// one transaction: either every write commits or none does. The composite
// key on ratings is the final arbiter for duplicates; the lookup only turns
// the common case into a friendly conflict without burning the constraint.
// The content row is locked for the whole transaction, so concurrent raters
// of the same content recompute the aggregate one after another and the
// stored count always matches the rating rows.
func (s *ratingService) RateContent(ctx context.Context, userID, contentID string, req dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	rating := &models.Rating{
		UserID:    userID,
		ContentID: contentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the content row up front; concurrent raters of the same
		// content serialize here before touching the aggregate
		var content models.Content
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", contentID, true).
			First(&content).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		txRatings := s.ratingRepo.WithTx(tx)

		// Check if the user already rated this content
		if _, err := txRatings.GetByUserAndContent(userID, contentID); err == nil {
			return ErrAlreadyRated
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := txRatings.Create(rating); err != nil {
			// A concurrent writer can beat the lookup; the constraint wins
			if errors.Is(err, repository.ErrDuplicateRating) {
				return ErrAlreadyRated
			}
			return err
		}

		// Recompute the content aggregate from the ratings table within the
		// same transaction, so no reader sees a rating without its aggregate
		agg, err := txRatings.AggregateForContent(contentID)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.Content{}).Where("id = ?", contentID).
			Updates(map[string]interface{}{
				"rating_count":   agg.Count,
				"average_rating": math.Round(agg.Average*100) / 100,
			}).Error; err != nil {
			return err
		}

		// Bump the rater's authored-rating counter
		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("rating_count", gorm.Expr("rating_count + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyRated) || errors.Is(err, ErrContentNotFound) {
			return nil, err
		}
		s.logger.Error("rating transaction failed",
			"user_id", userID,
			"content_id", contentID,
			"error", err,
		)
		return nil, ErrRatingFailed
	}

	return dto.FromModelToRatingResponse(rating), nil
}

// GetUserRating retrieves the caller's rating for a specific content
func (s *ratingService) GetUserRating(ctx context.Context, userID, contentID string) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByUserAndContent(userID, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	return dto.FromModelToRatingResponse(rating), nil
}

// GetContentRatings retrieves all ratings for a content with pagination
func (s *ratingService) GetContentRatings(ctx context.Context, contentID string, page, pageSize int) (*dto.PaginatedRatingResponse, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	ratings, total, err := s.ratingRepo.GetByContent(contentID, page, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RatingListItem, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, dto.RatingListItem{
			Username:  rating.User.Username,
			Rating:    rating.Rating,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
		})
	}

	return dto.NewPaginatedRatingResponse(items, int(total), page, pageSize), nil
}

// GetContentAggregate retrieves the denormalized average and count stored on
// the content row.
func (s *ratingService) GetContentAggregate(ctx context.Context, contentID string) (*dto.AggregateResponse, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	return &dto.AggregateResponse{
		ContentID:     content.ID,
		AverageRating: content.AverageRating,
		TotalRatings:  content.RatingCount,
	}, nil
}
