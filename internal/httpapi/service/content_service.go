package service

import (
	"context"
	"errors"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/models"
	"mediarate/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidCategory = errors.New("invalid content category")
	ErrNotContentOwner = errors.New("content can only be modified by its creator")
)

type ContentService interface {
	Create(ctx context.Context, userID string, req dto.CreateContentRequest) (*dto.ContentResponse, error)
	Get(ctx context.Context, contentID string) (*dto.ContentResponse, error)
	List(ctx context.Context, req dto.QueryContentsRequest) (*dto.PaginatedContentResponse, error)
	Update(ctx context.Context, userID, contentID string, req dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(ctx context.Context, userID, contentID string) error
}

type contentService struct {
	contentRepo *repository.ContentRepo
}

func NewContentService(contentRepo *repository.ContentRepo) ContentService {
	return &contentService{contentRepo: contentRepo}
}

func (s *contentService) Create(ctx context.Context, userID string, req dto.CreateContentRequest) (*dto.ContentResponse, error) {
	category := models.ContentCategory(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	content := &models.Content{
		Title:        req.Title,
		Description:  req.Description,
		Category:     category,
		ThumbnailURL: req.ThumbnailURL,
		ContentURL:   req.ContentURL,
		Author:       req.Author,
		CreatedBy:    userID,
		Status:       true,
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return dto.FromModelToContentResponse(content), nil
}

func (s *contentService) Get(ctx context.Context, contentID string) (*dto.ContentResponse, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	return dto.FromModelToContentResponse(content), nil
}

func (s *contentService) List(ctx context.Context, req dto.QueryContentsRequest) (*dto.PaginatedContentResponse, error) {
	if req.Category != "" && !models.ContentCategory(req.Category).Valid() {
		return nil, ErrInvalidCategory
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.Limit
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := repository.ContentFilter{
		Search:    req.Search,
		Category:  models.ContentCategory(req.Category),
		CreatedBy: req.CreatedBy,
		MinRating: req.MinRating,
		SortBy:    req.SortBy,
		Order:     req.Order,
		Page:      page,
		PageSize:  pageSize,
	}

	contents, total, err := s.contentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ContentResponse, 0, len(contents))
	for i := range contents {
		responses = append(responses, *dto.FromModelToContentResponse(&contents[i]))
	}

	return dto.NewPaginatedContentResponse(responses, total, page, pageSize), nil
}

func (s *contentService) Update(ctx context.Context, userID, contentID string, req dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if content.CreatedBy != userID {
		return nil, ErrNotContentOwner
	}

	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Description != nil {
		content.Description = req.Description
	}
	if req.Category != nil {
		category := models.ContentCategory(*req.Category)
		if !category.Valid() {
			return nil, ErrInvalidCategory
		}
		content.Category = category
	}
	if req.ThumbnailURL != nil {
		content.ThumbnailURL = req.ThumbnailURL
	}
	if req.ContentURL != nil {
		content.ContentURL = req.ContentURL
	}
	if req.Author != nil {
		content.Author = req.Author
	}

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return dto.FromModelToContentResponse(content), nil
}

func (s *contentService) Delete(ctx context.Context, userID, contentID string) error {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}

	if content.CreatedBy != userID {
		return ErrNotContentOwner
	}

	if err := s.contentRepo.SoftDelete(ctx, contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return err
	}
	return nil
}
