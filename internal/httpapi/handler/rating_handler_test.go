package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/service"
)

// MockRatingService mocks the RatingService interface
type MockRatingService struct {
	mock.Mock
}

func (m *MockRatingService) RateContent(ctx context.Context, userID, contentID string, req dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(userID, contentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) GetUserRating(ctx context.Context, userID, contentID string) (*dto.RatingResponse, error) {
	args := m.Called(userID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *MockRatingService) GetContentRatings(ctx context.Context, contentID string, page, pageSize int) (*dto.PaginatedRatingResponse, error) {
	args := m.Called(contentID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedRatingResponse), args.Error(1)
}

func (m *MockRatingService) GetContentAggregate(ctx context.Context, contentID string) (*dto.AggregateResponse, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AggregateResponse), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// fakeAuth stands in for the JWT middleware and injects the caller identity
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func postRating(router *gin.Engine, contentID string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/contents/"+contentID+"/ratings", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateContent_Created(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	contentID := uuid.New().String()
	req := dto.CreateRatingRequest{Rating: 5}
	resp := &dto.RatingResponse{
		UserID:    "user-123",
		ContentID: contentID,
		Rating:    5,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mockService.On("RateContent", "user-123", contentID, req).Return(resp, nil)

	w := postRating(router, contentID, gin.H{"rating": 5})

	assert.Equal(t, http.StatusCreated, w.Code)

	var got dto.RatingResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "user-123", got.UserID)
	assert.Equal(t, 5, got.Rating)

	mockService.AssertExpectations(t)
}

func TestRateContent_ContentNotFound(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	contentID := uuid.New().String()
	mockService.On("RateContent", "user-123", contentID, dto.CreateRatingRequest{Rating: 4}).
		Return(nil, service.ErrContentNotFound)

	w := postRating(router, contentID, gin.H{"rating": 4})

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestRateContent_Conflict(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	contentID := uuid.New().String()
	mockService.On("RateContent", "user-123", contentID, dto.CreateRatingRequest{Rating: 2}).
		Return(nil, service.ErrAlreadyRated)

	w := postRating(router, contentID, gin.H{"rating": 2})

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestRateContent_ValidationRejectsOutOfRange(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	contentID := uuid.New().String()

	// 0 and 6 never reach the service
	for _, rating := range []int{0, 6} {
		w := postRating(router, contentID, gin.H{"rating": rating})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Oversized comment rejected too
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	w := postRating(router, contentID, gin.H{"rating": 3, "comment": string(long)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNotCalled(t, "RateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestRateContent_InvalidContentID(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	w := postRating(router, "not-a-uuid", gin.H{"rating": 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "RateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestRateContent_Unauthenticated(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	// Middleware that never sets userID, as after a failed JWT check
	h.RegisterRoutes(contents, func(c *gin.Context) { c.Next() })

	w := postRating(router, uuid.New().String(), gin.H{"rating": 5})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "RateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAverage_ReturnsStoredAggregate(t *testing.T) {
	mockService := new(MockRatingService)
	h := NewRatingHandler(mockService)
	router := setupRouter()
	contents := router.Group("/contents")
	h.RegisterRoutes(contents, fakeAuth("user-123"))

	contentID := uuid.New().String()
	mockService.On("GetContentAggregate", contentID).Return(&dto.AggregateResponse{
		ContentID:     contentID,
		AverageRating: 4.0,
		TotalRatings:  2,
	}, nil)

	req, _ := http.NewRequest("GET", "/contents/"+contentID+"/ratings/average", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.AggregateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(2), got.TotalRatings)
	assert.InDelta(t, 4.0, got.AverageRating, 0.001)

	mockService.AssertExpectations(t)
}
