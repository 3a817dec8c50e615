package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mediarate/internal/httpapi/dto"
	"mediarate/internal/httpapi/service"
)

// MockContentService mocks the ContentService interface
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Create(ctx context.Context, userID string, req dto.CreateContentRequest) (*dto.ContentResponse, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentResponse), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, contentID string) (*dto.ContentResponse, error) {
	args := m.Called(contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentResponse), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, req dto.QueryContentsRequest) (*dto.PaginatedContentResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedContentResponse), args.Error(1)
}

func (m *MockContentService) Update(ctx context.Context, userID, contentID string, req dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	args := m.Called(userID, contentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentResponse), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, userID, contentID string) error {
	args := m.Called(userID, contentID)
	return args.Error(0)
}

func newContentRouter(mockService *MockContentService, userID string) *gin.Engine {
	router := setupRouter()
	contents := router.Group("/contents")
	h := NewContentHandler(mockService)
	h.RegisterRoutes(contents, fakeAuth(userID))
	return router
}

func TestContentCreate_Success(t *testing.T) {
	mockService := new(MockContentService)
	router := newContentRouter(mockService, "user-123")

	req := dto.CreateContentRequest{Title: "Hollow Knight", Category: "GAME"}
	resp := &dto.ContentResponse{ID: uuid.New().String(), Title: "Hollow Knight", Category: "GAME", CreatedBy: "user-123"}
	mockService.On("Create", "user-123", req).Return(resp, nil)

	w := postJSON(router, "/contents", gin.H{"title": "Hollow Knight", "category": "GAME"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var got dto.ContentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hollow Knight", got.Title)

	mockService.AssertExpectations(t)
}

func TestContentCreate_InvalidCategory(t *testing.T) {
	mockService := new(MockContentService)
	router := newContentRouter(mockService, "user-123")

	req := dto.CreateContentRequest{Title: "Mystery", Category: "PODCAST"}
	mockService.On("Create", "user-123", req).Return(nil, service.ErrInvalidCategory)

	w := postJSON(router, "/contents", gin.H{"title": "Mystery", "category": "PODCAST"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestContentGet_NotFound(t *testing.T) {
	mockService := new(MockContentService)
	router := newContentRouter(mockService, "user-123")

	contentID := uuid.New().String()
	mockService.On("Get", contentID).Return(nil, service.ErrContentNotFound)

	req, _ := http.NewRequest("GET", "/contents/"+contentID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestContentUpdate_NotOwner(t *testing.T) {
	mockService := new(MockContentService)
	router := newContentRouter(mockService, "user-456")

	contentID := uuid.New().String()
	newTitle := "Renamed"
	req := dto.UpdateContentRequest{Title: &newTitle}
	mockService.On("Update", "user-456", contentID, req).Return(nil, service.ErrNotContentOwner)

	payload, _ := json.Marshal(gin.H{"title": "Renamed"})
	httpReq, _ := http.NewRequest("PUT", "/contents/"+contentID, bytes.NewBuffer(payload))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestContentList_PassesQuery(t *testing.T) {
	mockService := new(MockContentService)
	router := newContentRouter(mockService, "user-123")

	expected := dto.QueryContentsRequest{
		Page:     1,
		Limit:    10,
		Category: "GAME",
		SortBy:   "average_rating",
		Order:    "desc",
	}
	mockService.On("List", expected).Return(&dto.PaginatedContentResponse{
		Data: []dto.ContentResponse{}, Page: 1, PageSize: 10,
	}, nil)

	req, _ := http.NewRequest("GET", "/contents?category=GAME&sort_by=average_rating", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
