package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mediarate/internal/httpapi/models"
	"mediarate/internal/httpapi/service"
)

// stubAuthService accepts exactly one token and rejects everything else
type stubAuthService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubAuthService) Register(username, email, password string, fullName *string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(email, password string) (string, string, *models.User, error) {
	return "", "", nil, errors.New("not implemented")
}

func (s *stubAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	return nil
}

func (s *stubAuthService) ValidateToken(ctx context.Context, tokenString string) (*service.Claims, error) {
	if tokenString == s.validToken {
		return s.claims, nil
	}
	return nil, service.ErrInvalidToken
}

func newAuthTestRouter(stub *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(stub), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	stub := &stubAuthService{
		validToken: "good-token",
		claims:     &service.Claims{UserID: "user-123", Email: "tester@example.com"},
	}
	router := newAuthTestRouter(stub)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{validToken: "good-token"})

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "good-token") // missing Bearer prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{validToken: "good-token"})

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
