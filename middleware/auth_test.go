package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubAuth struct {
	users map[uint]auth.User
}

func (s stubAuth) Register(context.Context, auth.RegisterInput) (*auth.User, error) {
	return nil, errors.New("unused")
}

func (s stubAuth) Login(context.Context, auth.LoginInput) (string, *auth.User, error) {
	return "", nil, errors.New("unused")
}

func (s stubAuth) GetUserByID(_ context.Context, id uint) (*auth.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &u, nil
}

func signToken(t *testing.T, secret string, userID uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func testAuthService() stubAuth {
	return stubAuth{users: map[uint]auth.User{
		1: {ID: 1, Name: "Admin", Email: "admin@temple.com", Role: auth.UserRole{RoleName: auth.RoleAdmin}},
		2: {ID: 2, Name: "Ramesh Kumar", Email: "ramesh@example.com", Phone: "9876543210", Role: auth.UserRole{RoleName: auth.RoleDevotee}},
	}}
}

func TestParseAccessToken(t *testing.T) {
	id, err := ParseAccessToken(signToken(t, testSecret, 2, time.Now().Add(time.Hour)), testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(2), id)

	_, err = ParseAccessToken(signToken(t, "other", 2, time.Now().Add(time.Hour)), testSecret)
	assert.Error(t, err)

	_, err = ParseAccessToken(signToken(t, testSecret, 2, time.Now().Add(-time.Hour)), testSecret)
	assert.Error(t, err)
}

func newAuthRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		ac := GetAccessContext(c)
		if ac == nil {
			c.JSON(http.StatusOK, gin.H{"guest": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": ac.UserID, "role": ac.RoleName, "phone": ac.Phone})
	})
	r.GET("/x", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTAccessSecret: testSecret}
	r := newAuthRouter(AuthMiddleware(cfg, testAuthService()))

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, signToken(t, testSecret, 99, time.Now().Add(time.Hour))).Code)

	w := get(r, signToken(t, testSecret, 2, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":2,"role":"devotee","phone":"9876543210"}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	cfg := &config.Config{JWTAccessSecret: testSecret}
	r := newAuthRouter(OptionalAuth(cfg, testAuthService()))

	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"guest":true}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)

	w = get(r, signToken(t, testSecret, 2, time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":2`)
}

func TestRBACMiddleware(t *testing.T) {
	cfg := &config.Config{JWTAccessSecret: testSecret}
	r := newAuthRouter(AuthMiddleware(cfg, testAuthService()), RBACMiddleware(auth.RoleAdmin))

	assert.Equal(t, http.StatusForbidden, get(r, signToken(t, testSecret, 2, time.Now().Add(time.Hour))).Code)
	assert.Equal(t, http.StatusOK, get(r, signToken(t, testSecret, 1, time.Now().Add(time.Hour))).Code)

	bare := newAuthRouter(RBACMiddleware(auth.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, get(bare, "").Code)
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	c.Request.RemoteAddr = "10.0.0.5:5123"
	assert.Equal(t, "10.0.0.5", GetIPFromContext(c))

	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetIPFromContext(c))

	c.Set("client_ip", "198.51.100.1")
	assert.Equal(t, "198.51.100.1", GetIPFromContext(c))
}
