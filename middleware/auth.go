package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sharath018/seva-booking-backend/config"
	"github.com/sharath018/seva-booking-backend/internal/auth"
)

var errMissingHeader = errors.New("missing Authorization header")

// AuthMiddleware requires a valid bearer token and sets up the access context
func AuthMiddleware(cfg *config.Config, authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, cfg, authSvc)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth attaches the access context when a valid token is present and
// lets anonymous requests through. A malformed or expired token is rejected
// so that a signed-in devotee is never silently booked as a guest.
func OptionalAuth(cfg *config.Config, authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authenticate(c, cfg, authSvc)
		if errors.Is(err, errMissingHeader) {
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		setUser(c, user)
		c.Next()
	}
}

func authenticate(c *gin.Context, cfg *config.Config, authSvc auth.Service) (auth.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return auth.User{}, errMissingHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return auth.User{}, errors.New("invalid Authorization header")
	}

	userID, err := ParseAccessToken(parts[1], cfg.JWTAccessSecret)
	if err != nil {
		return auth.User{}, err
	}

	user, err := authSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return auth.User{}, errors.New("user not found")
	}
	return *user, nil
}

// ParseAccessToken validates an HS256 token and returns its user_id claim.
func ParseAccessToken(tokenStr, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id missing in token")
	}
	return uint(userIDFloat), nil
}

func setUser(c *gin.Context, user auth.User) {
	c.Set("user", user)
	c.Set("user_id", user.ID)
	SetAccessContext(c, NewAccessContext(user))
}
