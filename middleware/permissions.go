package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/internal/auth"
)

const accessContextKey = "access_context"

// AccessContext is the request-scoped identity of the caller. Handlers read it
// from the gin context instead of any shared session state.
type AccessContext struct {
	UserID   uint
	RoleName string
	Name     string
	Email    string
	Phone    string
}

func (ac *AccessContext) IsAdmin() bool {
	return ac != nil && ac.RoleName == auth.RoleAdmin
}

// NewAccessContext builds the context from a loaded account.
func NewAccessContext(user auth.User) AccessContext {
	return AccessContext{
		UserID:   user.ID,
		RoleName: user.Role.RoleName,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}

// GetAccessContext returns the caller's context, or nil for anonymous requests.
func GetAccessContext(c *gin.Context) *AccessContext {
	val, exists := c.Get(accessContextKey)
	if !exists {
		return nil
	}
	ac, ok := val.(AccessContext)
	if !ok {
		return nil
	}
	return &ac
}

// SetAccessContext attaches ac to the request.
func SetAccessContext(c *gin.Context, ac AccessContext) {
	c.Set(accessContextKey, ac)
}

// GetUserID returns the authenticated user's ID, if any.
func GetUserID(c *gin.Context) *uint {
	ac := GetAccessContext(c)
	if ac == nil {
		return nil
	}
	id := ac.UserID
	return &id
}
