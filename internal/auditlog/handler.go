package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List - GET /audit-logs?resource=&action=&status=&user_id=&from_date=&to_date=&page=&limit=
func (h *Handler) List(c *gin.Context) {
	f := Filter{
		Resource: c.Query("resource"),
		Action:   c.Query("action"),
		Status:   c.Query("status"),
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		uid := uint(id)
		f.UserID = &uid
	}

	var ok bool
	if f.From, ok = dayParam(c, "from_date", false); !ok {
		return
	}
	if f.To, ok = dayParam(c, "to_date", true); !ok {
		return
	}

	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))

	page, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// BookingTrail - GET /audit-logs/bookings/:id
func (h *Handler) BookingTrail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	entries, err := h.service.Trail(c.Request.Context(), ResourceBooking, uint(id))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetByID - GET /audit-logs/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audit log ID"})
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// dayParam parses a yyyy-mm-dd query value. endOfDay moves it to the last
// second of that day. It writes the 400 itself and reports false on failure.
func dayParam(c *gin.Context, name string, endOfDay bool) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return nil, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, true
}
