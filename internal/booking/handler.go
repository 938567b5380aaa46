package booking

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/middleware"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ========================= REQUEST STRUCTS =============================

type CreateBookingRequest struct {
	SevaID      uint    `json:"sevaId"`
	DevoteeName string  `json:"devoteeName"`
	Gothram     string  `json:"gothram"`
	Rashi       string  `json:"rashi"`
	Nakshatra   string  `json:"nakshatra"`
	BookingDate string  `json:"bookingDate"`
	BookingType string  `json:"bookingType"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	GuestName   string  `json:"guestName"`
	GuestEmail  string  `json:"guestEmail"`
	GuestPhone  string  `json:"guestPhone"`
}

type UpdateBookingRequest struct {
	DevoteeName string `json:"devoteeName"`
	Gothram     string `json:"gothram"`
	Rashi       string `json:"rashi"`
	Nakshatra   string `json:"nakshatra"`
	BookingDate string `json:"bookingDate"`
	Status      string `json:"status"`
	GuestName   string `json:"guestName"`
	GuestEmail  string `json:"guestEmail"`
	GuestPhone  string `json:"guestPhone"`
}

// ========================= BOOKING HANDLERS =============================

// Create - POST /bookings (guest or signed in)
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking date"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.GetAccessContext(c), CreateRequest{
		SevaID:      req.SevaID,
		DevoteeName: req.DevoteeName,
		Gothram:     req.Gothram,
		Rashi:       req.Rashi,
		Nakshatra:   req.Nakshatra,
		BookingDate: bookingDate,
		BookingType: req.BookingType,
		Count:       req.Count,
		TotalAmount: req.TotalAmount,
		Guest: GuestContact{
			Name:  req.GuestName,
			Email: req.GuestEmail,
			Phone: req.GuestPhone,
		},
	}, middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListMine - GET /bookings/mybookings
func (h *Handler) ListMine(c *gin.Context) {
	actor := middleware.GetAccessContext(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, no token"})
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), actor.UserID)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAll - GET /bookings (admin)
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Track - GET /bookings/track/:phone (public)
func (h *Handler) Track(c *gin.Context) {
	bookings, err := h.service.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Update - PUT /bookings/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	bookingDate, err := parseDate(req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking date"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, UpdateRequest{
		DevoteeName: req.DevoteeName,
		Gothram:     req.Gothram,
		Rashi:       req.Rashi,
		Nakshatra:   req.Nakshatra,
		BookingDate: bookingDate,
		Status:      req.Status,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
	}, middleware.GetUserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete - DELETE /bookings/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.GetUserID(c), middleware.GetIPFromContext(c)); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking removed"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return 0, false
	}
	return uint(id), true
}

// parseDate accepts RFC 3339 timestamps and plain yyyy-mm-dd dates. An empty
// string yields nil.
func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
