package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharath018/seva-booking-backend/internal/apperr"
	"github.com/sharath018/seva-booking-backend/middleware"
)

type Handler struct {
	service ReportService
}

func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

// ExportBookings - GET /reports/bookings?format=pdf|excel|csv (admin)
// Without format the sankalpa list is returned as JSON.
func (h *Handler) ExportBookings(c *gin.Context) {
	from, to, err := DateRange(c.Query("date_range"), c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := SankalpaFilter{From: from, To: to, Status: c.Query("status")}
	if sevaID := c.Query("seva_id"); sevaID != "" {
		id, err := strconv.ParseUint(sevaID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seva_id"})
			return
		}
		filter.SevaID = uint(id)
	}

	format := c.Query("format")
	if format == "" {
		rows, err := h.service.GetSankalpaList(c.Request.Context(), filter)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
		return
	}

	out, err := h.service.ExportSankalpaList(c.Request.Context(), format, filter, middleware.GetUserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sendFile(c, out)
}

// Receipt - GET /bookings/:id/receipt (admin)
func (h *Handler) Receipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID"})
		return
	}

	out, err := h.service.BookingReceipt(c.Request.Context(), uint(id), middleware.GetUserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	sendFile(c, out)
}

func sendFile(c *gin.Context, out *Export) {
	c.Header("Content-Disposition", "attachment; filename="+out.Filename)
	c.Data(http.StatusOK, out.MimeType, out.Data)
}
