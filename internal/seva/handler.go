package seva

import (
	"net/http"
	"strconv"

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

type CreateSevaRequest struct {
	TitleEn       string  `json:"titleEn"`
	TitleKn       string  `json:"titleKn"`
	TempleNameEn  string  `json:"templeNameEn"`
	TempleNameKn  string  `json:"templeNameKn"`
	LocationEn    string  `json:"locationEn"`
	LocationKn    string  `json:"locationKn"`
	DescriptionEn string  `json:"descriptionEn"`
	DescriptionKn string  `json:"descriptionKn"`
	Price         float64 `json:"price" binding:"gte=0"`
	Image         string  `json:"image" binding:"required"`
	Category      string  `json:"category" binding:"required"`
}

type UpdateSevaRequest struct {
	TitleEn       string  `json:"titleEn"`
	TitleKn       string  `json:"titleKn"`
	TempleNameEn  string  `json:"templeNameEn"`
	TempleNameKn  string  `json:"templeNameKn"`
	LocationEn    string  `json:"locationEn"`
	LocationKn    string  `json:"locationKn"`
	DescriptionEn string  `json:"descriptionEn"`
	DescriptionKn string  `json:"descriptionKn"`
	Price         float64 `json:"price"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// ========================= SEVA HANDLERS =============================

// ListActive - GET /sevas (public, active only)
func (h *Handler) ListActive(c *gin.Context) {
	sevas, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, sevas)
}

// ListAll - GET /sevas/all (admin)
func (h *Handler) ListAll(c *gin.Context) {
	sevas, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, sevas)
}

// GetByID - GET /sevas/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seva, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, seva)
}

// Create - POST /sevas (admin)
func (h *Handler) Create(c *gin.Context) {
	var req CreateSevaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	seva, err := h.service.Create(c.Request.Context(), CreateInput(req), middleware.GetUserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, seva)
}

// Update - PUT /sevas/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateSevaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	in := UpdateInput{
		CreateInput: CreateInput{
			TitleEn:       req.TitleEn,
			TitleKn:       req.TitleKn,
			TempleNameEn:  req.TempleNameEn,
			TempleNameKn:  req.TempleNameKn,
			LocationEn:    req.LocationEn,
			LocationKn:    req.LocationKn,
			DescriptionEn: req.DescriptionEn,
			DescriptionKn: req.DescriptionKn,
			Price:         req.Price,
			Image:         req.Image,
			Category:      req.Category,
		},
		IsActive: req.IsActive,
	}

	seva, err := h.service.Update(c.Request.Context(), id, in, middleware.GetUserID(c), middleware.GetIPFromContext(c))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, seva)
}

// Delete - DELETE /sevas/:id (admin)
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id, middleware.GetUserID(c), middleware.GetIPFromContext(c)); err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seva removed"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seva ID"})
		return 0, false
	}
	return uint(id), true
}
