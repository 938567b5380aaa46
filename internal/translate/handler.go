package translate

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Translate - GET /translate?text=&from=en&to=kn
func (h *Handler) Translate(c *gin.Context) {
	text := c.Query("text")
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	from := c.DefaultQuery("from", "en")
	to := c.DefaultQuery("to", "kn")

	translated, err := h.svc.Translate(c.Request.Context(), text, from, to)
	if err != nil {
		log.Printf("❌ Translation %s->%s failed: %v", from, to, err)
		if errors.Is(err, ErrInvalidResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ErrInvalidResponse.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": ErrTranslationFailed.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"translation": translated})
}
