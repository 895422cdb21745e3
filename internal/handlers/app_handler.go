package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/f1rstwash/booking-api/internal/config"
)

type AppHandler struct {
	cfg *config.Config
}

func NewAppHandler(cfg *config.Config) *AppHandler {
	return &AppHandler{cfg: cfg}
}

// Root answers 200 for load-balancer health checks and redirects browsers
// to the frontend.
func (h *AppHandler) Root(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, h.cfg.FrontendURL)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Booking API"})
}

func (h *AppHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
