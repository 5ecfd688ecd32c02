package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/infrastructure/i18n"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler serves health checks and locale catalogs.
type SystemHandler struct {
	db     Pinger
	bundle *i18n.Bundle
	name   string
}

func NewSystemHandler(db Pinger, bundle *i18n.Bundle, name string) *SystemHandler {
	return &SystemHandler{db: db, bundle: bundle, name: name}
}

func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/i18n/messages", h.Messages)
}

func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": h.name,
	})
}

// Messages returns the UI message catalog for the request's locale.
func (h *SystemHandler) Messages(c *gin.Context) {
	locale := middleware.GetLocale(c)
	if locale == "" {
		locale = h.bundle.DefaultLocale()
	}
	respondOK(c, gin.H{
		"locale":   locale,
		"messages": h.bundle.Messages(locale),
	})
}
