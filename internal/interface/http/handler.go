package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-horoscope/internal/domain/horoscope"
	"github.com/yanqian/ai-horoscope/internal/infra/config"
)

// Handler wires the HTTP transport to the horoscope service.
type Handler struct {
	svc    horoscope.Service
	app    config.AppConfig
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, svc horoscope.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		app:    cfg.App,
		logger: logger.With("component", "http.handler"),
	}
}

type horoscopeRequest struct {
	BirthDate string `json:"birth_date"`
	UserName  string `json:"user_name"`
}

// Horoscope handles POST /horoscope.
func (h *Handler) Horoscope(c *gin.Context) {
	var req horoscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, badRequest(err))
		return
	}

	res, err := h.svc.Produce(c.Request.Context(), horoscope.Request{
		BirthDate: req.BirthDate,
		UserName:  req.UserName,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.logger.Info("horoscope generated", "sign", res.ZodiacSign, "request_id", requestIDFrom(c))
	c.JSON(http.StatusOK, res)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.app.Version,
	})
}

// Root describes the API.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": h.app.Name,
		"version": h.app.Version,
		"endpoints": gin.H{
			"horoscope": "POST /horoscope",
			"health":    "GET /health",
		},
		"plan": "FREE",
	})
}
