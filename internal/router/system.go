package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business API.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	// Root banner, kept for quick manual checks.
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.MessageResponse{Message: "Medialog API is running"})
	})

	// Health endpoint used by load balancers and monitors.
	e.GET("/status", h.Health.CheckHealth)
}
