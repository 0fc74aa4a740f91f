// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/handler"
	"github.com/medialogapp/medialog-server/internal/middleware"
	"github.com/medialogapp/medialog-server/internal/server"
)

// Setup builds the Echo instance: global middleware in execution
// order, the global error handler, and every route.
func Setup(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Order matters: request id first so everything downstream can
	// correlate, then tracing, session identification, and the
	// context-enhanced logger that picks all of it up.
	e.Use(m.Global.Recover())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(m.Tracing.NewRelicMiddleware())
	e.Use(m.Tracing.EnhanceTracing())
	e.Use(m.Auth.IdentifySession())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h, m)

	return e
}

func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	// Users and authentication.
	e.POST("/users", h.User.Create())
	e.GET("/users", h.User.List())
	e.GET("/users/:id", h.User.Get())
	e.POST("/login", h.User.Login(), m.RateLimit.LoginLimiter())

	// Categories.
	e.POST("/categories", h.Category.Create())
	e.GET("/categories", h.Category.List())
	e.GET("/categories/:id", h.Category.Get())

	// Items, including tag and creator assignment.
	e.POST("/items", h.Item.Create())
	e.GET("/items", h.Item.List())
	e.GET("/items/:id", h.Item.Get())
	e.PATCH("/items/:id", h.Item.Update())
	e.DELETE("/items/:id", h.Item.Delete())
	e.POST("/items/:id/tags", h.Item.AssignTags())
	e.POST("/items/:id/creators", h.Item.AssignCreators())
	e.GET("/items/:id/reviews", h.Review.ListByItem())

	// Reviews.
	e.POST("/reviews", h.Review.Create())
	e.GET("/reviews", h.Review.List())
	e.GET("/reviews/:id", h.Review.Get())

	// Tags.
	e.POST("/tags", h.Tag.Create())
	e.GET("/tags", h.Tag.List())
	e.GET("/tags/:id", h.Tag.Get())

	// Creators.
	e.POST("/creators", h.Creator.Create())
	e.GET("/creators", h.Creator.List())
	e.GET("/creators/:id", h.Creator.Get())
}
