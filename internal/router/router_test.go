package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/handler"
	"github.com/medialogapp/medialog-server/internal/middleware"
	"github.com/medialogapp/medialog-server/internal/router"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
)

func newTestServer() *server.Server {
	nop := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{
				Port:               "8080",
				CORSAllowedOrigins: []string{"*"},
			},
		},
		Logger: &nop,
	}
}

func TestSetupRegistersAllRoutes(t *testing.T) {
	s := newTestServer()
	h := handler.NewHandlers(s, &service.Services{})
	m := middleware.NewMiddlewares(s, nil)

	e := router.Setup(s, h, m)

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	expected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/status"},

		{http.MethodPost, "/users"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/:id"},
		{http.MethodPost, "/login"},

		{http.MethodPost, "/categories"},
		{http.MethodGet, "/categories"},
		{http.MethodGet, "/categories/:id"},

		{http.MethodPost, "/items"},
		{http.MethodGet, "/items"},
		{http.MethodGet, "/items/:id"},
		{http.MethodPatch, "/items/:id"},
		{http.MethodDelete, "/items/:id"},
		{http.MethodPost, "/items/:id/tags"},
		{http.MethodPost, "/items/:id/creators"},
		{http.MethodGet, "/items/:id/reviews"},

		{http.MethodPost, "/reviews"},
		{http.MethodGet, "/reviews"},
		{http.MethodGet, "/reviews/:id"},

		{http.MethodPost, "/tags"},
		{http.MethodGet, "/tags"},
		{http.MethodGet, "/tags/:id"},

		{http.MethodPost, "/creators"},
		{http.MethodGet, "/creators"},
		{http.MethodGet, "/creators/:id"},
	}

	for _, route := range expected {
		key := route.method + " " + route.path
		assert.True(t, registered[key], fmt.Sprintf("route %s not registered", key))
	}
}

func TestSetupInstallsGlobalErrorHandler(t *testing.T) {
	s := newTestServer()
	h := handler.NewHandlers(s, &service.Services{})
	m := middleware.NewMiddlewares(s, nil)

	e := router.Setup(s, h, m)

	assert.NotNil(t, e.HTTPErrorHandler)
	assert.True(t, e.HideBanner)
	assert.True(t, e.HidePort)
}
