package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type CategoryHandler struct {
	Handler
	categories *service.CategoryService
}

func NewCategoryHandler(s *server.Server, services *service.Services) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: services.Category,
	}
}

// NamedRequest is the payload for creating a named lookup entity
// (category, tag, creator). The name is trimmed before persisting.
type NamedRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

func (r *NamedRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(r.Name)
	return nil
}

// NamedResponse is the response shape for named lookup entities.
type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toNamedResponse(id int64, name string) NamedResponse {
	return NamedResponse{ID: id, Name: name}
}

func (h *CategoryHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *CategoryHandler) create(c echo.Context, req *NamedRequest) (NamedResponse, error) {
	category, err := h.categories.Create(c.Request().Context(), req.Name)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(category.ID, category.Name), nil
}

func (h *CategoryHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *CategoryHandler) list(c echo.Context, _ *emptyRequest) ([]NamedResponse, error) {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return namedResponses(categories, func(cat domain.Category) NamedResponse {
		return toNamedResponse(cat.ID, cat.Name)
	}), nil
}

func (h *CategoryHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *CategoryHandler) get(c echo.Context, _ *emptyRequest) (NamedResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return NamedResponse{}, err
	}

	category, err := h.categories.Get(c.Request().Context(), id)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(category.ID, category.Name), nil
}

func namedResponses[T any](entities []T, convert func(T) NamedResponse) []NamedResponse {
	responses := make([]NamedResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, convert(entity))
	}
	return responses
}
