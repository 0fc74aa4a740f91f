package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type TagHandler struct {
	Handler
	tags *service.TagService
}

func NewTagHandler(s *server.Server, services *service.Services) *TagHandler {
	return &TagHandler{
		Handler: NewHandler(s),
		tags:    services.Tag,
	}
}

func (h *TagHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *TagHandler) create(c echo.Context, req *NamedRequest) (NamedResponse, error) {
	tag, err := h.tags.Create(c.Request().Context(), req.Name)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(tag.ID, tag.Name), nil
}

func (h *TagHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *TagHandler) list(c echo.Context, _ *emptyRequest) ([]NamedResponse, error) {
	tags, err := h.tags.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return namedResponses(tags, func(tag domain.Tag) NamedResponse {
		return toNamedResponse(tag.ID, tag.Name)
	}), nil
}

func (h *TagHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *TagHandler) get(c echo.Context, _ *emptyRequest) (NamedResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return NamedResponse{}, err
	}

	tag, err := h.tags.Get(c.Request().Context(), id)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(tag.ID, tag.Name), nil
}
