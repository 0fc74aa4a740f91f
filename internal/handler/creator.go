package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type CreatorHandler struct {
	Handler
	creators *service.CreatorService
}

func NewCreatorHandler(s *server.Server, services *service.Services) *CreatorHandler {
	return &CreatorHandler{
		Handler:  NewHandler(s),
		creators: services.Creator,
	}
}

func (h *CreatorHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *CreatorHandler) create(c echo.Context, req *NamedRequest) (NamedResponse, error) {
	creator, err := h.creators.Create(c.Request().Context(), req.Name)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(creator.ID, creator.Name), nil
}

func (h *CreatorHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *CreatorHandler) list(c echo.Context, _ *emptyRequest) ([]NamedResponse, error) {
	creators, err := h.creators.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return namedResponses(creators, func(creator domain.Creator) NamedResponse {
		return toNamedResponse(creator.ID, creator.Name)
	}), nil
}

func (h *CreatorHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *CreatorHandler) get(c echo.Context, _ *emptyRequest) (NamedResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return NamedResponse{}, err
	}

	creator, err := h.creators.Get(c.Request().Context(), id)
	if err != nil {
		return NamedResponse{}, err
	}

	return toNamedResponse(creator.ID, creator.Name), nil
}
