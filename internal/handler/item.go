package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type ItemHandler struct {
	Handler
	items *service.ItemService
}

func NewItemHandler(s *server.Server, services *service.Services) *ItemHandler {
	return &ItemHandler{
		Handler: NewHandler(s),
		items:   services.Item,
	}
}

type CreateItemRequest struct {
	Title      string  `json:"title" validate:"required,notblank,max=200"`
	CategoryID int64   `json:"category_id"`
	UserID     int64   `json:"user_id"`
	ImageURL   *string `json:"image_url"`
}

func (r *CreateItemRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	r.Title = strings.TrimSpace(r.Title)

	if err := requireBodyID("category_id", r.CategoryID); err != nil {
		return err
	}
	return requireBodyID("user_id", r.UserID)
}

// UpdateItemRequest is a partial update: only fields present in the
// body are applied.
type UpdateItemRequest struct {
	Title      *string `json:"title"`
	CategoryID *int64  `json:"category_id"`
	UserID     *int64  `json:"user_id"`
	ImageURL   *string `json:"image_url"`
}

func (r *UpdateItemRequest) Validate() error {
	if r.Title == nil && r.CategoryID == nil && r.UserID == nil && r.ImageURL == nil {
		return errs.NewBadRequest(errs.CodeMalformedInput, "No data provided to update")
	}

	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if *r.Title == "" {
			return errs.NewBadRequest(errs.CodeMissingField, "Title cannot be empty")
		}
	}

	if r.CategoryID != nil {
		if err := validation.RequirePositiveInt("category_id", *r.CategoryID); err != nil {
			return err
		}
	}
	if r.UserID != nil {
		return validation.RequirePositiveInt("user_id", *r.UserID)
	}
	return nil
}

type AssignTagsRequest struct {
	TagIDs []int64 `json:"tag_ids"`
}

func (r *AssignTagsRequest) Validate() error {
	return validateIDList("tag_ids", r.TagIDs)
}

type AssignCreatorsRequest struct {
	CreatorIDs []int64 `json:"creator_ids"`
}

func (r *AssignCreatorsRequest) Validate() error {
	return validateIDList("creator_ids", r.CreatorIDs)
}

// ItemResponse flattens an item's tags and creators into name lists,
// each sorted ascending.
type ItemResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	UserID     int64    `json:"user_id"`
	CategoryID int64    `json:"category_id"`
	ImageURL   *string  `json:"image_url"`
	Tags       []string `json:"tags"`
	Creators   []string `json:"creators"`
}

func toItemResponse(detail *service.ItemDetail) ItemResponse {
	return ItemResponse{
		ID:         detail.Item.ID,
		Title:      detail.Item.Title,
		UserID:     detail.Item.UserID,
		CategoryID: detail.Item.CategoryID,
		ImageURL:   detail.Item.ImageURL,
		Tags:       detail.Tags,
		Creators:   detail.Creators,
	}
}

func (h *ItemHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *ItemHandler) create(c echo.Context, req *CreateItemRequest) (ItemResponse, error) {
	detail, err := h.items.Create(c.Request().Context(), repository.CreateItemParams{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return ItemResponse{}, err
	}

	return toItemResponse(detail), nil
}

func (h *ItemHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *ItemHandler) list(c echo.Context, _ *emptyRequest) ([]ItemResponse, error) {
	details, err := h.items.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(details))
	for i := range details {
		responses = append(responses, toItemResponse(&details[i]))
	}

	return responses, nil
}

func (h *ItemHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *ItemHandler) get(c echo.Context, _ *emptyRequest) (ItemResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return ItemResponse{}, err
	}

	detail, err := h.items.Get(c.Request().Context(), id)
	if err != nil {
		return ItemResponse{}, err
	}

	return toItemResponse(detail), nil
}

func (h *ItemHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, h.update, http.StatusOK)
}

func (h *ItemHandler) update(c echo.Context, req *UpdateItemRequest) (ItemResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return ItemResponse{}, err
	}

	detail, err := h.items.Update(c.Request().Context(), id, repository.UpdateItemParams{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return ItemResponse{}, err
	}

	return toItemResponse(detail), nil
}

func (h *ItemHandler) Delete() echo.HandlerFunc {
	return Handle(h.Handler, h.delete, http.StatusOK)
}

func (h *ItemHandler) delete(c echo.Context, _ *emptyRequest) (MessageResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return MessageResponse{}, err
	}

	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return MessageResponse{}, err
	}

	return MessageResponse{Message: fmt.Sprintf("Item %d deleted successfully", id)}, nil
}

func (h *ItemHandler) AssignTags() echo.HandlerFunc {
	return Handle(h.Handler, h.assignTags, http.StatusOK)
}

func (h *ItemHandler) assignTags(c echo.Context, req *AssignTagsRequest) (ItemResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return ItemResponse{}, err
	}

	detail, err := h.items.AssignTags(c.Request().Context(), id, req.TagIDs)
	if err != nil {
		return ItemResponse{}, err
	}

	return toItemResponse(detail), nil
}

func (h *ItemHandler) AssignCreators() echo.HandlerFunc {
	return Handle(h.Handler, h.assignCreators, http.StatusOK)
}

func (h *ItemHandler) assignCreators(c echo.Context, req *AssignCreatorsRequest) (ItemResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return ItemResponse{}, err
	}

	detail, err := h.items.AssignCreators(c.Request().Context(), id, req.CreatorIDs)
	if err != nil {
		return ItemResponse{}, err
	}

	return toItemResponse(detail), nil
}

// requireBodyID reports a zero id as a missing field and a negative or
// otherwise invalid id as InvalidId, matching how path ids fail.
func requireBodyID(name string, value int64) error {
	if value == 0 {
		return errs.NewBadRequest(errs.CodeMissingField, fmt.Sprintf("Missing or empty field: %s", name))
	}
	return validation.RequirePositiveInt(name, value)
}

// validateIDList enforces a non-empty list of positive ids.
func validateIDList(name string, ids []int64) error {
	if len(ids) == 0 {
		return errs.NewBadRequest(errs.CodeMissingField, fmt.Sprintf("%s must be a non-empty list", name))
	}
	for _, id := range ids {
		if id <= 0 {
			return validation.RequirePositiveInt(name, id)
		}
	}
	return nil
}
