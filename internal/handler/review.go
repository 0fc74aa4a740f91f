package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, services *service.Services) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: services.Review,
	}
}

type CreateReviewRequest struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
	ItemID int64   `json:"item_id"`
	UserID int64   `json:"user_id"`
}

func (r *CreateReviewRequest) Validate() error {
	rating, err := validation.ParseOptionalRating(r.Rating)
	if err != nil {
		return err
	}
	if rating == nil {
		return errs.NewBadRequest(errs.CodeMissingField, "Missing or empty field: rating")
	}

	if err := requireBodyID("item_id", r.ItemID); err != nil {
		return err
	}
	return requireBodyID("user_id", r.UserID)
}

type ReviewResponse struct {
	ID     int64   `json:"id"`
	Rating int     `json:"rating"`
	Text   *string `json:"text"`
	UserID int64   `json:"user_id"`
	ItemID int64   `json:"item_id"`
}

func toReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:     review.ID,
		Rating: review.Rating,
		Text:   review.Text,
		UserID: review.UserID,
		ItemID: review.ItemID,
	}
}

func (h *ReviewHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *ReviewHandler) create(c echo.Context, req *CreateReviewRequest) (ReviewResponse, error) {
	review, err := h.reviews.Create(c.Request().Context(), repository.CreateReviewParams{
		Rating: *req.Rating,
		Text:   req.Text,
		ItemID: req.ItemID,
		UserID: req.UserID,
	})
	if err != nil {
		return ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (h *ReviewHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *ReviewHandler) list(c echo.Context, _ *emptyRequest) ([]ReviewResponse, error) {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}

	return responses, nil
}

func (h *ReviewHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *ReviewHandler) get(c echo.Context, _ *emptyRequest) (ReviewResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return ReviewResponse{}, err
	}

	review, err := h.reviews.Get(c.Request().Context(), id)
	if err != nil {
		return ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

// ListByItem serves GET /items/:id/reviews.
func (h *ReviewHandler) ListByItem() echo.HandlerFunc {
	return Handle(h.Handler, h.listByItem, http.StatusOK)
}

func (h *ReviewHandler) listByItem(c echo.Context, _ *emptyRequest) ([]ReviewResponse, error) {
	itemID, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return nil, err
	}

	reviews, err := h.reviews.ListByItem(c.Request().Context(), itemID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i]))
	}

	return responses, nil
}
