package service

import (
	"context"
	"fmt"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

type reviewRepo interface {
	Create(ctx context.Context, q database.Querier, params repository.CreateReviewParams) (*domain.Review, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Review, error)
	List(ctx context.Context, q database.Querier) ([]domain.Review, error)
	ListByItem(ctx context.Context, q database.Querier, itemID int64) ([]domain.Review, error)
}

type itemChecker interface {
	Exists(ctx context.Context, q database.Querier, id int64) (bool, error)
}

type ReviewService struct {
	db      txRunner
	reviews reviewRepo
	items   itemChecker
}

func NewReviewService(s *server.Server, repos *repository.Repositories) *ReviewService {
	return &ReviewService{
		db:      s.DB,
		reviews: repos.Review,
		items:   repos.Item,
	}
}

// Create inserts a review. A dangling item_id or user_id surfaces as a
// foreign key violation from the database; an out-of-range rating is
// rejected before the insert by the handler.
func (s *ReviewService) Create(ctx context.Context, params repository.CreateReviewParams) (*domain.Review, error) {
	var review *domain.Review
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		review, err = s.reviews.Create(ctx, q, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) Get(ctx context.Context, id int64) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, s.db.Querier(), id)
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx, s.db.Querier())
}

// ListByItem returns the reviews of an item, oldest first. The item
// must exist; listing reviews of a missing item is a not found error,
// not an empty list.
func (s *ReviewService) ListByItem(ctx context.Context, itemID int64) ([]domain.Review, error) {
	q := s.db.Querier()

	exists, err := s.items.Exists(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewNotFound(fmt.Sprintf("Item with id %d not found", itemID))
	}

	return s.reviews.ListByItem(ctx, q, itemID)
}
