package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/repository"
)

type fakeReviewRepo struct {
	reviews []domain.Review
	listed  []int64
}

func (f *fakeReviewRepo) Create(ctx context.Context, q database.Querier, params repository.CreateReviewParams) (*domain.Review, error) {
	return &domain.Review{
		ID:     1,
		Rating: params.Rating,
		Text:   params.Text,
		ItemID: params.ItemID,
		UserID: params.UserID,
	}, nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, errs.NewNotFound("Review not found")
}

func (f *fakeReviewRepo) List(ctx context.Context, q database.Querier) ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) ListByItem(ctx context.Context, q database.Querier, itemID int64) ([]domain.Review, error) {
	f.listed = append(f.listed, itemID)
	var reviews []domain.Review
	for _, r := range f.reviews {
		if r.ItemID == itemID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

type fakeItemChecker struct {
	existing map[int64]bool
}

func (f *fakeItemChecker) Exists(ctx context.Context, q database.Querier, id int64) (bool, error) {
	return f.existing[id], nil
}

func newReviewService(reviews *fakeReviewRepo, items *fakeItemChecker) *ReviewService {
	return &ReviewService{
		db:      fakeDB{},
		reviews: reviews,
		items:   items,
	}
}

func TestReviewListByItem(t *testing.T) {
	repo := &fakeReviewRepo{reviews: []domain.Review{
		{ID: 1, Rating: 5, ItemID: 7, UserID: 1},
		{ID: 2, Rating: 3, ItemID: 8, UserID: 1},
	}}
	svc := newReviewService(repo, &fakeItemChecker{existing: map[int64]bool{7: true}})

	reviews, err := svc.ListByItem(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(1), reviews[0].ID)
}

func TestReviewListByItemUnknownItem(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := newReviewService(repo, &fakeItemChecker{})

	_, err := svc.ListByItem(context.Background(), 404)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, []string{"Item with id 404 not found"}, httpErr.Errors)
	assert.Empty(t, repo.listed)
}
