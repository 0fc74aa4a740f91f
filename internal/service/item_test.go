package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/repository"
)

type fakeItemRepo struct {
	item         *domain.Item
	tagNames     []string
	creatorNames []string

	assignedTags     []int64
	assignedCreators []int64
	deletedID        int64
	deleteErr        error
	updated          *repository.UpdateItemParams
}

func (f *fakeItemRepo) Create(ctx context.Context, q database.Querier, params repository.CreateItemParams) (*domain.Item, error) {
	return &domain.Item{
		ID:         99,
		Title:      params.Title,
		UserID:     params.UserID,
		CategoryID: params.CategoryID,
		ImageURL:   params.ImageURL,
	}, nil
}

func (f *fakeItemRepo) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Item, error) {
	if f.item == nil || f.item.ID != id {
		return nil, errs.NewNotFound(fmt.Sprintf("Item with id %d not found", id))
	}
	return f.item, nil
}

func (f *fakeItemRepo) List(ctx context.Context, q database.Querier) ([]domain.Item, error) {
	if f.item == nil {
		return []domain.Item{}, nil
	}
	return []domain.Item{*f.item}, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, q database.Querier, id int64, params repository.UpdateItemParams) (*domain.Item, error) {
	f.updated = &params
	if f.item == nil || f.item.ID != id {
		return nil, errs.NewNotFound(fmt.Sprintf("Item with id %d not found", id))
	}
	if params.Title != nil {
		f.item.Title = *params.Title
	}
	return f.item, nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, q database.Querier, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeItemRepo) AssignTags(ctx context.Context, q database.Querier, itemID int64, tagIDs []int64) error {
	f.assignedTags = append(f.assignedTags, tagIDs...)
	return nil
}

func (f *fakeItemRepo) AssignCreators(ctx context.Context, q database.Querier, itemID int64, creatorIDs []int64) error {
	f.assignedCreators = append(f.assignedCreators, creatorIDs...)
	return nil
}

func (f *fakeItemRepo) TagNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error) {
	return f.tagNames, nil
}

func (f *fakeItemRepo) CreatorNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error) {
	return f.creatorNames, nil
}

// fakeIDChecker reports every id outside its known set as missing.
type fakeIDChecker struct {
	known map[int64]bool
}

func (f *fakeIDChecker) MissingIDs(ctx context.Context, q database.Querier, ids []int64) ([]int64, error) {
	var missing []int64
	for _, id := range ids {
		if !f.known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func newItemService(items *fakeItemRepo, tags, creators *fakeIDChecker) *ItemService {
	return &ItemService{
		db:       fakeDB{},
		items:    items,
		tags:     tags,
		creators: creators,
	}
}

func TestItemAssignTags(t *testing.T) {
	repo := &fakeItemRepo{
		item:         &domain.Item{ID: 7, Title: "Dune"},
		tagNames:     []string{"noir", "sci-fi"},
		creatorNames: []string{},
	}
	svc := newItemService(repo, &fakeIDChecker{known: map[int64]bool{1: true, 2: true}}, &fakeIDChecker{})

	detail, err := svc.AssignTags(context.Background(), 7, []int64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, repo.assignedTags)
	assert.Equal(t, []string{"noir", "sci-fi"}, detail.Tags)
	assert.Empty(t, detail.Creators)
}

func TestItemAssignTagsUnknownIDs(t *testing.T) {
	repo := &fakeItemRepo{item: &domain.Item{ID: 7, Title: "Dune"}}
	svc := newItemService(repo, &fakeIDChecker{known: map[int64]bool{1: true}}, &fakeIDChecker{})

	_, err := svc.AssignTags(context.Background(), 7, []int64{1, 8, 9})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []string{
		"Tag with id 8 not found",
		"Tag with id 9 not found",
	}, httpErr.Errors)
	assert.Empty(t, repo.assignedTags)
}

func TestItemAssignTagsUnknownItem(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{})

	_, err := svc.AssignTags(context.Background(), 404, []int64{1})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, []string{"Item with id 404 not found"}, httpErr.Errors)
}

func TestItemAssignCreatorsUnknownIDs(t *testing.T) {
	repo := &fakeItemRepo{item: &domain.Item{ID: 7, Title: "Dune"}}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{known: map[int64]bool{3: true}})

	_, err := svc.AssignCreators(context.Background(), 7, []int64{3, 4})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []string{"Creator with id 4 not found"}, httpErr.Errors)
	assert.Empty(t, repo.assignedCreators)
}

func TestItemUpdateEmptyParamsReturnsCurrentItem(t *testing.T) {
	repo := &fakeItemRepo{
		item:     &domain.Item{ID: 7, Title: "Dune"},
		tagNames: []string{"sci-fi"},
	}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{})

	detail, err := svc.Update(context.Background(), 7, repository.UpdateItemParams{})

	require.NoError(t, err)
	assert.Equal(t, "Dune", detail.Item.Title)
	assert.Nil(t, repo.updated)
}

func TestItemUpdateTitle(t *testing.T) {
	repo := &fakeItemRepo{item: &domain.Item{ID: 7, Title: "Dune"}}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{})

	title := "Dune Messiah"
	detail, err := svc.Update(context.Background(), 7, repository.UpdateItemParams{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", detail.Item.Title)
	require.NotNil(t, repo.updated)
}

func TestItemDeletePropagatesNotFound(t *testing.T) {
	repo := &fakeItemRepo{deleteErr: errs.NewNotFound(fmt.Sprintf("Item with id %d not found", 5))}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{})

	err := svc.Delete(context.Background(), 5)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestItemCreateReturnsEmptyNameLists(t *testing.T) {
	repo := &fakeItemRepo{}
	svc := newItemService(repo, &fakeIDChecker{}, &fakeIDChecker{})

	detail, err := svc.Create(context.Background(), repository.CreateItemParams{
		Title:      "Dune",
		UserID:     1,
		CategoryID: 2,
	})

	require.NoError(t, err)
	assert.NotNil(t, detail.Tags)
	assert.Empty(t, detail.Tags)
	assert.NotNil(t, detail.Creators)
	assert.Empty(t, detail.Creators)
}
