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

type itemRepo interface {
	Create(ctx context.Context, q database.Querier, params repository.CreateItemParams) (*domain.Item, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Item, error)
	List(ctx context.Context, q database.Querier) ([]domain.Item, error)
	Update(ctx context.Context, q database.Querier, id int64, params repository.UpdateItemParams) (*domain.Item, error)
	Delete(ctx context.Context, q database.Querier, id int64) error
	AssignTags(ctx context.Context, q database.Querier, itemID int64, tagIDs []int64) error
	AssignCreators(ctx context.Context, q database.Querier, itemID int64, creatorIDs []int64) error
	TagNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error)
	CreatorNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error)
}

type tagIDChecker interface {
	MissingIDs(ctx context.Context, q database.Querier, ids []int64) ([]int64, error)
}

type ItemService struct {
	db       txRunner
	items    itemRepo
	tags     tagIDChecker
	creators tagIDChecker
}

func NewItemService(s *server.Server, repos *repository.Repositories) *ItemService {
	return &ItemService{
		db:       s.DB,
		items:    repos.Item,
		tags:     repos.Tag,
		creators: repos.Creator,
	}
}

// ItemDetail is an item together with its flattened tag and creator
// names, the shape item endpoints respond with.
type ItemDetail struct {
	Item     *domain.Item
	Tags     []string
	Creators []string
}

// Create inserts a new item. A dangling category_id or user_id
// surfaces as a foreign key violation from the database.
func (s *ItemService) Create(ctx context.Context, params repository.CreateItemParams) (*ItemDetail, error) {
	var item *domain.Item
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		item, err = s.items.Create(ctx, q, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ItemDetail{Item: item, Tags: []string{}, Creators: []string{}}, nil
}

func (s *ItemService) Get(ctx context.Context, id int64) (*ItemDetail, error) {
	q := s.db.Querier()

	item, err := s.items.GetByID(ctx, q, id)
	if err != nil {
		return nil, err
	}

	return s.withNames(ctx, q, item)
}

func (s *ItemService) List(ctx context.Context) ([]ItemDetail, error) {
	q := s.db.Querier()

	items, err := s.items.List(ctx, q)
	if err != nil {
		return nil, err
	}

	details := make([]ItemDetail, 0, len(items))
	for i := range items {
		detail, err := s.withNames(ctx, q, &items[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}

	return details, nil
}

// Update applies a partial update. An update that names no fields is a
// no-op and returns the current item.
func (s *ItemService) Update(ctx context.Context, id int64, params repository.UpdateItemParams) (*ItemDetail, error) {
	if params.IsEmpty() {
		return s.Get(ctx, id)
	}

	var item *domain.Item
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		item, err = s.items.Update(ctx, q, id, params)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.withNames(ctx, s.db.Querier(), item)
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.db.WithTx(ctx, func(q database.Querier) error {
		return s.items.Delete(ctx, q, id)
	})
}

// AssignTags attaches tags to an item. Unknown tag ids are rejected
// before anything is written; already-attached tags are skipped.
func (s *ItemService) AssignTags(ctx context.Context, itemID int64, tagIDs []int64) (*ItemDetail, error) {
	var item *domain.Item
	var names []string

	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		item, err = s.items.GetByID(ctx, q, itemID)
		if err != nil {
			return err
		}

		missing, err := s.tags.MissingIDs(ctx, q, tagIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return missingIDsError("Tag", missing)
		}

		if err := s.items.AssignTags(ctx, q, itemID, tagIDs); err != nil {
			return err
		}

		names, err = s.items.TagNames(ctx, q, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	creators, err := s.items.CreatorNames(ctx, s.db.Querier(), itemID)
	if err != nil {
		return nil, err
	}

	return &ItemDetail{Item: item, Tags: names, Creators: creators}, nil
}

// AssignCreators attaches creators to an item with the same semantics
// as AssignTags.
func (s *ItemService) AssignCreators(ctx context.Context, itemID int64, creatorIDs []int64) (*ItemDetail, error) {
	var item *domain.Item
	var names []string

	err := s.db.WithTx(ctx, func(q database.Querier) error {
		var err error
		item, err = s.items.GetByID(ctx, q, itemID)
		if err != nil {
			return err
		}

		missing, err := s.creators.MissingIDs(ctx, q, creatorIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return missingIDsError("Creator", missing)
		}

		if err := s.items.AssignCreators(ctx, q, itemID, creatorIDs); err != nil {
			return err
		}

		names, err = s.items.CreatorNames(ctx, q, itemID)
		return err
	})
	if err != nil {
		return nil, err
	}

	tags, err := s.items.TagNames(ctx, s.db.Querier(), itemID)
	if err != nil {
		return nil, err
	}

	return &ItemDetail{Item: item, Tags: tags, Creators: names}, nil
}

func (s *ItemService) withNames(ctx context.Context, q database.Querier, item *domain.Item) (*ItemDetail, error) {
	tags, err := s.items.TagNames(ctx, q, item.ID)
	if err != nil {
		return nil, err
	}

	creators, err := s.items.CreatorNames(ctx, q, item.ID)
	if err != nil {
		return nil, err
	}

	return &ItemDetail{Item: item, Tags: tags, Creators: creators}, nil
}

func missingIDsError(entity string, ids []int64) error {
	messages := make([]string, 0, len(ids))
	for _, id := range ids {
		messages = append(messages, fmt.Sprintf("%s with id %d not found", entity, id))
	}

	return errs.NewBadRequest(errs.CodeForeignKeyViolation, messages...)
}
