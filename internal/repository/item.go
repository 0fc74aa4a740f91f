package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/server"
)

type ItemRepository struct {
	server *server.Server
}

func NewItemRepository(s *server.Server) *ItemRepository {
	return &ItemRepository{server: s}
}

// CreateItemParams holds the fields required to create a new item.
type CreateItemParams struct {
	Title      string
	CategoryID int64
	UserID     int64
	ImageURL   *string
}

// UpdateItemParams carries a partial update. All fields are pointers so
// callers only set what needs changing; the repository builds the
// explicit SQL accordingly.
type UpdateItemParams struct {
	Title      *string
	CategoryID *int64
	UserID     *int64
	ImageURL   *string
}

// IsEmpty reports whether the update would touch no columns.
func (p UpdateItemParams) IsEmpty() bool {
	return p.Title == nil && p.CategoryID == nil && p.UserID == nil && p.ImageURL == nil
}

func (r *ItemRepository) Create(ctx context.Context, q database.Querier, params CreateItemParams) (*domain.Item, error) {
	const query = `
		INSERT INTO items (title, category_id, user_id, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, category_id, user_id, image_url`

	var item domain.Item
	err := q.QueryRow(ctx, query,
		params.Title,
		params.CategoryID,
		params.UserID,
		params.ImageURL,
	).Scan(&item.ID, &item.Title, &item.CategoryID, &item.UserID, &item.ImageURL)
	if err != nil {
		return nil, errors.Wrap(err, "insert item")
	}

	return &item, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Item, error) {
	const query = `
		SELECT id, title, category_id, user_id, image_url
		FROM items
		WHERE id = $1`

	var item domain.Item
	err := q.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Title, &item.CategoryID, &item.UserID, &item.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Item with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select item by id")
	}

	return &item, nil
}

func (r *ItemRepository) Exists(ctx context.Context, q database.Querier, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check item exists")
	}

	return exists, nil
}

func (r *ItemRepository) List(ctx context.Context, q database.Querier) ([]domain.Item, error) {
	const query = `
		SELECT id, title, category_id, user_id, image_url
		FROM items
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select items")
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.CategoryID, &item.UserID, &item.ImageURL); err != nil {
			return nil, errors.Wrap(err, "scan item row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate item rows")
	}

	return items, nil
}

// Update applies the non-nil fields of params to the item and returns
// the updated row. The caller must ensure params is not empty.
func (r *ItemRepository) Update(ctx context.Context, q database.Querier, id int64, params UpdateItemParams) (*domain.Item, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if params.Title != nil {
		args = append(args, *params.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if params.CategoryID != nil {
		args = append(args, *params.CategoryID)
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if params.UserID != nil {
		args = append(args, *params.UserID)
		sets = append(sets, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if params.ImageURL != nil {
		args = append(args, *params.ImageURL)
		sets = append(sets, fmt.Sprintf("image_url = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = $%d
		RETURNING id, title, category_id, user_id, image_url`,
		strings.Join(sets, ", "), len(args))

	var item domain.Item
	err := q.QueryRow(ctx, query, args...).
		Scan(&item.ID, &item.Title, &item.CategoryID, &item.UserID, &item.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Item with id %d not found", id))
		}
		return nil, errors.Wrap(err, "update item")
	}

	return &item, nil
}

// Delete removes the item. Reviews and junction rows go with it through
// the schema's ON DELETE CASCADE.
func (r *ItemRepository) Delete(ctx context.Context, q database.Querier, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "delete item")
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFound(fmt.Sprintf("Item with id %d not found", id))
	}

	return nil
}

// AssignTags links the given tags to the item. Links that already exist
// are left untouched, so repeated calls are harmless.
func (r *ItemRepository) AssignTags(ctx context.Context, q database.Querier, itemID int64, tagIDs []int64) error {
	const query = `
		INSERT INTO item_tags (item_id, tag_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	if _, err := q.Exec(ctx, query, itemID, tagIDs); err != nil {
		return errors.Wrap(err, "assign tags")
	}

	return nil
}

// AssignCreators links the given creators to the item, skipping links
// that already exist.
func (r *ItemRepository) AssignCreators(ctx context.Context, q database.Querier, itemID int64, creatorIDs []int64) error {
	const query = `
		INSERT INTO item_creators (item_id, creator_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`

	if _, err := q.Exec(ctx, query, itemID, creatorIDs); err != nil {
		return errors.Wrap(err, "assign creators")
	}

	return nil
}

func (r *ItemRepository) TagNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error) {
	const query = `
		SELECT t.name
		FROM tags t
		JOIN item_tags it ON it.tag_id = t.id
		WHERE it.item_id = $1
		ORDER BY t.name ASC`

	return r.scanNames(ctx, q, query, itemID, "tag names")
}

func (r *ItemRepository) CreatorNames(ctx context.Context, q database.Querier, itemID int64) ([]string, error) {
	const query = `
		SELECT c.name
		FROM creators c
		JOIN item_creators ic ON ic.creator_id = c.id
		WHERE ic.item_id = $1
		ORDER BY c.name ASC`

	return r.scanNames(ctx, q, query, itemID, "creator names")
}

func (r *ItemRepository) scanNames(ctx context.Context, q database.Querier, query string, itemID int64, what string) ([]string, error) {
	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", what)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrapf(err, "scan %s", what)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "iterate %s", what)
	}

	return names, nil
}
