package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/server"
)

type TagRepository struct {
	server *server.Server
}

func NewTagRepository(s *server.Server) *TagRepository {
	return &TagRepository{server: s}
}

func (r *TagRepository) Create(ctx context.Context, q database.Querier, name string) (*domain.Tag, error) {
	const query = `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING id, name`

	var tag domain.Tag
	if err := q.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name); err != nil {
		return nil, errors.Wrap(err, "insert tag")
	}

	return &tag, nil
}

func (r *TagRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Tag, error) {
	const query = `SELECT id, name FROM tags WHERE id = $1`

	var tag domain.Tag
	if err := q.QueryRow(ctx, query, id).Scan(&tag.ID, &tag.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Tag with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select tag by id")
	}

	return &tag, nil
}

func (r *TagRepository) List(ctx context.Context, q database.Querier) ([]domain.Tag, error) {
	const query = `SELECT id, name FROM tags ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select tags")
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, errors.Wrap(err, "scan tag row")
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate tag rows")
	}

	return tags, nil
}

// MissingIDs reports which of the given tag ids do not exist, preserving
// the order in which they were supplied.
func (r *TagRepository) MissingIDs(ctx context.Context, q database.Querier, ids []int64) ([]int64, error) {
	const query = `SELECT id FROM tags WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, errors.Wrap(err, "select tag ids")
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan tag id")
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate tag ids")
	}

	missing := make([]int64, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}
