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

type CreatorRepository struct {
	server *server.Server
}

func NewCreatorRepository(s *server.Server) *CreatorRepository {
	return &CreatorRepository{server: s}
}

func (r *CreatorRepository) Create(ctx context.Context, q database.Querier, name string) (*domain.Creator, error) {
	const query = `
		INSERT INTO creators (name)
		VALUES ($1)
		RETURNING id, name`

	var creator domain.Creator
	if err := q.QueryRow(ctx, query, name).Scan(&creator.ID, &creator.Name); err != nil {
		return nil, errors.Wrap(err, "insert creator")
	}

	return &creator, nil
}

func (r *CreatorRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Creator, error) {
	const query = `SELECT id, name FROM creators WHERE id = $1`

	var creator domain.Creator
	if err := q.QueryRow(ctx, query, id).Scan(&creator.ID, &creator.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Creator with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select creator by id")
	}

	return &creator, nil
}

func (r *CreatorRepository) List(ctx context.Context, q database.Querier) ([]domain.Creator, error) {
	const query = `SELECT id, name FROM creators ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select creators")
	}
	defer rows.Close()

	creators := make([]domain.Creator, 0)
	for rows.Next() {
		var creator domain.Creator
		if err := rows.Scan(&creator.ID, &creator.Name); err != nil {
			return nil, errors.Wrap(err, "scan creator row")
		}
		creators = append(creators, creator)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate creator rows")
	}

	return creators, nil
}

// MissingIDs reports which of the given creator ids do not exist,
// preserving the order in which they were supplied.
func (r *CreatorRepository) MissingIDs(ctx context.Context, q database.Querier, ids []int64) ([]int64, error) {
	const query = `SELECT id FROM creators WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, errors.Wrap(err, "select creator ids")
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan creator id")
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate creator ids")
	}

	missing := make([]int64, 0)
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing, nil
}
