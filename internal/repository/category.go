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

type CategoryRepository struct {
	server *server.Server
}

func NewCategoryRepository(s *server.Server) *CategoryRepository {
	return &CategoryRepository{server: s}
}

func (r *CategoryRepository) Create(ctx context.Context, q database.Querier, name string) (*domain.Category, error) {
	const query = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name`

	var category domain.Category
	if err := q.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name); err != nil {
		return nil, errors.Wrap(err, "insert category")
	}

	return &category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Category, error) {
	const query = `SELECT id, name FROM categories WHERE id = $1`

	var category domain.Category
	if err := q.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Category with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select category by id")
	}

	return &category, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, q database.Querier, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check category exists")
	}

	return exists, nil
}

func (r *CategoryRepository) List(ctx context.Context, q database.Querier) ([]domain.Category, error) {
	const query = `SELECT id, name FROM categories ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select categories")
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, errors.Wrap(err, "scan category row")
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate category rows")
	}

	return categories, nil
}
