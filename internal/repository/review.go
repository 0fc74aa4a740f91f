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

type ReviewRepository struct {
	server *server.Server
}

func NewReviewRepository(s *server.Server) *ReviewRepository {
	return &ReviewRepository{server: s}
}

// CreateReviewParams holds the fields required to create a new review.
type CreateReviewParams struct {
	Rating int
	Text   *string
	ItemID int64
	UserID int64
}

func (r *ReviewRepository) Create(ctx context.Context, q database.Querier, params CreateReviewParams) (*domain.Review, error) {
	const query = `
		INSERT INTO reviews (rating, text, item_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, rating, text, item_id, user_id`

	var review domain.Review
	err := q.QueryRow(ctx, query,
		params.Rating,
		params.Text,
		params.ItemID,
		params.UserID,
	).Scan(&review.ID, &review.Rating, &review.Text, &review.ItemID, &review.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "insert review")
	}

	return &review, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.Review, error) {
	const query = `
		SELECT id, rating, text, item_id, user_id
		FROM reviews
		WHERE id = $1`

	var review domain.Review
	err := q.QueryRow(ctx, query, id).
		Scan(&review.ID, &review.Rating, &review.Text, &review.ItemID, &review.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("Review with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select review by id")
	}

	return &review, nil
}

func (r *ReviewRepository) List(ctx context.Context, q database.Querier) ([]domain.Review, error) {
	const query = `
		SELECT id, rating, text, item_id, user_id
		FROM reviews
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select reviews")
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Rating, &review.Text, &review.ItemID, &review.UserID); err != nil {
			return nil, errors.Wrap(err, "scan review row")
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate review rows")
	}

	return reviews, nil
}

func (r *ReviewRepository) ListByItem(ctx context.Context, q database.Querier, itemID int64) ([]domain.Review, error) {
	const query = `
		SELECT id, rating, text, item_id, user_id
		FROM reviews
		WHERE item_id = $1
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "select reviews by item")
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Rating, &review.Text, &review.ItemID, &review.UserID); err != nil {
			return nil, errors.Wrap(err, "scan review row")
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate review rows")
	}

	return reviews, nil
}
