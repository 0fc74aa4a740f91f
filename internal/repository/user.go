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

type UserRepository struct {
	server *server.Server
}

func NewUserRepository(s *server.Server) *UserRepository {
	return &UserRepository{server: s}
}

// CreateUserParams holds the fields required to create a new user.
// Optional profile fields stay nil when the client omitted them.
type CreateUserParams struct {
	Username  string
	Password  string
	FirstName *string
	LastName  *string
	Email     *string
}

func (r *UserRepository) Create(ctx context.Context, q database.Querier, params CreateUserParams) (*domain.User, error) {
	const query = `
		INSERT INTO users (username, password, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, password, first_name, last_name, email`

	var user domain.User
	err := q.QueryRow(ctx, query,
		params.Username,
		params.Password,
		params.FirstName,
		params.LastName,
		params.Email,
	).Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "insert user")
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.User, error) {
	const query = `
		SELECT id, username, password, first_name, last_name, email
		FROM users
		WHERE id = $1`

	var user domain.User
	err := q.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFound(fmt.Sprintf("User with id %d not found", id))
		}
		return nil, errors.Wrap(err, "select user by id")
	}

	return &user, nil
}

// GetByUsername returns (nil, nil) when no user has the given username,
// so callers can treat absence as a normal outcome.
func (r *UserRepository) GetByUsername(ctx context.Context, q database.Querier, username string) (*domain.User, error) {
	const query = `
		SELECT id, username, password, first_name, last_name, email
		FROM users
		WHERE username = $1`

	var user domain.User
	err := q.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "select user by username")
	}

	return &user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, q database.Querier, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check username exists")
	}

	return exists, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "check email exists")
	}

	return exists, nil
}

func (r *UserRepository) List(ctx context.Context, q database.Querier) ([]domain.User, error) {
	const query = `
		SELECT id, username, password, first_name, last_name, email
		FROM users
		ORDER BY id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "select users")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.FirstName, &user.LastName, &user.Email); err != nil {
			return nil, errors.Wrap(err, "scan user row")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate user rows")
	}

	return users, nil
}
