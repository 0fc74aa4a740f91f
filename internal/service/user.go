package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/lib/job"
	"github.com/medialogapp/medialog-server/internal/repository"
	"github.com/medialogapp/medialog-server/internal/server"
)

// invalidCredentialsMsg is deliberately the same for an unknown
// username and a wrong password, so login responses do not reveal
// which usernames exist.
const invalidCredentialsMsg = "Invalid username or password"

type userRepo interface {
	Create(ctx context.Context, q database.Querier, params repository.CreateUserParams) (*domain.User, error)
	GetByID(ctx context.Context, q database.Querier, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, q database.Querier, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, q database.Querier, username string) (bool, error)
	ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error)
	List(ctx context.Context, q database.Querier) ([]domain.User, error)
}

type sessionIssuer interface {
	Create(ctx context.Context, userID int64) (string, error)
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type UserService struct {
	db       txRunner
	users    userRepo
	sessions sessionIssuer
	tasks    taskEnqueuer
	log      *zerolog.Logger
}

func NewUserService(s *server.Server, repos *repository.Repositories, sessions *SessionService) *UserService {
	return &UserService{
		db:       s.DB,
		users:    repos.User,
		sessions: sessions,
		tasks:    s.Job.Client,
		log:      s.Logger,
	}
}

// CreateUserInput is the validated payload for registering a user.
type CreateUserInput struct {
	Username  string
	Password  string
	FirstName *string
	LastName  *string
	Email     *string
}

// LoginResult is a successfully authenticated user plus the session
// token issued for them. Token is empty when the session store is
// unavailable.
type LoginResult struct {
	User  *domain.User
	Token string
}

// Create registers a new user. The password is stored as a bcrypt
// hash. When an email address is given, a welcome email task is
// enqueued after the transaction commits.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = s.db.WithTx(ctx, func(q database.Querier) error {
		taken, err := s.users.ExistsByUsername(ctx, q, input.Username)
		if err != nil {
			return err
		}
		if taken {
			return errs.NewConflict("Username already taken")
		}

		if input.Email != nil {
			used, err := s.users.ExistsByEmail(ctx, q, *input.Email)
			if err != nil {
				return err
			}
			if used {
				return errs.NewConflict("Email already in use")
			}
		}

		user, err = s.users.Create(ctx, q, repository.CreateUserParams{
			Username:  input.Username,
			Password:  string(hash),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	if user.Email != nil {
		s.enqueueWelcomeEmail(ctx, user)
	}

	return user, nil
}

func (s *UserService) enqueueWelcomeEmail(ctx context.Context, user *domain.User) {
	name := user.Username
	if user.FirstName != nil && *user.FirstName != "" {
		name = *user.FirstName
	}

	task, err := job.NewWelcomeEmailTask(*user.Email, name)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}
	if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email task")
	}
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, s.db.Querier(), id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx, s.db.Querier())
}

// Login authenticates a username and password pair.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, s.db.Querier(), username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewUnauthorized(invalidCredentialsMsg)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errs.NewUnauthorized(invalidCredentialsMsg)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: token}, nil
}
