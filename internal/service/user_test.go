package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medialogapp/medialog-server/internal/database"
	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/errs"
	"github.com/medialogapp/medialog-server/internal/lib/job"
	"github.com/medialogapp/medialog-server/internal/repository"
)

// fakeDB satisfies txRunner without a database: transactions run the
// callback directly.
type fakeDB struct{}

func (fakeDB) Querier() database.Querier { return nil }

func (fakeDB) WithTx(ctx context.Context, fn func(q database.Querier) error) error {
	return fn(nil)
}

type fakeUserRepo struct {
	users   map[string]*domain.User
	created *repository.CreateUserParams
	nextID  int64
}

func (f *fakeUserRepo) Create(ctx context.Context, q database.Querier, params repository.CreateUserParams) (*domain.User, error) {
	f.created = &params
	f.nextID++
	return &domain.User{
		ID:        f.nextID,
		Username:  params.Username,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
	}, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, q database.Querier, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errs.NewNotFound("User not found")
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, q database.Querier, username string) (*domain.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, q database.Querier, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, q database.Querier, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email != nil && *u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(ctx context.Context, q database.Querier) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

type fakeSessions struct {
	token string
}

func (f *fakeSessions) Create(ctx context.Context, userID int64) (string, error) {
	return f.token, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newUserService(repo *fakeUserRepo, sessions *fakeSessions, tasks *fakeEnqueuer) *UserService {
	nop := zerolog.Nop()
	return &UserService{
		db:       fakeDB{},
		users:    repo,
		sessions: sessions,
		tasks:    tasks,
		log:      &nop,
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	svc := newUserService(repo, &fakeSessions{}, &fakeEnqueuer{})

	user, err := svc.Create(context.Background(), CreateUserInput{
		Username: "ada",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret")))
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"ada": {ID: 1, Username: "ada"},
	}}
	svc := newUserService(repo, &fakeSessions{}, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "ada",
		Password: "secret",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, []string{"Username already taken"}, httpErr.Errors)
	assert.Nil(t, repo.created)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	email := "ada@example.com"
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"ada": {ID: 1, Username: "ada", Email: &email},
	}}
	svc := newUserService(repo, &fakeSessions{}, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "grace",
		Password: "secret",
		Email:    &email,
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []string{"Email already in use"}, httpErr.Errors)
}

func TestUserCreateEnqueuesWelcomeEmail(t *testing.T) {
	email := "grace@example.com"
	enqueuer := &fakeEnqueuer{}
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	svc := newUserService(repo, &fakeSessions{}, enqueuer)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "grace",
		Password: "secret",
		Email:    &email,
	})

	require.NoError(t, err)
	require.Len(t, enqueuer.tasks, 1)
	assert.Equal(t, job.TaskWelcome, enqueuer.tasks[0].Type())
}

func TestUserCreateWithoutEmailSkipsWelcomeEmail(t *testing.T) {
	enqueuer := &fakeEnqueuer{}
	repo := &fakeUserRepo{users: map[string]*domain.User{}}
	svc := newUserService(repo, &fakeSessions{}, enqueuer)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "grace",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Empty(t, enqueuer.tasks)
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"ada": {ID: 1, Username: "ada", Password: hashPassword(t, "secret")},
	}}
	svc := newUserService(repo, &fakeSessions{token: "tok-123"}, &fakeEnqueuer{})

	result, err := svc.Login(context.Background(), "ada", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.User.ID)
	assert.Equal(t, "tok-123", result.Token)
}

func TestLoginErrorIsIdenticalForUnknownUserAndWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"ada": {ID: 1, Username: "ada", Password: hashPassword(t, "secret")},
	}}
	svc := newUserService(repo, &fakeSessions{}, &fakeEnqueuer{})

	_, unknownErr := svc.Login(context.Background(), "nobody", "secret")
	_, wrongErr := svc.Login(context.Background(), "ada", "wrong")

	var unknownHTTP, wrongHTTP *errs.HTTPError
	require.ErrorAs(t, unknownErr, &unknownHTTP)
	require.ErrorAs(t, wrongErr, &wrongHTTP)

	assert.Equal(t, http.StatusUnauthorized, unknownHTTP.Status)
	assert.Equal(t, unknownHTTP.Errors, wrongHTTP.Errors)
	assert.Equal(t, []string{"Invalid username or password"}, wrongHTTP.Errors)
}
