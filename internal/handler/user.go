package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medialogapp/medialog-server/internal/domain"
	"github.com/medialogapp/medialog-server/internal/server"
	"github.com/medialogapp/medialog-server/internal/service"
	"github.com/medialogapp/medialog-server/internal/validation"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.User,
	}
}

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,notblank,max=50"`
	Password  string  `json:"password" validate:"required,notblank"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.Struct(r)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required,notblank"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

// UserResponse is a user without the password field.
type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// LoginResponse is a successful authentication. Token is omitted when
// the session store is unavailable.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token,omitempty"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

func (h *UserHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, h.create, http.StatusCreated)
}

func (h *UserHandler) create(c echo.Context, req *CreateUserRequest) (UserResponse, error) {
	user, err := h.users.Create(c.Request().Context(), service.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (h *UserHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, h.list, http.StatusOK)
}

func (h *UserHandler) list(c echo.Context, _ *emptyRequest) ([]UserResponse, error) {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}

	return responses, nil
}

func (h *UserHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, h.get, http.StatusOK)
}

func (h *UserHandler) get(c echo.Context, _ *emptyRequest) (UserResponse, error) {
	id, err := validation.ParseID("id", c.Param("id"))
	if err != nil {
		return UserResponse{}, err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (h *UserHandler) Login() echo.HandlerFunc {
	return Handle(h.Handler, h.login, http.StatusOK)
}

func (h *UserHandler) login(c echo.Context, req *LoginRequest) (LoginResponse, error) {
	result, err := h.users.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Message: "Login successful",
		User:    toUserResponse(result.User),
		Token:   result.Token,
	}, nil
}
