package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID, used as userId on transaction requests"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 registration time"`
}

// RegisterBody is the request body for registering a user.
type RegisterBody struct {
	Name     string `json:"name" doc:"Display name"`
	Email    string `json:"email" doc:"Email address, unique per user"`
	Password string `json:"password" doc:"Password, at least 8 characters"`
}

// RegisterInput is the Huma input for registering a user.
type RegisterInput struct {
	Body RegisterBody
}

// RegisterResponse is the response body for registering a user.
type RegisterResponse struct {
	ID string `json:"id" doc:"UUID of the new user"`
}

// RegisterOutput is the Huma output for registering a user.
type RegisterOutput struct {
	Body RegisterResponse
}

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body User
}

type userService interface {
	Register(ctx context.Context, name, email, password string) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (*service.User, error)
}

// Handler handles POST /users/register and POST /users/login.
type Handler struct {
	UserService userService
}

// NewHandler creates a new Handler.
func NewHandler(svc userService) *Handler {
	return &Handler{UserService: svc}
}

// Register registers the user endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/users/register",
		Summary:       "Register user",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.register)

	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/users/login",
		Summary:     "Log in",
		Description: "Checks the credentials and returns the user.",
		Tags:        []string{"Users"},
	}, h.login)
}

func (h *Handler) register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	id, err := h.UserService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)

	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return nil, huma.NewError(http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, service.ErrEmailTaken):
		return nil, huma.NewError(http.StatusConflict, err.Error())
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register user", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userId", id.String())
	}

	return &RegisterOutput{Body: RegisterResponse{ID: id.String()}}, nil
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	u, err := h.UserService.Login(ctx, input.Body.Email, input.Body.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return nil, huma.NewError(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userId", u.ID.String())
	}

	return &LoginOutput{Body: User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}}, nil
}
