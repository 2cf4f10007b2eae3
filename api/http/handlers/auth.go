package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/synapse-hq/synapse/api/http/presenter"
	"github.com/synapse-hq/synapse/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  auth.User `json:"user"`
	Token string    `json:"token"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err, "failed to register user")
	}
	return presenter.JSON(c, http.StatusCreated, authResponse{User: result.User, Token: result.Token})
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err, "failed to login")
	}
	return presenter.JSON(c, http.StatusOK, authResponse{User: result.User, Token: result.Token})
}

// Me returns the authenticated user with onboarding flags.
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} auth.User
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	user, err := h.useCase.Me(c.Context(), uid)
	if err != nil {
		return writeError(c, err, "failed to load user")
	}
	return presenter.JSON(c, http.StatusOK, user)
}

type updateMeRequest struct {
	Name string `json:"name"`
}

// UpdateMe sets the display name.
// @Summary  Set user name
// @Tags     auth
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body updateMeRequest true "new name"
// @Success  200 {object} auth.User
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /me [patch]
func (h *AuthHandler) UpdateMe(c *fiber.Ctx) error {
	uid, err := currentUser(c)
	if err != nil {
		return writeError(c, err, "")
	}
	var req updateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.useCase.SetName(c.Context(), uid, req.Name)
	if err != nil {
		return writeError(c, err, "failed to update user")
	}
	return presenter.JSON(c, http.StatusOK, user)
}
