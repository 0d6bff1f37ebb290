package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"usersvc/internal/auth"
	apperrors "usersvc/internal/errors"
	"usersvc/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserInfoResponse represents the profile derived from the token subject.
type UserInfoResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Info     string `json:"info"`
}

// Login godoc
// @Summary Log in with a credential pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} auth.AuthBody
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrMissingCredentials)
	}

	body, err := h.authService.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, body)
}

// GetUserInfo godoc
// @Summary Retrieve info about the authenticated subject
// @Tags auth
// @Produce json
// @Success 200 {object} UserInfoResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /get-user-info [get]
func (h *AuthHandler) GetUserInfo(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return respondError(c, apperrors.ErrInvalidToken)
	}

	return c.JSON(http.StatusOK, UserInfoResponse{
		Username: claims.Subject,
		Email:    "foo@foo.com",
		Info:     "Hello there!",
	})
}
