package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskriser/internal/auth"
	apperrors "taskriser/internal/errors"
	"taskriser/internal/model"
	"taskriser/internal/service"
)

// UserHandler handles profile endpoints scoped to the token identity.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfileRequest represents a partial profile update; absent fields
// are left untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// UpdateExpRequest represents an experience overwrite request.
type UpdateExpRequest struct {
	Exp *int `json:"exp"`
}

// UserResponse pairs a message with the updated user record.
type UserResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// currentUserID returns the user id the JWT middleware stored in the context.
func currentUserID(c echo.Context) uint {
	id, _ := c.Get(auth.ContextKey).(uint)
	return id
}

// GetMe godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userService.GetProfile(c.Request().Context(), currentUserID(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	return h.updateProfile(c)
}

// UpdateProfile godoc
// @Summary Update own profile (alias route)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/update-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	return h.updateProfile(c)
}

func (h *UserHandler) updateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	update := &model.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Avatar:   req.Avatar,
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), currentUserID(c), update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, UserResponse{
		Message: "Profile updated successfully",
		User:    user,
	})
}

// UpdateExp godoc
// @Summary Overwrite own total experience
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateExpRequest true "New total experience"
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/update-exp [post]
func (h *UserHandler) UpdateExp(c echo.Context) error {
	var req UpdateExpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	// An omitted exp is a no-op that still returns the current record.
	user, err := h.userService.UpdateExp(c.Request().Context(), currentUserID(c), req.Exp)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, UserResponse{
		Message: "EXP updated successfully",
		User:    user,
	})
}
