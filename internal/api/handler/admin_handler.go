package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

// AdminHandler handles admin registration and login.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates a new admin account. The route is token-gated: only an
// existing admin can create another.
//
// @Summary      Register a new admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Admin credentials"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/register [post]
func (h *AdminHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if _, err := h.adminService.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		status := http.StatusInternalServerError
		msg := "failed to create admin"
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			status = http.StatusBadRequest
			msg = "missing credentials"
		case errors.Is(err, domain.ErrAdminExists):
			status = http.StatusConflict
			msg = "admin already exists"
		}
		return c.JSON(status, errorResponse{Error: msg})
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "admin created"})
}

// Login authenticates an admin and returns a session token.
//
// @Summary      Login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.adminService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "login failed"})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
