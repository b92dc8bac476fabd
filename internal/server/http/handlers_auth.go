package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevBazho/realtime-chat-app/internal/logging"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
	"github.com/DevBazho/realtime-chat-app/internal/server/services"
)

// Handler carries the services every route needs.
type Handler struct {
	users    *services.UserService
	messages *services.MessageService
	rooms    *services.RoomService
	logger   logging.Logger
}

// Register creates a new identity and answers with its reference only;
// neither the password nor its hash ever appears in a response.
func (h *Handler) Register(c echo.Context) error {
	var req registerRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	user, err := h.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"user": user.ID})
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login verifies credentials and hands out a token, both in the auth-token
// response header and in the body alongside the user record.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	token, user, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.serviceError(c, err)
	}

	c.Response().Header().Set(TokenHeader, token)
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
