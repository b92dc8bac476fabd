package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevBazho/realtime-chat-app/internal/common"
	"github.com/DevBazho/realtime-chat-app/internal/server/services"
)

type messageResponse struct {
	Message string `json:"message"`
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, messageResponse{Message: msg})
}

// serviceError maps service-layer errors onto HTTP responses. Anything
// unrecognized is a dependent-service failure: logged with detail, surfaced
// generically.
func (h *Handler) serviceError(c echo.Context, err error) error {
	var unregistered *services.UnregisteredEmailError

	switch {
	case errors.As(err, &unregistered):
		return fail(c, http.StatusBadRequest, unregistered.Error())
	case errors.Is(err, common.ErrorEmailExists):
		return fail(c, http.StatusBadRequest, common.ErrorEmailExists.Error())
	case errors.Is(err, common.ErrorRoomExists):
		return fail(c, http.StatusBadRequest, common.ErrorRoomExists.Error())
	case errors.Is(err, common.ErrorInvalidCredentials):
		return fail(c, http.StatusBadRequest, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrorNotFound):
		return fail(c, http.StatusNotFound, "not found")
	default:
		h.logger.Error(c.Request().Context(), "request failed",
			"path", c.Request().URL.Path,
			"error", err.Error())
		return fail(c, http.StatusInternalServerError, "internal error")
	}
}
