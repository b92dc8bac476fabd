package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListRooms(c echo.Context) error {
	rooms, err := h.rooms.List(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var req createRoomRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	room, err := h.rooms.Create(c.Request().Context(), req.Name, req.Topic)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, room)
}
