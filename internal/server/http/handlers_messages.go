package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

func (h *Handler) ListMessages(c echo.Context) error {
	msgs, err := h.messages.List(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, msgs)
}

type byEmailResponse struct {
	SentMessages     []*models.Message `json:"sentMessages"`
	ReceivedMessages []*models.Message `json:"receivedMessages"`
}

// MessagesByEmail returns everything a user has sent and received.
func (h *Handler) MessagesByEmail(c echo.Context) error {
	var req byEmailRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	sent, received, err := h.messages.ByEmail(c.Request().Context(), req.MsgFrom)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, byEmailResponse{SentMessages: sent, ReceivedMessages: received})
}

func (h *Handler) SendMessage(c echo.Context) error {
	var req sendMessageRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	msg, err := h.messages.Send(c.Request().Context(), req.MsgFrom, req.MsgTo, req.Message)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) ListUserNames(c echo.Context) error {
	names, err := h.users.ListNames(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, names)
}

// UploadMessageImage accepts a multipart chat-image upload addressed like a
// text message: the image part plus msgFrom/msgTo form fields.
func (h *Handler) UploadMessageImage(c echo.Context) error {
	filename, content, contentType, err := readUpload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded.")
	}

	req := sendMessageRequest{
		MsgFrom: c.FormValue("msgFrom"),
		MsgTo:   c.FormValue("msgTo"),
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	msg, err := h.messages.SendImage(c.Request().Context(), req.MsgFrom, req.MsgTo, filename, content, contentType)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) MessageImageURL(c echo.Context) error {
	url, err := h.messages.ImageURL(c.Request().Context(), c.Param("image"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
