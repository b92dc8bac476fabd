package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return h.serviceError(c, err)
	}
	return fail(c, http.StatusOK, "deleted successfully")
}

func (h *Handler) UpdateUserName(c echo.Context) error {
	var req updateNameRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	if err := h.users.UpdateName(c.Request().Context(), c.Param("id"), req.Name); err != nil {
		return h.serviceError(c, err)
	}

	return fail(c, http.StatusOK, req.Name+" updated successfully")
}

func (h *Handler) UpdateUserPassword(c echo.Context) error {
	var req updatePasswordRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	if err := h.users.UpdatePassword(c.Request().Context(), c.Param("id"), req.Password); err != nil {
		return h.serviceError(c, err)
	}

	return fail(c, http.StatusOK, "User PASSWORD updated successfully")
}

func (h *Handler) UpdateUserEmail(c echo.Context) error {
	var req updateEmailRequest

	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, validationMessage(err))
	}

	if err := h.users.UpdateEmail(c.Request().Context(), c.Param("id"), req.Email); err != nil {
		return h.serviceError(c, err)
	}

	return fail(c, http.StatusOK, req.Email+" updated successfully")
}

// UpdateUserImage replaces a user's avatar with an uploaded file.
func (h *Handler) UpdateUserImage(c echo.Context) error {
	filename, content, contentType, err := readUpload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded.")
	}

	key, err := h.users.UpdateImage(c.Request().Context(), c.Param("id"), filename, content, contentType)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"image": key})
}

func (h *Handler) UserImageURL(c echo.Context) error {
	url, err := h.users.ImageURL(c.Request().Context(), c.Param("image"))
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}

// readUpload pulls the buffered "image" part out of a multipart request.
func readUpload(c echo.Context) (filename string, content []byte, contentType string, err error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil, "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", nil, "", err
	}
	defer src.Close()

	content, err = io.ReadAll(src)
	if err != nil {
		return "", nil, "", err
	}

	return file.Filename, content, file.Header.Get("Content-Type"), nil
}
