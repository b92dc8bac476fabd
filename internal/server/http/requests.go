package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Per-endpoint input shapes. Bounds mirror the stored schema; validation runs
// before any handler logic.

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,min=6,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email,min=6"`
	Password string `json:"password" validate:"required,min=6"`
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type updateEmailRequest struct {
	Email string `json:"email" validate:"required,email,min=6,max=100"`
}

type sendMessageRequest struct {
	ToName  string `json:"toName" validate:"omitempty,max=50"`
	MsgFrom string `json:"msgFrom" validate:"required,email,min=6"`
	MsgTo   string `json:"msgTo" validate:"required,email,min=6"`
	Message string `json:"message" validate:"omitempty,max=1024"`
}

type byEmailRequest struct {
	MsgFrom string `json:"msgFrom" validate:"required,email,min=6"`
}

type createRoomRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Topic string `json:"topic" validate:"omitempty,max=255"`
}

// validationMessage reduces a validator error to the first violation,
// phrased for the caller.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return field + " length must be at least " + fe.Param() + " characters long"
	case "max":
		return field + " length must be at most " + fe.Param() + " characters long"
	default:
		return field + " is invalid"
	}
}
