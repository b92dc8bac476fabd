// Package common defines sentinel errors shared across the server layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorEmailExists is returned when a registration or email change
	// collides with an existing account.
	ErrorEmailExists = errors.New("Email already exists")

	// ErrorRoomExists is returned when a room name is already taken.
	ErrorRoomExists = errors.New("Room already exists")

	// ErrorInvalidCredentials is deliberately generic: unknown email and
	// wrong password must be indistinguishable to the caller.
	ErrorInvalidCredentials = errors.New("Email or password is wrong")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
