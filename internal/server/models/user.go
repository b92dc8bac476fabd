// Package models holds the persisted record types: users, messages and rooms.
// JSON tags follow the public API field names.
package models

import "time"

// User is an identity record. Password holds the bcrypt hash, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"-"`
	Bio      string     `json:"bio,omitempty"`
	IsActive bool       `json:"isActive"`
	Image    string     `json:"image"`
	Gender   string     `json:"gender,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
	RegDate  time.Time  `json:"regDate"`
}

// UserName is the projection served to conversation pickers: just enough to
// address a user, nothing else.
type UserName struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
