package models

import "time"

// Room is a chat room. Names are stored lowercased and are unique.
type Room struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Topic     string    `json:"topic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
