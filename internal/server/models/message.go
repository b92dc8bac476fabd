package models

import "time"

// Message is a direct message between two registered users, addressed by
// email. Image, when set, holds the object-storage key of an attachment.
// MessageStatus is false until the receiver has read the message.
type Message struct {
	ID            string    `json:"_id"`
	ToName        string    `json:"toName,omitempty"`
	MsgFrom       string    `json:"msgFrom"`
	MsgTo         string    `json:"msgTo"`
	Message       string    `json:"message,omitempty"`
	Image         string    `json:"image,omitempty"`
	MessageStatus bool      `json:"messageStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
