// Package services contains the application services sitting between the
// HTTP handlers and the repositories.
package services

import (
	"context"
	"fmt"
	"time"
)

// presignExpiry bounds how long an image retrieval URL stays valid.
const presignExpiry = 15 * time.Minute

// ObjectStore is the object-storage capability the services need: store a
// buffered upload, and mint a retrieval URL for a stored key.
type ObjectStore interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// UnregisteredEmailError reports a message addressed from or to an email that
// belongs to no registered user.
type UnregisteredEmailError struct {
	Email string
}

func (e *UnregisteredEmailError) Error() string {
	return fmt.Sprintf("this email %s is not REGISTERED!", e.Email)
}

// storageKey derives the object key for an uploaded file, prefixing the
// original filename with the upload time so repeated filenames never collide.
func storageKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
}
