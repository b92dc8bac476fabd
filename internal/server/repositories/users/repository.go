// Package users persists identity records.
package users

import (
	"context"

	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListNames(ctx context.Context) ([]*models.UserName, error)
	Delete(ctx context.Context, id string) error
	UpdateName(ctx context.Context, id, name string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdateImage(ctx context.Context, id, image string) error
}
