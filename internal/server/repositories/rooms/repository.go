// Package rooms persists chat rooms.
package rooms

import (
	"context"

	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, room *models.Room) (*models.Room, error)
	List(ctx context.Context) ([]*models.Room, error)
}
