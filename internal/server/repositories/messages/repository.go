// Package messages persists direct messages.
package messages

import (
	"context"

	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	List(ctx context.Context) ([]*models.Message, error)
	ListSentBy(ctx context.Context, email string) ([]*models.Message, error)
	ListReceivedBy(ctx context.Context, email string) ([]*models.Message, error)
	ReassignEmail(ctx context.Context, oldEmail, newEmail string) error
}
