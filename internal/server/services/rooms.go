package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/DevBazho/realtime-chat-app/internal/server/models"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/repomanager"
)

// RoomService implements chat room listing and creation.
type RoomService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewRoomService(db *sql.DB, m repomanager.RepositoryManager) *RoomService {
	return &RoomService{db: db, repos: m}
}

func (s *RoomService) List(ctx context.Context) ([]*models.Room, error) {
	return s.repos.Rooms(s.db).List(ctx)
}

// Create adds a room. Names are lowercased and unique; a taken name yields
// common.ErrorRoomExists.
func (s *RoomService) Create(ctx context.Context, name, topic string) (*models.Room, error) {
	room := &models.Room{
		Name:  strings.ToLower(name),
		Topic: topic,
	}
	return s.repos.Rooms(s.db).Create(ctx, room)
}
