package repomanager

import (
	"context"
	"database/sql"

	"github.com/DevBazho/realtime-chat-app/internal/dbx"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/messages"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/rooms"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Messages(db dbx.DBTX) messages.Repository
	Rooms(db dbx.DBTX) rooms.Repository
}
