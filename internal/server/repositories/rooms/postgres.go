package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DevBazho/realtime-chat-app/internal/common"
	"github.com/DevBazho/realtime-chat-app/internal/dbx"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, room *models.Room) (*models.Room, error) {

	query :=
		`INSERT INTO rooms (id, name, topic)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	room.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query, room.ID, room.Name, room.Topic).
		Scan(&room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorRoomExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return room, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Room, error) {
	query := `SELECT id, name, topic, created_at, updated_at FROM rooms ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Topic, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}
