package messages

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DevBazho/realtime-chat-app/internal/dbx"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const messageColumns = `id, to_name, msg_from, msg_to, message, image, message_status, created_at`

func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {

	query :=
		`INSERT INTO messages (id, to_name, msg_from, msg_to, message, image)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING message_status, created_at
		 `

	msg.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query,
		msg.ID, msg.ToName, msg.MsgFrom, msg.MsgTo, msg.Message, msg.Image).
		Scan(&msg.MessageStatus, &msg.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *PostgresRepository) ListSentBy(ctx context.Context, email string) ([]*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE msg_from = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, email)
}

func (r *PostgresRepository) ListReceivedBy(ctx context.Context, email string) ([]*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE msg_to = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, email)
}

// ReassignEmail rewrites stored addresses after a user changes their email.
// Runs inside the same transaction as the users table update.
func (r *PostgresRepository) ReassignEmail(ctx context.Context, oldEmail, newEmail string) error {

	if _, err := r.db.ExecContext(ctx,
		`UPDATE messages SET msg_from = $2 WHERE msg_from = $1`, oldEmail, newEmail); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE messages SET msg_to = $2 WHERE msg_to = $1`, oldEmail, newEmail); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	msgs := []*models.Message{}
	for rows.Next() {
		msg := &models.Message{}
		err := rows.Scan(
			&msg.ID, &msg.ToName, &msg.MsgFrom, &msg.MsgTo, &msg.Message,
			&msg.Image, &msg.MessageStatus, &msg.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msgs, nil
}
