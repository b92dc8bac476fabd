package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DevBazho/realtime-chat-app/internal/common"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/repomanager"
)

// MessageService implements direct-message exchange and chat image uploads.
type MessageService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
	store ObjectStore
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore) *MessageService {
	return &MessageService{db: db, repos: m, store: store}
}

func (s *MessageService) List(ctx context.Context) ([]*models.Message, error) {
	return s.repos.Messages(s.db).List(ctx)
}

// ByEmail returns the messages a user has sent and received, newest first.
func (s *MessageService) ByEmail(ctx context.Context, email string) (sent, received []*models.Message, err error) {

	repo := s.repos.Messages(s.db)
	email = strings.ToLower(email)

	sent, err = repo.ListSentBy(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	received, err = repo.ListReceivedBy(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	return sent, received, nil
}

// Send persists a text message between two registered users. The receiver's
// display name is resolved server-side; an unknown sender or receiver yields
// an UnregisteredEmailError naming the offending address.
func (s *MessageService) Send(ctx context.Context, from, to, text string) (*models.Message, error) {

	from = strings.ToLower(from)
	to = strings.ToLower(to)

	receiver, err := s.checkParticipants(ctx, from, to)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ToName:  receiver.Name,
		MsgFrom: from,
		MsgTo:   to,
		Message: text,
	}

	return s.repos.Messages(s.db).Create(ctx, msg)
}

// SendImage stores an uploaded chat image and persists a message carrying the
// object key instead of text.
func (s *MessageService) SendImage(ctx context.Context, from, to, filename string, content []byte, contentType string) (*models.Message, error) {

	from = strings.ToLower(from)
	to = strings.ToLower(to)

	receiver, err := s.checkParticipants(ctx, from, to)
	if err != nil {
		return nil, err
	}

	key := storageKey(filename)
	if err := s.store.Put(ctx, key, content, contentType); err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	msg := &models.Message{
		ToName:  receiver.Name,
		MsgFrom: from,
		MsgTo:   to,
		Image:   key,
	}

	return s.repos.Messages(s.db).Create(ctx, msg)
}

// ImageURL mints a short-lived retrieval URL for a stored image.
func (s *MessageService) ImageURL(ctx context.Context, key string) (string, error) {
	return s.store.PresignGet(ctx, key, presignExpiry)
}

// checkParticipants verifies both addresses belong to registered users and
// returns the receiver's record.
func (s *MessageService) checkParticipants(ctx context.Context, from, to string) (*models.User, error) {

	userRepo := s.repos.Users(s.db)

	if _, err := userRepo.GetByEmail(ctx, from); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &UnregisteredEmailError{Email: from}
		}
		return nil, err
	}

	receiver, err := userRepo.GetByEmail(ctx, to)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &UnregisteredEmailError{Email: to}
		}
		return nil, err
	}

	return receiver, nil
}
