package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DevBazho/realtime-chat-app/internal/common"
	"github.com/DevBazho/realtime-chat-app/internal/dbx"
	"github.com/DevBazho/realtime-chat-app/internal/server/auth"
	"github.com/DevBazho/realtime-chat-app/internal/server/config"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
	"github.com/DevBazho/realtime-chat-app/internal/server/repositories/repomanager"
)

// UserService implements registration, login and user management.
type UserService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	store         ObjectStore
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore, cfg *config.Config) *UserService {
	return &UserService{
		db:            db,
		repos:         m,
		store:         store,
		jwtSecret:     []byte(cfg.Auth.SecretKey),
		tokenValidity: cfg.Auth.TokenValidity,
	}
}

// Register creates a new identity. The plaintext password is hashed before
// anything is persisted and is never returned or logged.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {

	repo := s.repos.Users(s.db)
	email = strings.ToLower(email)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorEmailExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}

	// the unique index still guards the lookup/insert race
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same ErrorInvalidCredentials so callers cannot probe
// which emails are registered.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {

	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	ok, err := auth.CheckPassword(password, user.Password)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	if !ok {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.db).List(ctx)
}

func (s *UserService) ListNames(ctx context.Context) ([]*models.UserName, error) {
	return s.repos.Users(s.db).ListNames(ctx)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repos.Users(s.db).Delete(ctx, id)
}

func (s *UserService) UpdateName(ctx context.Context, id, name string) error {
	return s.repos.Users(s.db).UpdateName(ctx, id, name)
}

func (s *UserService) UpdatePassword(ctx context.Context, id, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return common.ErrorInternal
	}
	return s.repos.Users(s.db).UpdatePassword(ctx, id, hash)
}

// UpdateEmail changes a user's email and rewrites the addresses on their
// stored messages in the same transaction.
func (s *UserService) UpdateEmail(ctx context.Context, id, newEmail string) error {

	newEmail = strings.ToLower(newEmail)

	if _, err := s.repos.Users(s.db).GetByEmail(ctx, newEmail); err == nil {
		return common.ErrorEmailExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("checking email: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userRepo := s.repos.Users(tx)

		user, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := s.repos.Messages(tx).ReassignEmail(ctx, user.Email, newEmail); err != nil {
			return err
		}

		return userRepo.UpdateEmail(ctx, id, newEmail)
	})
}

// UpdateImage stores an uploaded avatar and points the user record at the new
// object key, which it returns.
func (s *UserService) UpdateImage(ctx context.Context, id, filename string, content []byte, contentType string) (string, error) {

	key := storageKey(filename)

	if err := s.store.Put(ctx, key, content, contentType); err != nil {
		return "", fmt.Errorf("storing image: %w", err)
	}

	if err := s.repos.Users(s.db).UpdateImage(ctx, id, key); err != nil {
		return "", err
	}

	return key, nil
}

// ImageURL mints a short-lived retrieval URL for a stored image.
func (s *UserService) ImageURL(ctx context.Context, key string) (string, error) {
	return s.store.PresignGet(ctx, key, presignExpiry)
}
