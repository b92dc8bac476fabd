package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DevBazho/realtime-chat-app/internal/common"
	"github.com/DevBazho/realtime-chat-app/internal/dbx"
	"github.com/DevBazho/realtime-chat-app/internal/server/models"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password, bio, is_active, image, gender, birthday, reg_date`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, name, email, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING bio, is_active, image, reg_date
		 `

	user.ID = uuid.New().String()

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password).
		Scan(&user.Bio, &user.IsActive, &user.Image, &user.RegDate)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Bio,
		&user.IsActive, &user.Image, &user.Gender, &user.Birthday, &user.RegDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY reg_date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Bio,
			&user.IsActive, &user.Image, &user.Gender, &user.Birthday, &user.RegDate)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return users, nil
}

func (r *PostgresRepository) ListNames(ctx context.Context) ([]*models.UserName, error) {
	query := `SELECT id, name FROM users ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	names := []*models.UserName{}
	for rows.Next() {
		n := &models.UserName{}
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		names = append(names, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return names, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.execOnUser(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id, name string) error {
	return r.execOnUser(ctx, `UPDATE users SET name = $2 WHERE id = $1`, id, name)
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.execOnUser(ctx, `UPDATE users SET password = $2 WHERE id = $1`, id, passwordHash)
}

func (r *PostgresRepository) UpdateEmail(ctx context.Context, id, email string) error {
	err := r.execOnUser(ctx, `UPDATE users SET email = $2 WHERE id = $1`, id, email)
	if isUniqueViolation(err) {
		return common.ErrorEmailExists
	}
	return err
}

func (r *PostgresRepository) UpdateImage(ctx context.Context, id, image string) error {
	return r.execOnUser(ctx, `UPDATE users SET image = $2 WHERE id = $1`, id, image)
}

// execOnUser runs a single-row statement keyed by user id and maps
// "no row touched" to ErrorNotFound.
func (r *PostgresRepository) execOnUser(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
