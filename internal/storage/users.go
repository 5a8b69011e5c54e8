package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"drmind/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserStorage struct {
	pool *pgxpool.Pool
}

func NewUserStorage(pool *pgxpool.Pool) *UserStorage {
	return &UserStorage{
		pool: pool,
	}
}

func (db_us *UserStorage) CreateUser(ctx context.Context, user *models.User) error {
	op := "internal/storage/users.go CreateUser"

	user.ID = uuid.New().String()

	sql_query := `
	INSERT INTO users
	(id, first_name, last_name, email, password_hash)
	VALUES ($1, $2, $3, $4, $5);
	`

	_, err := db_us.pool.Exec(
		ctx,
		sql_query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failure to create user in %s: %w", op, err)
	}

	return nil
}

func (db_us *UserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	op := "internal/storage/users.go GetUserByEmail"

	sql_query := `
	SELECT id, first_name, last_name, email, password_hash
	FROM users
	WHERE email = $1;
	`

	user := models.User{}

	err := db_us.pool.QueryRow(ctx, sql_query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failure to get user in %s: %w", op, err)
	}

	return &user, nil
}
