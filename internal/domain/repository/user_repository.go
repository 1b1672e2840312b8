package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"woofer/internal/common"
	"woofer/internal/domain/model"

	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// UpdateByUsername replaces the four mutable fields of the row matching
	// username and returns the updated record, or common.ErrNotFound when no
	// row matched.
	UpdateByUsername(ctx context.Context, username string, user *model.User) (*model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Insert(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, password, email, birthday, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Password, user.Email, user.Birthday, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return &common.ConflictError{Resource: user.Username}
		}
		return storageErr("pgUserRepository.Insert", err)
	}
	return nil
}

func (r *pgUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, username, password, email, birthday, created_at, updated_at
	          FROM users ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("pgUserRepository.FindAll", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.Birthday, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, storageErr("pgUserRepository.FindAll", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("pgUserRepository.FindAll", err)
	}
	return users, nil
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password, email, birthday, created_at, updated_at
	          FROM users WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Email, &user.Birthday, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, storageErr("pgUserRepository.FindByUsername", err)
	}
	return user, nil
}

func (r *pgUserRepository) UpdateByUsername(ctx context.Context, username string, user *model.User) (*model.User, error) {
	query := `UPDATE users SET username = $1, password = $2, email = $3, birthday = $4, updated_at = $5
	          WHERE username = $6
	          RETURNING id, username, password, email, birthday, created_at, updated_at`
	updated := &model.User{}
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Password, user.Email, user.Birthday, time.Now().UTC(), username).Scan(
		&updated.ID, &updated.Username, &updated.Password, &updated.Email, &updated.Birthday, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Renamed onto an existing username
			return nil, &common.ConflictError{Resource: user.Username}
		}
		return nil, storageErr("pgUserRepository.UpdateByUsername", err)
	}
	return updated, nil
}
