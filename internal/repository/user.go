package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// Create создает нового пользователя. Дубликат email дает service.ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, phone, preferred_language, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, mfa_enabled, biometric_enabled, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.PreferredLanguage,
		user.Role,
	).Scan(&user.ID, &user.MFAEnabled, &user.BiometricEnabled, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return service.ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail возвращает пользователя по нормализованному email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getByField(ctx, "LOWER(email) = LOWER($1)", email)
}

// GetByID возвращает пользователя по его UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getByField(ctx, "id = $1", id)
}

func (r *UserRepository) getByField(ctx context.Context, where string, arg any) (*models.User, error) {
	user := &models.User{}
	query := fmt.Sprintf(`
		SELECT
			id,
			email,
			password_hash,
			name,
			phone,
			preferred_language,
			role,
			mfa_enabled,
			mfa_secret,
			biometric_enabled,
			created_at,
			updated_at
		FROM users
		WHERE %s;
	`, where)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Phone,
		&user.PreferredLanguage,
		&user.Role,
		&user.MFAEnabled,
		&user.MFASecret,
		&user.BiometricEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateMFA обновляет флаг и секрет MFA
func (r *UserRepository) UpdateMFA(ctx context.Context, id uuid.UUID, enabled bool, secret string) error {
	query := `
		UPDATE users SET
			mfa_enabled = $1,
			mfa_secret = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, enabled, secret, id)
	if err != nil {
		return fmt.Errorf("failed to update user MFA: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
