package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
)

const legalCaseColumns = `
	id,
	user_id,
	incident_id,
	case_type,
	status,
	lawyer_name,
	notes,
	next_hearing_at,
	created_at,
	updated_at`

type LegalCaseRepository struct {
	db *pgxpool.Pool
}

func NewLegalCaseRepository(db *pgxpool.Pool) service.LegalCaseRepository {
	return &LegalCaseRepository{db: db}
}

// Create создает новое юридическое дело
func (r *LegalCaseRepository) Create(ctx context.Context, legalCase *models.LegalCase) error {
	query := `
		INSERT INTO legal_cases (user_id, incident_id, case_type, status, lawyer_name, notes, next_hearing_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		legalCase.UserID,
		legalCase.IncidentID,
		legalCase.CaseType,
		legalCase.Status,
		legalCase.LawyerName,
		legalCase.Notes,
		legalCase.NextHearingAt,
	).Scan(&legalCase.ID, &legalCase.CreatedAt, &legalCase.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create legal case: %w", err)
	}
	return nil
}

// GetByID возвращает дело по его UUID
func (r *LegalCaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LegalCase, error) {
	query := fmt.Sprintf(`SELECT %s FROM legal_cases WHERE id = $1;`, legalCaseColumns)

	legalCase, err := scanLegalCase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get legal case by id: %w", err)
	}
	return legalCase, nil
}

// ListByUser возвращает дела пользователя с пагинацией, новые первыми
func (r *LegalCaseRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.LegalCase, error) {
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`
		SELECT %s FROM legal_cases
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`, legalCaseColumns)

	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list legal cases by user: %w", err)
	}
	defer rows.Close()

	cases := make([]*models.LegalCase, 0)
	for rows.Next() {
		legalCase, err := scanLegalCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal case row: %w", err)
		}
		cases = append(cases, legalCase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cases, nil
}

// Update перезаписывает изменяемые поля дела.
// Новый updated_at вычитывается обратно в модель.
func (r *LegalCaseRepository) Update(ctx context.Context, legalCase *models.LegalCase) error {
	query := `
		UPDATE legal_cases SET
			case_type = $1,
			status = $2,
			lawyer_name = $3,
			notes = $4,
			next_hearing_at = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		legalCase.CaseType,
		legalCase.Status,
		legalCase.LawyerName,
		legalCase.Notes,
		legalCase.NextHearingAt,
		legalCase.ID,
	).Scan(&legalCase.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrNotFound
		}
		return fmt.Errorf("failed to update legal case: %w", err)
	}
	return nil
}

// Delete удаляет дело
func (r *LegalCaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM legal_cases WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete legal case: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func scanLegalCase(row pgx.Row) (*models.LegalCase, error) {
	legalCase := &models.LegalCase{}
	err := row.Scan(
		&legalCase.ID,
		&legalCase.UserID,
		&legalCase.IncidentID,
		&legalCase.CaseType,
		&legalCase.Status,
		&legalCase.LawyerName,
		&legalCase.Notes,
		&legalCase.NextHearingAt,
		&legalCase.CreatedAt,
		&legalCase.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return legalCase, nil
}
