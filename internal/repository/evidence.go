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

const evidenceColumns = `
	id,
	incident_id,
	user_id,
	file_type,
	object_key,
	original_name,
	mime_type,
	size_bytes,
	wrapped_key,
	created_at`

type EvidenceRepository struct {
	db *pgxpool.Pool
}

func NewEvidenceRepository(db *pgxpool.Pool) service.EvidenceRepository {
	return &EvidenceRepository{db: db}
}

// Create создает запись об улике
func (r *EvidenceRepository) Create(ctx context.Context, evidence *models.Evidence) error {
	query := `
		INSERT INTO evidence (
			incident_id, user_id, file_type, object_key,
			original_name, mime_type, size_bytes, wrapped_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		evidence.IncidentID,
		evidence.UserID,
		evidence.FileType,
		evidence.ObjectKey,
		evidence.OriginalName,
		evidence.MimeType,
		evidence.SizeBytes,
		evidence.WrappedKey,
	).Scan(&evidence.ID, &evidence.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create evidence: %w", err)
	}
	return nil
}

// GetByID возвращает улику по ее UUID
func (r *EvidenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Evidence, error) {
	query := fmt.Sprintf(`SELECT %s FROM evidence WHERE id = $1;`, evidenceColumns)

	evidence, err := scanEvidence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get evidence by id: %w", err)
	}
	return evidence, nil
}

// ListByIncident возвращает все улики инцидента, новые первыми
func (r *EvidenceRepository) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Evidence, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM evidence
		WHERE incident_id = $1
		ORDER BY created_at DESC;
	`, evidenceColumns)

	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evidence by incident: %w", err)
	}
	defer rows.Close()

	items := make([]*models.Evidence, 0)
	for rows.Next() {
		evidence, err := scanEvidence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evidence row: %w", err)
		}
		items = append(items, evidence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

// Delete удаляет запись об улике
func (r *EvidenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM evidence WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete evidence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

func scanEvidence(row pgx.Row) (*models.Evidence, error) {
	evidence := &models.Evidence{}
	err := row.Scan(
		&evidence.ID,
		&evidence.IncidentID,
		&evidence.UserID,
		&evidence.FileType,
		&evidence.ObjectKey,
		&evidence.OriginalName,
		&evidence.MimeType,
		&evidence.SizeBytes,
		&evidence.WrappedKey,
		&evidence.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return evidence, nil
}
