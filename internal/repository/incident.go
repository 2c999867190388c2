package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/redis/go-redis/v9"
)

const incidentColumns = `
	id,
	user_id,
	type,
	urgency,
	location,
	latitude,
	longitude,
	description,
	perpetrator,
	witnesses,
	notes,
	anonymous,
	consent_vault,
	consent_ngo,
	consent_court,
	status,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			user_id, type, urgency, location, latitude, longitude,
			description, perpetrator, witnesses, notes, anonymous,
			consent_vault, consent_ngo, consent_court, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.UserID,
		incident.Type,
		incident.Urgency,
		incident.Location,
		incident.Latitude,
		incident.Longitude,
		incident.Description,
		incident.Perpetrator,
		incident.Witnesses,
		incident.Notes,
		incident.Anonymous,
		incident.Consent.Vault,
		incident.Consent.NGO,
		incident.Consent.Court,
		incident.Status,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE id = $1;`, incidentColumns)

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// Update перезаписывает все изменяемые поля инцидента.
// Новый updated_at вычитывается обратно в модель.
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			type = $1,
			urgency = $2,
			location = $3,
			latitude = $4,
			longitude = $5,
			description = $6,
			perpetrator = $7,
			witnesses = $8,
			notes = $9,
			anonymous = $10,
			consent_vault = $11,
			consent_ngo = $12,
			consent_court = $13,
			status = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Urgency,
		incident.Location,
		incident.Latitude,
		incident.Longitude,
		incident.Description,
		incident.Perpetrator,
		incident.Witnesses,
		incident.Notes,
		incident.Anonymous,
		incident.Consent.Vault,
		incident.Consent.NGO,
		incident.Consent.Court,
		incident.Status,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrNotFound
		}
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return nil
}

// Delete удаляет инцидент. Улики удаляются каскадно на стороне бд.
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// ListByUser возвращает инциденты пользователя с пагинацией, новые первыми
func (r *IncidentRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`
		SELECT %s FROM incidents
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`, incidentColumns)

	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by user: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

// ListForReview возвращает инциденты для ревью: все, кроме черновиков,
// с необязательным фильтром по статусу
func (r *IncidentRepository) ListForReview(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`
		SELECT %s FROM incidents
		WHERE status <> 'draft' AND ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`, incidentColumns)

	rows, err := r.db.Query(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents for review: %w", err)
	}
	defer rows.Close()

	return collectIncidents(rows)
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID.String())
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	// Срок жизни кэша - 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("incident:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.UserID,
		&incident.Type,
		&incident.Urgency,
		&incident.Location,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Description,
		&incident.Perpetrator,
		&incident.Witnesses,
		&incident.Notes,
		&incident.Anonymous,
		&incident.Consent.Vault,
		&incident.Consent.NGO,
		&incident.Consent.Court,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
