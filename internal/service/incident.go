package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/notify"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
	ListForReview(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentPatch - частичное обновление инцидента. Поля со значением nil
// не трогают сохраненные данные (merge-patch).
type IncidentPatch struct {
	Type        *string
	Urgency     *string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Description *string
	Perpetrator *string
	Witnesses   *string
	Notes       *string
	Anonymous   *bool
	Consent     *models.Consent
	Status      *string
}

// IncidentService определяет контракт для бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID, requester *models.User) (*models.Incident, error)
	ListUserIncidents(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Incident, error)
	UpdateIncident(ctx context.Context, id, requesterID uuid.UUID, patch IncidentPatch) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id, requesterID uuid.UUID) error
	ListForReview(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error)
}

type incidentService struct {
	repo      IncidentRepository
	evidence  EvidenceRepository
	storage   ObjectStorage
	publisher notify.Publisher
	logger    *logrus.Logger
}

func NewIncidentService(repo IncidentRepository, evidence EvidenceRepository, storage ObjectStorage, publisher notify.Publisher, logger *logrus.Logger) IncidentService {
	return &incidentService{
		repo:      repo,
		evidence:  evidence,
		storage:   storage,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateIncident создает инцидент. Согласие по умолчанию - ни с кем не делиться.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"user_id": incident.UserID,
	})
	log.Info("Attempting to create a new incident")

	if incident.Status == "" {
		incident.Status = models.IncidentStatusSubmitted
	}
	if incident.Urgency == "" {
		incident.Urgency = "medium"
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	// Партнерская NGO уведомляется только при явном согласии
	if incident.Consent.NGO && incident.Status == models.IncidentStatusSubmitted {
		s.notifyNGO(ctx, log, incident)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// notifyNGO ставит уведомление партнерской NGO в очередь.
// Сбой публикации не прерывает основную операцию.
func (s *incidentService) notifyNGO(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	event := notify.Event{
		IncidentID: incident.ID,
		Source:     notify.SourceWeb,
		Type:       incident.Type,
		Urgency:    incident.Urgency,
		Anonymous:  incident.Anonymous,
		Timestamp:  time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish NGO notification")
	}
}

// GetIncident получает инцидент по ID. Читать может владелец,
// а ревьюер - любой инцидент, кроме черновиков.
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID, requester *models.User) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident cache")
	}

	incident := cached
	if incident == nil {
		incident, err = s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			log.WithError(err).Error("Failed to get incident in repository")
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to write incident cache")
		}
	}

	if err := s.authorizeRead(incident, requester); err != nil {
		return nil, err
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// ListUserIncidents возвращает инциденты пользователя, новые первыми
func (s *incidentService) ListUserIncidents(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListUserIncidents",
		"user_id":   userID,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing user incidents")

	incidents, err := s.repo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// UpdateIncident применяет merge-patch: затрагиваются только переданные поля,
// updated_at всегда продвигается вперед
func (s *incidentService) UpdateIncident(ctx context.Context, id, requesterID uuid.UUID, patch IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent incident")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := authorizeOwner(existing.UserID, requesterID); err != nil {
		log.Warn("Update denied: requester is not the owner")
		return nil, err
	}

	wasDraft := existing.Status == models.IncidentStatusDraft
	applyPatch(existing, patch)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	// Отправка черновика - тот же момент согласия, что и создание с submitted
	if wasDraft && existing.Status == models.IncidentStatusSubmitted && existing.Consent.NGO {
		s.notifyNGO(ctx, log, existing)
	}

	log.Info("Incident updated successfully")
	return existing, nil
}

// DeleteIncident удаляет инцидент вместе с уликами и их объектами в хранилище
func (s *incidentService) DeleteIncident(ctx context.Context, id, requesterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to delete a non-existent incident")
			return ErrNotFound
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := authorizeOwner(existing.UserID, requesterID); err != nil {
		log.Warn("Delete denied: requester is not the owner")
		return err
	}

	// Сначала убираем объекты из хранилища, чтобы не копить сироты.
	// Строки улик каскадно удалит база.
	items, err := s.evidence.ListByIncident(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list evidence for incident")
		return fmt.Errorf("service: could not list evidence: %w", err)
	}
	for _, item := range items {
		if err := s.storage.Delete(ctx, item.ObjectKey); err != nil {
			log.WithError(err).WithField("object_key", item.ObjectKey).Error("Failed to delete evidence object")
			return fmt.Errorf("service: could not delete evidence object: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident deleted successfully")
	return nil
}

// ListForReview возвращает инциденты для дашборда ревьюера (без черновиков)
func (s *incidentService) ListForReview(ctx context.Context, status string, page, pageSize int) ([]*models.Incident, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListForReview",
		"status":    status,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents for review")

	incidents, err := s.repo.ListForReview(ctx, status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for review")
		return nil, fmt.Errorf("service: could not list incidents for review: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Review incidents listed successfully")
	return incidents, nil
}

// UpdateStatus переводит инцидент по цепочке
// submitted -> under_review -> resolved
func (s *incidentService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})
	log.Info("Attempting to update incident status")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if !validStatusTransition(existing.Status, status) {
		log.Warn("Invalid status transition")
		return nil, ErrInvalidStatusTransition
	}

	existing.Status = status
	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident status updated successfully")
	return existing, nil
}

// authorizeRead: владелец видит все свое, ревьюер - все, кроме черновиков
func (s *incidentService) authorizeRead(incident *models.Incident, requester *models.User) error {
	if incident.UserID == requester.ID {
		return nil
	}
	if requester.Role == models.RoleReviewer && incident.Status != models.IncidentStatusDraft {
		return nil
	}
	return ErrForbidden
}

func validStatusTransition(from, to string) bool {
	switch from {
	case models.IncidentStatusSubmitted:
		return to == models.IncidentStatusUnderReview || to == models.IncidentStatusResolved
	case models.IncidentStatusUnderReview:
		return to == models.IncidentStatusResolved
	}
	return false
}

func applyPatch(incident *models.Incident, patch IncidentPatch) {
	if patch.Type != nil {
		incident.Type = *patch.Type
	}
	if patch.Urgency != nil {
		incident.Urgency = *patch.Urgency
	}
	if patch.Location != nil {
		incident.Location = *patch.Location
	}
	if patch.Latitude != nil {
		incident.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		incident.Longitude = patch.Longitude
	}
	if patch.Description != nil {
		incident.Description = *patch.Description
	}
	if patch.Perpetrator != nil {
		incident.Perpetrator = *patch.Perpetrator
	}
	if patch.Witnesses != nil {
		incident.Witnesses = *patch.Witnesses
	}
	if patch.Notes != nil {
		incident.Notes = *patch.Notes
	}
	if patch.Anonymous != nil {
		incident.Anonymous = *patch.Anonymous
	}
	if patch.Consent != nil {
		incident.Consent = *patch.Consent
	}
	if patch.Status != nil {
		incident.Status = *patch.Status
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
