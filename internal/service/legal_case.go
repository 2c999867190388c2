package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/sirupsen/logrus"
)

// LegalCaseRepository определяет контракт для работы с бд юридических дел
type LegalCaseRepository interface {
	Create(ctx context.Context, legalCase *models.LegalCase) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LegalCase, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.LegalCase, error)
	Update(ctx context.Context, legalCase *models.LegalCase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LegalCasePatch - частичное обновление дела, nil-поля не трогаются
type LegalCasePatch struct {
	CaseType      *string
	Status        *string
	LawyerName    *string
	Notes         *string
	NextHearingAt *time.Time
}

// LegalCaseService определяет контракт учета обращений за юридической помощью.
// Правила владения те же, что и у инцидентов.
type LegalCaseService interface {
	Create(ctx context.Context, legalCase *models.LegalCase) error
	Get(ctx context.Context, id, requesterID uuid.UUID) (*models.LegalCase, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.LegalCase, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, patch LegalCasePatch) (*models.LegalCase, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type legalCaseService struct {
	repo      LegalCaseRepository
	incidents IncidentRepository
	logger    *logrus.Logger
}

func NewLegalCaseService(repo LegalCaseRepository, incidents IncidentRepository, logger *logrus.Logger) LegalCaseService {
	return &legalCaseService{
		repo:      repo,
		incidents: incidents,
		logger:    logger,
	}
}

// Create создает дело. Привязанный инцидент должен принадлежать тому же пользователю.
func (s *legalCaseService) Create(ctx context.Context, legalCase *models.LegalCase) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "legal_case",
		"method":  "Create",
		"user_id": legalCase.UserID,
	})
	log.Info("Attempting to create a legal case")

	if legalCase.Status == "" {
		legalCase.Status = models.LegalCaseStatusRequested
	}

	if legalCase.IncidentID != nil {
		incident, err := s.incidents.GetByID(ctx, *legalCase.IncidentID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return ErrNotFound
			}
			log.WithError(err).Error("Failed to get linked incident")
			return fmt.Errorf("service: could not get linked incident: %w", err)
		}
		if err := authorizeOwner(incident.UserID, legalCase.UserID); err != nil {
			log.Warn("Create denied: linked incident belongs to another user")
			return err
		}
	}

	if err := s.repo.Create(ctx, legalCase); err != nil {
		log.WithError(err).Error("Failed to create legal case in repository")
		return fmt.Errorf("service: could not create legal case: %w", err)
	}

	log.WithField("legal_case_id", legalCase.ID).Info("Legal case created successfully")
	return nil
}

// Get возвращает дело владельцу
func (s *legalCaseService) Get(ctx context.Context, id, requesterID uuid.UUID) (*models.LegalCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "legal_case",
		"method":        "Get",
		"legal_case_id": id,
	})

	legalCase, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get legal case from repository")
		return nil, fmt.Errorf("service: could not get legal case: %w", err)
	}
	if err := authorizeOwner(legalCase.UserID, requesterID); err != nil {
		log.Warn("Get denied: requester is not the owner")
		return nil, err
	}
	return legalCase, nil
}

// ListForUser возвращает дела пользователя, новые первыми
func (s *legalCaseService) ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.LegalCase, error) {
	page, pageSize = normalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "legal_case",
		"method":    "ListForUser",
		"user_id":   userID,
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing legal cases")

	cases, err := s.repo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list legal cases from repository")
		return nil, fmt.Errorf("service: could not list legal cases: %w", err)
	}

	log.WithField("count", len(cases)).Info("Legal cases listed successfully")
	return cases, nil
}

// Update применяет merge-patch к делу владельца
func (s *legalCaseService) Update(ctx context.Context, id, requesterID uuid.UUID, patch LegalCasePatch) (*models.LegalCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "legal_case",
		"method":        "Update",
		"legal_case_id": id,
	})
	log.Info("Attempting to update legal case")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get legal case from repository")
		return nil, fmt.Errorf("service: could not get legal case: %w", err)
	}
	if err := authorizeOwner(existing.UserID, requesterID); err != nil {
		log.Warn("Update denied: requester is not the owner")
		return nil, err
	}

	if patch.CaseType != nil {
		existing.CaseType = *patch.CaseType
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.LawyerName != nil {
		existing.LawyerName = *patch.LawyerName
	}
	if patch.Notes != nil {
		existing.Notes = *patch.Notes
	}
	if patch.NextHearingAt != nil {
		existing.NextHearingAt = patch.NextHearingAt
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update legal case in repository")
		return nil, fmt.Errorf("service: could not update legal case: %w", err)
	}

	log.Info("Legal case updated successfully")
	return existing, nil
}

// Delete удаляет дело владельца
func (s *legalCaseService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "legal_case",
		"method":        "Delete",
		"legal_case_id": id,
	})
	log.Info("Attempting to delete legal case")

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.WithError(err).Error("Failed to get legal case from repository")
		return fmt.Errorf("service: could not get legal case: %w", err)
	}
	if err := authorizeOwner(existing.UserID, requesterID); err != nil {
		log.Warn("Delete denied: requester is not the owner")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete legal case in repository")
		return fmt.Errorf("service: could not delete legal case: %w", err)
	}

	log.Info("Legal case deleted successfully")
	return nil
}
