package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/pkg/cryptox"
	"github.com/sirupsen/logrus"
)

// EvidenceRepository определяет контракт для работы с бд улик
type EvidenceRepository interface {
	Create(ctx context.Context, evidence *models.Evidence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Evidence, error)
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]*models.Evidence, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ObjectStorage определяет контракт объектного хранилища зашифрованных файлов
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Допустимые типы содержимого улик
var allowedMimePrefixes = []string{"image/", "audio/", "video/"}

const mimePDF = "application/pdf"

// UploadInput - параметры загрузки одного файла улик
type UploadInput struct {
	IncidentID   uuid.UUID
	OriginalName string
	MimeType     string
	SizeBytes    int64
	Reader       io.Reader
}

// EvidenceService определяет контракт хранилища улик. Файлы шифруются
// AES-256-GCM до записи в объектное хранилище, ключ каждого файла
// оборачивается мастер-ключом и хранится рядом с метаданными.
type EvidenceService interface {
	Upload(ctx context.Context, requesterID uuid.UUID, input UploadInput) (*models.Evidence, error)
	ListForIncident(ctx context.Context, requesterID, incidentID uuid.UUID) ([]*models.Evidence, error)
	Download(ctx context.Context, requesterID, evidenceID uuid.UUID) (*models.Evidence, []byte, error)
	Delete(ctx context.Context, requesterID, evidenceID uuid.UUID) error
}

type evidenceService struct {
	repo      EvidenceRepository
	incidents IncidentRepository
	storage   ObjectStorage
	masterKey []byte
	maxBytes  int64
	logger    *logrus.Logger
}

func NewEvidenceService(repo EvidenceRepository, incidents IncidentRepository, storage ObjectStorage, masterKey []byte, maxBytes int64, logger *logrus.Logger) EvidenceService {
	return &evidenceService{
		repo:      repo,
		incidents: incidents,
		storage:   storage,
		masterKey: masterKey,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

// Upload шифрует и сохраняет файл улик. Лимит размера и тип содержимого
// проверяются до того, как хоть один байт уйдет в хранилище.
func (s *evidenceService) Upload(ctx context.Context, requesterID uuid.UUID, input UploadInput) (*models.Evidence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "evidence",
		"method":      "Upload",
		"incident_id": input.IncidentID,
	})
	log.Info("Attempting to upload evidence")

	if input.SizeBytes > s.maxBytes {
		log.WithField("size_bytes", input.SizeBytes).Warn("Upload rejected: file too large")
		return nil, ErrFileTooLarge
	}
	if !allowedMimeType(input.MimeType) {
		log.WithField("mime_type", input.MimeType).Warn("Upload rejected: unsupported media type")
		return nil, ErrUnsupportedMediaType
	}

	incident, err := s.incidents.GetByID(ctx, input.IncidentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if err := authorizeOwner(incident.UserID, requesterID); err != nil {
		log.Warn("Upload denied: requester does not own the incident")
		return nil, err
	}

	// Защита от заниженного Content-Length: читаем не больше лимита + 1 байт
	plaintext, err := io.ReadAll(io.LimitReader(input.Reader, s.maxBytes+1))
	if err != nil {
		log.WithError(err).Error("Failed to read upload body")
		return nil, fmt.Errorf("service: could not read upload: %w", err)
	}
	if int64(len(plaintext)) > s.maxBytes {
		log.Warn("Upload rejected: body larger than declared size")
		return nil, ErrFileTooLarge
	}

	dataKey, err := cryptox.GenerateDataKey()
	if err != nil {
		log.WithError(err).Error("Failed to generate data key")
		return nil, fmt.Errorf("service: could not generate data key: %w", err)
	}
	ciphertext, err := cryptox.Seal(dataKey, plaintext)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt evidence payload")
		return nil, fmt.Errorf("service: could not encrypt evidence: %w", err)
	}
	wrappedKey, err := cryptox.WrapKey(s.masterKey, dataKey)
	if err != nil {
		log.WithError(err).Error("Failed to wrap data key")
		return nil, fmt.Errorf("service: could not wrap data key: %w", err)
	}

	objectKey := fmt.Sprintf("%s/%s", input.IncidentID, uuid.New())
	if err := s.storage.Upload(ctx, objectKey, bytes.NewReader(ciphertext), int64(len(ciphertext))); err != nil {
		log.WithError(err).Error("Failed to upload evidence object")
		return nil, fmt.Errorf("service: could not store evidence object: %w", err)
	}

	evidence := &models.Evidence{
		IncidentID:   input.IncidentID,
		UserID:       requesterID,
		FileType:     fileTypeFromMime(input.MimeType),
		ObjectKey:    objectKey,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		SizeBytes:    int64(len(plaintext)),
		WrappedKey:   wrappedKey,
	}
	if err := s.repo.Create(ctx, evidence); err != nil {
		// Откатываем объект, чтобы в хранилище не оставался файл без записи
		if delErr := s.storage.Delete(ctx, objectKey); delErr != nil {
			log.WithError(delErr).Error("Failed to clean up orphaned evidence object")
		}
		log.WithError(err).Error("Failed to create evidence record")
		return nil, fmt.Errorf("service: could not create evidence record: %w", err)
	}

	log.WithField("evidence_id", evidence.ID).Info("Evidence uploaded successfully")
	return evidence, nil
}

// ListForIncident возвращает метаданные улик инцидента владельцу
func (s *evidenceService) ListForIncident(ctx context.Context, requesterID, incidentID uuid.UUID) ([]*models.Evidence, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "evidence",
		"method":      "ListForIncident",
		"incident_id": incidentID,
	})
	log.Info("Listing evidence for incident")

	incident, err := s.incidents.GetByID(ctx, incidentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	if err := authorizeOwner(incident.UserID, requesterID); err != nil {
		log.Warn("List denied: requester does not own the incident")
		return nil, err
	}

	items, err := s.repo.ListByIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Error("Failed to list evidence from repository")
		return nil, fmt.Errorf("service: could not list evidence: %w", err)
	}

	log.WithField("count", len(items)).Info("Evidence listed successfully")
	return items, nil
}

// Download расшифровывает и возвращает исходные байты файла
func (s *evidenceService) Download(ctx context.Context, requesterID, evidenceID uuid.UUID) (*models.Evidence, []byte, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "evidence",
		"method":      "Download",
		"evidence_id": evidenceID,
	})
	log.Info("Downloading evidence")

	evidence, err := s.repo.GetByID(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get evidence from repository")
		return nil, nil, fmt.Errorf("service: could not get evidence: %w", err)
	}
	if err := authorizeOwner(evidence.UserID, requesterID); err != nil {
		log.Warn("Download denied: requester does not own the evidence")
		return nil, nil, err
	}

	obj, err := s.storage.Download(ctx, evidence.ObjectKey)
	if err != nil {
		log.WithError(err).Error("Failed to download evidence object")
		return nil, nil, fmt.Errorf("service: could not download evidence object: %w", err)
	}
	defer obj.Close()

	ciphertext, err := io.ReadAll(obj)
	if err != nil {
		log.WithError(err).Error("Failed to read evidence object")
		return nil, nil, fmt.Errorf("service: could not read evidence object: %w", err)
	}

	dataKey, err := cryptox.UnwrapKey(s.masterKey, evidence.WrappedKey)
	if err != nil {
		log.WithError(err).Error("Failed to unwrap data key")
		return nil, nil, fmt.Errorf("service: could not unwrap data key: %w", err)
	}
	plaintext, err := cryptox.Open(dataKey, ciphertext)
	if err != nil {
		log.WithError(err).Error("Failed to decrypt evidence payload")
		return nil, nil, fmt.Errorf("service: could not decrypt evidence: %w", err)
	}

	log.Info("Evidence downloaded successfully")
	return evidence, plaintext, nil
}

// Delete удаляет запись и объект в хранилище
func (s *evidenceService) Delete(ctx context.Context, requesterID, evidenceID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "evidence",
		"method":      "Delete",
		"evidence_id": evidenceID,
	})
	log.Info("Attempting to delete evidence")

	evidence, err := s.repo.GetByID(ctx, evidenceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.WithError(err).Error("Failed to get evidence from repository")
		return fmt.Errorf("service: could not get evidence: %w", err)
	}
	if err := authorizeOwner(evidence.UserID, requesterID); err != nil {
		log.Warn("Delete denied: requester does not own the evidence")
		return err
	}

	if err := s.storage.Delete(ctx, evidence.ObjectKey); err != nil {
		log.WithError(err).Error("Failed to delete evidence object")
		return fmt.Errorf("service: could not delete evidence object: %w", err)
	}
	if err := s.repo.Delete(ctx, evidenceID); err != nil {
		log.WithError(err).Error("Failed to delete evidence record")
		return fmt.Errorf("service: could not delete evidence record: %w", err)
	}

	log.Info("Evidence deleted successfully")
	return nil
}

func allowedMimeType(mimeType string) bool {
	if mimeType == mimePDF {
		return true
	}
	for _, prefix := range allowedMimePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}

func fileTypeFromMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	default:
		return "document"
	}
}
