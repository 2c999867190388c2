package service_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxUploadBytes = 1 << 20

// newTestEvidenceService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestEvidenceService(t *testing.T) (service.EvidenceService, *mocks.MockEvidenceRepository, *mocks.MockIncidentRepository, *mocks.MockObjectStorage, []byte) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockEvidenceRepository(ctrl)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	storageMock := mocks.NewMockObjectStorage(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	masterKey := bytes.Repeat([]byte{0x42}, 32)
	svc := service.NewEvidenceService(repoMock, incidentsMock, storageMock, masterKey, testMaxUploadBytes, logger)
	return svc, repoMock, incidentsMock, storageMock, masterKey
}

func TestUploadEvidence_EncryptsBeforeStorage(t *testing.T) {
	// Подготовка
	svc, repoMock, incidentsMock, storageMock, _ := newTestEvidenceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	plaintext := []byte("photo bytes, definitely not a real JPEG")

	var stored []byte

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: ownerID}, nil).
		Times(1)
	storageMock.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, reader io.Reader, size int64) error {
			var err error
			stored, err = io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, int64(len(stored)), size)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, evidence *models.Evidence) error {
			evidence.ID = uuid.New()
			return nil
		}).
		Times(1)

	// Действие
	evidence, err := svc.Upload(ctx, ownerID, service.UploadInput{
		IncidentID:   incidentID,
		OriginalName: "photo.jpg",
		MimeType:     "image/jpeg",
		SizeBytes:    int64(len(plaintext)),
		Reader:       bytes.NewReader(plaintext),
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "image", evidence.FileType)
	assert.Equal(t, int64(len(plaintext)), evidence.SizeBytes)
	assert.NotEmpty(t, evidence.WrappedKey)

	// В хранилище не должно попасть ни одного открытого байта
	assert.NotEqual(t, plaintext, stored)
	assert.NotContains(t, string(stored), "photo bytes")
}

func TestUploadEvidence_TooLargeRejectedBeforeAnyWork(t *testing.T) {
	// Подготовка: никакие моки не должны быть вызваны
	svc, _, _, _, _ := newTestEvidenceService(t)
	ctx := context.Background()

	// Действие
	evidence, err := svc.Upload(ctx, uuid.New(), service.UploadInput{
		IncidentID: uuid.New(),
		MimeType:   "image/jpeg",
		SizeBytes:  testMaxUploadBytes + 1,
		Reader:     bytes.NewReader([]byte("x")),
	})

	// Проверки
	require.ErrorIs(t, err, service.ErrFileTooLarge)
	assert.Nil(t, evidence)
}

func TestUploadEvidence_UnsupportedMimeType(t *testing.T) {
	// Подготовка
	svc, _, _, _, _ := newTestEvidenceService(t)
	ctx := context.Background()

	// Действие
	evidence, err := svc.Upload(ctx, uuid.New(), service.UploadInput{
		IncidentID: uuid.New(),
		MimeType:   "application/x-msdownload",
		SizeBytes:  16,
		Reader:     bytes.NewReader([]byte("MZ...")),
	})

	// Проверки
	require.ErrorIs(t, err, service.ErrUnsupportedMediaType)
	assert.Nil(t, evidence)
}

func TestUploadEvidence_UndersizedContentLengthGuard(t *testing.T) {
	// Подготовка: заявленный размер в лимите, фактическое тело - нет
	svc, _, incidentsMock, _, _ := newTestEvidenceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: ownerID}, nil).
		Times(1)

	// Действие
	evidence, err := svc.Upload(ctx, ownerID, service.UploadInput{
		IncidentID: incidentID,
		MimeType:   "video/mp4",
		SizeBytes:  100,
		Reader:     bytes.NewReader(bytes.Repeat([]byte{0x1}, testMaxUploadBytes+10)),
	})

	// Проверки
	require.ErrorIs(t, err, service.ErrFileTooLarge)
	assert.Nil(t, evidence)
}

func TestUploadEvidence_ForeignIncidentForbidden(t *testing.T) {
	// Подготовка
	svc, _, incidentsMock, _, _ := newTestEvidenceService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: uuid.New()}, nil).
		Times(1)

	// Действие
	evidence, err := svc.Upload(ctx, uuid.New(), service.UploadInput{
		IncidentID: incidentID,
		MimeType:   "audio/mpeg",
		SizeBytes:  4,
		Reader:     bytes.NewReader([]byte("abcd")),
	})

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
	assert.Nil(t, evidence)
}

func TestUploadEvidence_StorageRollbackOnRecordFailure(t *testing.T) {
	// Подготовка
	svc, repoMock, incidentsMock, storageMock, _ := newTestEvidenceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()

	var objectKey string

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: ownerID}, nil).
		Times(1)
	storageMock.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64) error {
			objectKey = key
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(assert.AnError).
		Times(1)
	storageMock.EXPECT().
		Delete(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) error {
			assert.Equal(t, objectKey, key)
			return nil
		}).
		Times(1)

	// Действие
	evidence, err := svc.Upload(ctx, ownerID, service.UploadInput{
		IncidentID: incidentID,
		MimeType:   "application/pdf",
		SizeBytes:  5,
		Reader:     bytes.NewReader([]byte("%PDF-")),
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, evidence)
}

func TestDownloadEvidence_RoundTrip(t *testing.T) {
	// Подготовка: загружаем файл, затем скачиваем его тем же сервисом
	svc, repoMock, incidentsMock, storageMock, _ := newTestEvidenceService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	plaintext := []byte("the original recording")

	var stored []byte
	var created *models.Evidence

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: ownerID}, nil).
		Times(1)
	storageMock.EXPECT().
		Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, reader io.Reader, _ int64) error {
			var err error
			stored, err = io.ReadAll(reader)
			return err
		}).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, evidence *models.Evidence) error {
			evidence.ID = uuid.New()
			created = evidence
			return nil
		}).
		Times(1)

	uploaded, err := svc.Upload(ctx, ownerID, service.UploadInput{
		IncidentID:   incidentID,
		OriginalName: "recording.mp3",
		MimeType:     "audio/mpeg",
		SizeBytes:    int64(len(plaintext)),
		Reader:       bytes.NewReader(plaintext),
	})
	require.NoError(t, err)

	repoMock.EXPECT().
		GetByID(ctx, uploaded.ID).
		Return(created, nil).
		Times(1)
	storageMock.EXPECT().
		Download(ctx, created.ObjectKey).
		Return(io.NopCloser(bytes.NewReader(stored)), nil).
		Times(1)

	// Действие
	evidence, data, err := svc.Download(ctx, ownerID, uploaded.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "recording.mp3", evidence.OriginalName)
	assert.Equal(t, plaintext, data)
}

func TestDeleteEvidence_ForeignOwnerForbidden(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestEvidenceService(t)
	ctx := context.Background()
	evidenceID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, evidenceID).
		Return(&models.Evidence{ID: evidenceID, UserID: uuid.New()}, nil).
		Times(1)

	// Действие
	err := svc.Delete(ctx, uuid.New(), evidenceID)

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
}
