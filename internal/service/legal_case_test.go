package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLegalCaseService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestLegalCaseService(t *testing.T) (service.LegalCaseService, *mocks.MockLegalCaseRepository, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockLegalCaseRepository(ctrl)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewLegalCaseService(repoMock, incidentsMock, logger)
	return svc, repoMock, incidentsMock
}

func TestCreateLegalCase_DefaultStatus(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestLegalCaseService(t)
	ctx := context.Background()
	legalCase := &models.LegalCase{
		UserID:   uuid.New(),
		CaseType: "protection_order",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, legalCase).
		Return(nil).
		Times(1)

	// Действие
	err := svc.Create(ctx, legalCase)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.LegalCaseStatusRequested, legalCase.Status)
}

func TestCreateLegalCase_LinkedIncidentOwned(t *testing.T) {
	// Подготовка
	svc, repoMock, incidentsMock := newTestLegalCaseService(t)
	ctx := context.Background()
	userID := uuid.New()
	incidentID := uuid.New()
	legalCase := &models.LegalCase{
		UserID:     userID,
		IncidentID: &incidentID,
		CaseType:   "criminal",
	}

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: userID}, nil).
		Times(1)
	repoMock.EXPECT().
		Create(ctx, legalCase).
		Return(nil).
		Times(1)

	// Действие
	err := svc.Create(ctx, legalCase)

	// Проверки
	require.NoError(t, err)
}

func TestCreateLegalCase_LinkedForeignIncidentForbidden(t *testing.T) {
	// Подготовка
	svc, _, incidentsMock := newTestLegalCaseService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	legalCase := &models.LegalCase{
		UserID:     uuid.New(),
		IncidentID: &incidentID,
	}

	// Ожидания
	incidentsMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: uuid.New()}, nil).
		Times(1)

	// Действие
	err := svc.Create(ctx, legalCase)

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
}

func TestGetLegalCase_ForeignOwnerForbidden(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestLegalCaseService(t)
	ctx := context.Background()
	caseID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, caseID).
		Return(&models.LegalCase{ID: caseID, UserID: uuid.New()}, nil).
		Times(1)

	// Действие
	legalCase, err := svc.Get(ctx, caseID, uuid.New())

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
	assert.Nil(t, legalCase)
}

func TestUpdateLegalCase_MergePatch(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestLegalCaseService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	caseID := uuid.New()
	existing := &models.LegalCase{
		ID:       caseID,
		UserID:   ownerID,
		CaseType: "protection_order",
		Status:   models.LegalCaseStatusRequested,
		Notes:    "initial notes",
	}

	lawyerName := "T. Dlamini"
	newStatus := models.LegalCaseStatusAssigned
	patch := service.LegalCasePatch{
		LawyerName: &lawyerName,
		Status:     &newStatus,
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, caseID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, legalCase *models.LegalCase) error {
			assert.Equal(t, "protection_order", legalCase.CaseType)
			assert.Equal(t, "initial notes", legalCase.Notes)
			assert.Equal(t, "T. Dlamini", legalCase.LawyerName)
			assert.Equal(t, models.LegalCaseStatusAssigned, legalCase.Status)
			return nil
		}).
		Times(1)

	// Действие
	updated, err := svc.Update(ctx, caseID, ownerID, patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, lawyerName, updated.LawyerName)
}

func TestUpdateLegalCase_AdvancesUpdatedAt(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestLegalCaseService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	caseID := uuid.New()
	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	after := before.Add(time.Hour)
	existing := &models.LegalCase{
		ID:        caseID,
		UserID:    ownerID,
		CaseType:  "criminal",
		Status:    models.LegalCaseStatusRequested,
		UpdatedAt: before,
	}

	newNotes := "hearing scheduled"
	patch := service.LegalCasePatch{Notes: &newNotes}

	// Ожидания: репозиторий вычитывает новый updated_at обратно в модель
	repoMock.EXPECT().
		GetByID(ctx, caseID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, legalCase *models.LegalCase) error {
			legalCase.UpdatedAt = after
			return nil
		}).
		Times(1)

	// Действие
	updated, err := svc.Update(ctx, caseID, ownerID, patch)

	// Проверки: ответ несет новый timestamp, а не значение до обновления
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
	assert.Equal(t, after, updated.UpdatedAt)
}

func TestDeleteLegalCase_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestLegalCaseService(t)
	ctx := context.Background()
	caseID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, caseID).
		Return(nil, service.ErrNotFound).
		Times(1)

	// Действие
	err := svc.Delete(ctx, caseID, uuid.New())

	// Проверки
	require.ErrorIs(t, err, service.ErrNotFound)
}
