package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/notify"
	notify_mocks "github.com/luyandaaaa/SafeVoice-sub000/internal/notify/mocks"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (service.IncidentService, *mocks.MockIncidentRepository, *mocks.MockEvidenceRepository, *mocks.MockObjectStorage, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	evidenceMock := mocks.NewMockEvidenceRepository(ctrl)
	storageMock := mocks.NewMockObjectStorage(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewIncidentService(repoMock, evidenceMock, storageMock, publisherMock, logger)
	return svc, repoMock, evidenceMock, storageMock, publisherMock
}

func TestCreateIncident_DefaultsAndNGONotification(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	incident := &models.Incident{
		UserID:      uuid.New(),
		Type:        "physical",
		Description: "report text",
		Consent:     models.Consent{NGO: true},
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = incidentID
			return nil
		}).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.Event) error {
			assert.Equal(t, incidentID, event.IncidentID)
			assert.Equal(t, notify.SourceWeb, event.Source)
			assert.Equal(t, "physical", event.Type)
			return nil
		}).
		Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusSubmitted, incident.Status)
	assert.Equal(t, "medium", incident.Urgency)
}

func TestCreateIncident_DraftDoesNotNotify(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		UserID:  uuid.New(),
		Type:    "emotional",
		Status:  models.IncidentStatusDraft,
		Consent: models.Consent{NGO: true},
	}

	// Ожидания: публикации быть не должно
	repoMock.EXPECT().
		Create(ctx, incident).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusDraft, incident.Status)
}

func TestCreateIncident_NoConsentNoNotification(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		UserID: uuid.New(),
		Type:   "financial",
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, incident).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	// Согласие по умолчанию - ни с кем не делиться
	assert.False(t, incident.Consent.Vault)
	assert.False(t, incident.Consent.NGO)
	assert.False(t, incident.Consent.Court)
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	owner := &models.User{ID: uuid.New(), Role: models.RoleReporter}
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:     incidentID,
		UserID: owner.ID,
		Status: models.IncidentStatusSubmitted,
	}

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID, owner)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	owner := &models.User{ID: uuid.New(), Role: models.RoleReporter}
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:     incidentID,
		UserID: owner.ID,
		Status: models.IncidentStatusSubmitted,
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в БД
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(expectedIncident, nil).
		Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().
		SetIncidentCache(ctx, expectedIncident).
		Return(nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID, owner)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedIncident, incident)
}

func TestGetIncident_ForeignReporterForbidden(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	stranger := &models.User{ID: uuid.New(), Role: models.RoleReporter}
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, incidentID).
		Return(&models.Incident{
			ID:     incidentID,
			UserID: uuid.New(),
			Status: models.IncidentStatusSubmitted,
		}, nil).
		Times(1)

	// Действие
	incident, err := svc.GetIncident(ctx, incidentID, stranger)

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
	assert.Nil(t, incident)
}

func TestGetIncident_ReviewerSeesSubmittedButNotDraft(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	reviewer := &models.User{ID: uuid.New(), Role: models.RoleReviewer}
	submittedID := uuid.New()
	draftID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, submittedID).
		Return(&models.Incident{ID: submittedID, UserID: uuid.New(), Status: models.IncidentStatusSubmitted}, nil).
		Times(1)
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, draftID).
		Return(&models.Incident{ID: draftID, UserID: uuid.New(), Status: models.IncidentStatusDraft}, nil).
		Times(1)

	// Действие
	submitted, errSubmitted := svc.GetIncident(ctx, submittedID, reviewer)
	draft, errDraft := svc.GetIncident(ctx, draftID, reviewer)

	// Проверки
	require.NoError(t, errSubmitted)
	assert.Equal(t, submittedID, submitted.ID)

	require.ErrorIs(t, errDraft, service.ErrForbidden)
	assert.Nil(t, draft)
}

func TestUpdateIncident_MergePatch(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	existing := &models.Incident{
		ID:          incidentID,
		UserID:      ownerID,
		Type:        "physical",
		Urgency:     "medium",
		Description: "original description",
		Status:      models.IncidentStatusDraft,
	}

	newDescription := "updated description"
	newConsent := models.Consent{Vault: true, NGO: true}
	patch := service.IncidentPatch{
		Description: &newDescription,
		Consent:     &newConsent,
	}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Не переданные поля не затронуты
			assert.Equal(t, "physical", inc.Type)
			assert.Equal(t, "medium", inc.Urgency)
			assert.Equal(t, "updated description", inc.Description)
			assert.Equal(t, newConsent, inc.Consent)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)

	// Действие
	updated, err := svc.UpdateIncident(ctx, incidentID, ownerID, patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "updated description", updated.Description)
}

func TestUpdateIncident_AdvancesUpdatedAt(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	after := before.Add(time.Hour)
	existing := &models.Incident{
		ID:        incidentID,
		UserID:    ownerID,
		Type:      "physical",
		Status:    models.IncidentStatusSubmitted,
		UpdatedAt: before,
	}

	newNotes := "extra details"
	patch := service.IncidentPatch{Notes: &newNotes}

	// Ожидания: репозиторий вычитывает новый updated_at обратно в модель
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.UpdatedAt = after
			return nil
		}).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)

	// Действие
	updated, err := svc.UpdateIncident(ctx, incidentID, ownerID, patch)

	// Проверки: ответ несет новый timestamp, а не значение до обновления
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(before))
	assert.Equal(t, after, updated.UpdatedAt)
}

func TestUpdateIncident_SubmitDraftNotifiesNGO(t *testing.T) {
	// Подготовка: черновик с согласием на передачу NGO отправляется через patch
	svc, repoMock, _, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	existing := &models.Incident{
		ID:      incidentID,
		UserID:  ownerID,
		Type:    "sexual",
		Urgency: "high",
		Status:  models.IncidentStatusDraft,
		Consent: models.Consent{NGO: true},
	}

	newStatus := models.IncidentStatusSubmitted
	patch := service.IncidentPatch{Status: &newStatus}

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.Event) error {
			assert.Equal(t, incidentID, event.IncidentID)
			assert.Equal(t, notify.SourceWeb, event.Source)
			assert.Equal(t, "sexual", event.Type)
			assert.Equal(t, "high", event.Urgency)
			return nil
		}).
		Times(1)

	// Действие
	updated, err := svc.UpdateIncident(ctx, incidentID, ownerID, patch)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusSubmitted, updated.Status)
}

func TestUpdateIncident_AlreadySubmittedDoesNotRenotify(t *testing.T) {
	// Подготовка: инцидент уже отправлен, обычное редактирование
	svc, repoMock, _, _, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()
	existing := &models.Incident{
		ID:      incidentID,
		UserID:  ownerID,
		Status:  models.IncidentStatusSubmitted,
		Consent: models.Consent{NGO: true},
	}

	newNotes := "clarification"
	patch := service.IncidentPatch{Notes: &newNotes}

	// Ожидания: повторной публикации быть не должно
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(existing, nil).
		Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, incidentID).
		Return(nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	_, err := svc.UpdateIncident(ctx, incidentID, ownerID, patch)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateIncident_ForeignOwnerForbidden(t *testing.T) {
	// Подготовка
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: uuid.New()}, nil).
		Times(1)

	// Действие
	updated, err := svc.UpdateIncident(ctx, incidentID, uuid.New(), service.IncidentPatch{})

	// Проверки
	require.ErrorIs(t, err, service.ErrForbidden)
	assert.Nil(t, updated)
}

func TestDeleteIncident_RemovesEvidenceObjectsFirst(t *testing.T) {
	// Подготовка
	svc, repoMock, evidenceMock, storageMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, UserID: ownerID}, nil).
		Times(1)
	evidenceMock.EXPECT().
		ListByIncident(ctx, incidentID).
		Return([]*models.Evidence{
			{ObjectKey: "k1"},
			{ObjectKey: "k2"},
		}, nil).
		Times(1)
	storageMock.EXPECT().Delete(ctx, "k1").Return(nil).Times(1)
	storageMock.EXPECT().Delete(ctx, "k2").Return(nil).Times(1)
	repoMock.EXPECT().Delete(ctx, incidentID).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)

	// Действие
	err := svc.DeleteIncident(ctx, incidentID, ownerID)

	// Проверки
	require.NoError(t, err)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{"submitted to under_review", models.IncidentStatusSubmitted, models.IncidentStatusUnderReview, false},
		{"under_review to resolved", models.IncidentStatusUnderReview, models.IncidentStatusResolved, false},
		{"submitted to resolved", models.IncidentStatusSubmitted, models.IncidentStatusResolved, false},
		{"resolved to under_review", models.IncidentStatusResolved, models.IncidentStatusUnderReview, true},
		{"draft to under_review", models.IncidentStatusDraft, models.IncidentStatusUnderReview, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			svc, repoMock, _, _, _ := newTestIncidentService(t)
			ctx := context.Background()
			incidentID := uuid.New()

			// Ожидания
			repoMock.EXPECT().
				GetByID(ctx, incidentID).
				Return(&models.Incident{ID: incidentID, Status: tt.from}, nil).
				Times(1)
			if !tt.wantErr {
				repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
				repoMock.EXPECT().InvalidateIncidentCache(ctx, incidentID).Return(nil).Times(1)
			}

			// Действие
			incident, err := svc.UpdateStatus(ctx, incidentID, tt.to)

			// Проверки
			if tt.wantErr {
				require.ErrorIs(t, err, service.ErrInvalidStatusTransition)
				assert.Nil(t, incident)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, incident.Status)
		})
	}
}
