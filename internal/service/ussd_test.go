package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/luyandaaaa/SafeVoice-sub000/internal/notify"
	notify_mocks "github.com/luyandaaaa/SafeVoice-sub000/internal/notify/mocks"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUSSDService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestUSSDService(t *testing.T) (service.USSDService, *mocks.MockUSSDSessionStore, *notify_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	sessionsMock := mocks.NewMockUSSDSessionStore(ctrl)
	publisherMock := notify_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewUSSDService(sessionsMock, publisherMock, logger)
	return svc, sessionsMock, publisherMock
}

func TestUSSDHandle_NewSessionShowsMenu(t *testing.T) {
	// Подготовка
	svc, sessionsMock, _ := newTestUSSDService(t)
	ctx := context.Background()

	// Ожидания
	sessionsMock.EXPECT().
		Get(ctx, "sess-1").
		Return(nil, nil).
		Times(1)
	sessionsMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *service.USSDSession) error {
			assert.Equal(t, service.USSDStepMenu, session.Step)
			assert.Equal(t, "+27820000001", session.Phone)
			return nil
		}).
		Times(1)

	// Действие
	response, err := svc.Handle(ctx, "sess-1", "+27820000001", "")

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response, "CON "))
	assert.Contains(t, response, "Report an incident")
	assert.Contains(t, response, "Support line")
}

func TestUSSDHandle_SupportLineEndsSession(t *testing.T) {
	// Подготовка
	svc, sessionsMock, _ := newTestUSSDService(t)
	ctx := context.Background()

	// Ожидания
	sessionsMock.EXPECT().
		Get(ctx, "sess-2").
		Return(&service.USSDSession{SessionID: "sess-2", Step: service.USSDStepMenu}, nil).
		Times(1)
	sessionsMock.EXPECT().
		Delete(ctx, "sess-2").
		Return(nil).
		Times(1)

	// Действие
	response, err := svc.Handle(ctx, "sess-2", "+27820000001", "2")

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response, "END "))
	assert.Contains(t, response, "0800-428-428")
}

func TestUSSDHandle_ReportWalkPublishesAnonymousEvent(t *testing.T) {
	// Подготовка: полный проход меню от выбора до описания
	svc, sessionsMock, publisherMock := newTestUSSDService(t)
	ctx := context.Background()
	sessionID := "sess-3"
	phone := "+27820000002"

	// Шаг 1: выбор "сообщить об инциденте"
	sessionsMock.EXPECT().
		Get(ctx, sessionID).
		Return(&service.USSDSession{SessionID: sessionID, Phone: phone, Step: service.USSDStepMenu}, nil).
		Times(1)
	sessionsMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *service.USSDSession) error {
			assert.Equal(t, service.USSDStepType, session.Step)
			return nil
		}).
		Times(1)

	response, err := svc.Handle(ctx, sessionID, phone, "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response, "CON "))
	assert.Contains(t, response, "Type of incident")

	// Шаг 2: выбор типа (шлюз шлет полную цепочку через '*')
	sessionsMock.EXPECT().
		Get(ctx, sessionID).
		Return(&service.USSDSession{SessionID: sessionID, Phone: phone, Step: service.USSDStepType}, nil).
		Times(1)
	sessionsMock.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *service.USSDSession) error {
			assert.Equal(t, service.USSDStepDescription, session.Step)
			assert.Equal(t, "sexual", session.IncidentType)
			return nil
		}).
		Times(1)

	response, err = svc.Handle(ctx, sessionID, phone, "1*2")
	require.NoError(t, err)
	assert.Contains(t, response, "describe")

	// Шаг 3: описание, отчет уходит в очередь уведомлений
	sessionsMock.EXPECT().
		Get(ctx, sessionID).
		Return(&service.USSDSession{SessionID: sessionID, Phone: phone, Step: service.USSDStepDescription, IncidentType: "sexual"}, nil).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.Event) error {
			assert.Equal(t, notify.SourceUSSD, event.Source)
			assert.Equal(t, "sexual", event.Type)
			assert.Equal(t, "high", event.Urgency)
			assert.True(t, event.Anonymous)
			assert.Equal(t, "he follows me home", event.Description)
			return nil
		}).
		Times(1)
	sessionsMock.EXPECT().
		Delete(ctx, sessionID).
		Return(nil).
		Times(1)

	response, err = svc.Handle(ctx, sessionID, phone, "1*2*he follows me home")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response, "END "))
	assert.Contains(t, response, "has been sent")
}

func TestUSSDHandle_InvalidTypeChoiceReprompts(t *testing.T) {
	// Подготовка
	svc, sessionsMock, _ := newTestUSSDService(t)
	ctx := context.Background()

	// Ожидания: сессия не пересохраняется, шаг не двигается
	sessionsMock.EXPECT().
		Get(ctx, "sess-4").
		Return(&service.USSDSession{SessionID: "sess-4", Step: service.USSDStepType}, nil).
		Times(1)

	// Действие
	response, err := svc.Handle(ctx, "sess-4", "+27820000003", "1*9")

	// Проверки
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response, "CON "))
	assert.Contains(t, response, "Invalid choice")
}
