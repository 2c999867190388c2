package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/luyandaaaa/SafeVoice-sub000/internal/notify"
	"github.com/sirupsen/logrus"
)

// Шаги USSD-сессии
const (
	USSDStepMenu        = "menu"
	USSDStepType        = "type"
	USSDStepDescription = "description"
)

// USSDSession - состояние одной USSD-сессии между запросами шлюза
type USSDSession struct {
	SessionID    string `json:"session_id"`
	Phone        string `json:"phone"`
	Step         string `json:"step"`
	IncidentType string `json:"incident_type,omitempty"`
}

// USSDSessionStore определяет контракт хранилища USSD-сессий.
// Отсутствующая сессия - это (nil, nil), а не ошибка.
type USSDSessionStore interface {
	Get(ctx context.Context, sessionID string) (*USSDSession, error)
	Save(ctx context.Context, session *USSDSession) error
	Delete(ctx context.Context, sessionID string) error
}

// USSDService определяет контракт серверной части USSD-меню
type USSDService interface {
	Handle(ctx context.Context, sessionID, phone, text string) (string, error)
}

type ussdService struct {
	sessions  USSDSessionStore
	publisher notify.Publisher
	logger    *logrus.Logger
}

func NewUSSDService(sessions USSDSessionStore, publisher notify.Publisher, logger *logrus.Logger) USSDService {
	return &ussdService{
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

const ussdHelplineText = "END SafeVoice support line: 0800-428-428 (toll free, 24/7). You are not alone."

// Handle выполняет один шаг меню. Шлюз присылает полную цепочку ввода
// через '*', нам важен только последний фрагмент.
func (s *ussdService) Handle(ctx context.Context, sessionID, phone, text string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "ussd",
		"method":     "Handle",
		"session_id": sessionID,
	})

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		log.WithError(err).Error("Failed to load USSD session")
		return "", fmt.Errorf("service: could not load ussd session: %w", err)
	}
	if session == nil {
		session = &USSDSession{
			SessionID: sessionID,
			Phone:     phone,
			Step:      USSDStepMenu,
		}
	}

	input := lastInput(text)

	switch session.Step {
	case USSDStepMenu:
		if input == "" {
			session.Step = USSDStepMenu
			if err := s.sessions.Save(ctx, session); err != nil {
				return "", fmt.Errorf("service: could not save ussd session: %w", err)
			}
			return "CON Welcome to SafeVoice\n1. Report an incident\n2. Support line", nil
		}
		switch input {
		case "1":
			session.Step = USSDStepType
			if err := s.sessions.Save(ctx, session); err != nil {
				return "", fmt.Errorf("service: could not save ussd session: %w", err)
			}
			return "CON Type of incident\n1. Physical\n2. Sexual\n3. Emotional\n4. Financial", nil
		case "2":
			if err := s.sessions.Delete(ctx, sessionID); err != nil {
				log.WithError(err).Warn("Failed to delete USSD session")
			}
			return ussdHelplineText, nil
		default:
			return "CON Invalid choice\n1. Report an incident\n2. Support line", nil
		}

	case USSDStepType:
		incidentType, ok := ussdIncidentType(input)
		if !ok {
			return "CON Invalid choice. Type of incident\n1. Physical\n2. Sexual\n3. Emotional\n4. Financial", nil
		}
		session.IncidentType = incidentType
		session.Step = USSDStepDescription
		if err := s.sessions.Save(ctx, session); err != nil {
			return "", fmt.Errorf("service: could not save ussd session: %w", err)
		}
		return "CON Briefly describe what happened", nil

	case USSDStepDescription:
		// USSD-обращения анонимны и не сохраняются как инциденты -
		// они ретранслируются партнерской NGO через очередь уведомлений
		event := notify.Event{
			Source:      notify.SourceUSSD,
			Type:        session.IncidentType,
			Urgency:     "high",
			Anonymous:   true,
			Description: input,
			Timestamp:   time.Now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish USSD report")
			return "", fmt.Errorf("service: could not publish ussd report: %w", err)
		}
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			log.WithError(err).Warn("Failed to delete USSD session")
		}
		log.WithField("incident_type", session.IncidentType).Info("USSD report relayed")
		return "END Your report has been sent. Help is on the way.\nSupport line: 0800-428-428", nil
	}

	return "", fmt.Errorf("service: unknown ussd step %q", session.Step)
}

func ussdIncidentType(input string) (string, bool) {
	switch input {
	case "1":
		return "physical", true
	case "2":
		return "sexual", true
	case "3":
		return "emotional", true
	case "4":
		return "financial", true
	}
	return "", false
}

func lastInput(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	parts := strings.Split(text, "*")
	return strings.TrimSpace(parts[len(parts)-1])
}
