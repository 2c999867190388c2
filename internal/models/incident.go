package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы инцидента
const (
	IncidentStatusDraft       = "draft"
	IncidentStatusSubmitted   = "submitted"
	IncidentStatusUnderReview = "under_review"
	IncidentStatusResolved    = "resolved"
)

// Consent фиксирует, с кем пользователь согласился поделиться инцидентом
type Consent struct {
	Vault bool `json:"vault"`
	NGO   bool `json:"ngo"`
	Court bool `json:"court"`
}

type Incident struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Urgency     string    `json:"urgency"`
	Location    string    `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Description string    `json:"description"`
	Perpetrator string    `json:"perpetrator,omitempty"`
	Witnesses   string    `json:"witnesses,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Anonymous   bool      `json:"anonymous"`
	Consent     Consent   `json:"consent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
