package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы юридического дела
const (
	LegalCaseStatusRequested  = "requested"
	LegalCaseStatusAssigned   = "assigned"
	LegalCaseStatusInProgress = "in_progress"
	LegalCaseStatusClosed     = "closed"
)

type LegalCase struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	IncidentID    *uuid.UUID `json:"incident_id,omitempty"`
	CaseType      string     `json:"case_type"`
	Status        string     `json:"status"`
	LawyerName    string     `json:"lawyer_name,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	NextHearingAt *time.Time `json:"next_hearing_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
