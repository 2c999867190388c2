package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=255"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,min=6"`
	Phone             string `json:"phone,omitempty" validate:"omitempty,max=32"`
	PreferredLanguage string `json:"preferred_language,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// MFALoginRequest DTO для второго шага входа с TOTP-кодом
// @Description DTO для второго шага входа с TOTP-кодом
type MFALoginRequest struct {
	PendingToken string `json:"pending_token" validate:"required"`
	Code         string `json:"code" validate:"required,len=6,numeric"`
}

// MFAStatusRequest DTO для переключения MFA
// @Description DTO для переключения MFA
type MFAStatusRequest struct {
	MFAEnabled *bool `json:"mfa_enabled" validate:"required"`
}

// MFAVerifyRequest DTO для подтверждения TOTP-кода
// @Description DTO для подтверждения TOTP-кода
type MFAVerifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// UserResponse DTO пользователя без чувствительных полей
// @Description DTO пользователя без чувствительных полей
type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	Role              string    `json:"role"`
	MFAEnabled        bool      `json:"mfa_enabled"`
	BiometricEnabled  bool      `json:"biometric_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AuthResponse DTO для ответа с токеном
// @Description DTO для ответа с токеном
type AuthResponse struct {
	Token       string        `json:"token"`
	MFARequired bool          `json:"mfa_required,omitempty"`
	User        *UserResponse `json:"user,omitempty"`
}

// MFAEnrollResponse DTO с данными для настройки аутентификатора
// @Description DTO с данными для настройки аутентификатора
type MFAEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// ConsentDTO - согласие на передачу инцидента третьим сторонам
// @Description Согласие на передачу инцидента третьим сторонам
type ConsentDTO struct {
	Vault bool `json:"vault"`
	NGO   bool `json:"ngo"`
	Court bool `json:"court"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string      `json:"type" validate:"required,min=2,max=64"`
	Urgency     string      `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Location    string      `json:"location,omitempty" validate:"omitempty,max=512"`
	Latitude    *float64    `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64    `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description string      `json:"description" validate:"required,min=2"`
	Perpetrator string      `json:"perpetrator,omitempty"`
	Witnesses   string      `json:"witnesses,omitempty"`
	Notes       string      `json:"notes,omitempty"`
	Anonymous   bool        `json:"anonymous,omitempty"`
	Consent     *ConsentDTO `json:"consent,omitempty"`
	Status      string      `json:"status,omitempty" validate:"omitempty,oneof=draft submitted"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента.
// Отсутствующие поля не изменяют сохраненные значения.
// @Description DTO для частичного обновления инцидента
type UpdateIncidentRequest struct {
	Type        *string     `json:"type,omitempty" validate:"omitempty,min=2,max=64"`
	Urgency     *string     `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high critical"`
	Location    *string     `json:"location,omitempty" validate:"omitempty,max=512"`
	Latitude    *float64    `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64    `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description *string     `json:"description,omitempty" validate:"omitempty,min=2"`
	Perpetrator *string     `json:"perpetrator,omitempty"`
	Witnesses   *string     `json:"witnesses,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
	Anonymous   *bool       `json:"anonymous,omitempty"`
	Consent     *ConsentDTO `json:"consent,omitempty"`
	Status      *string     `json:"status,omitempty" validate:"omitempty,oneof=draft submitted"`
}

// UpdateIncidentStatusRequest DTO для смены статуса ревьюером
// @Description DTO для смены статуса ревьюером
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=under_review resolved"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Type        string     `json:"type"`
	Urgency     string     `json:"urgency"`
	Location    string     `json:"location,omitempty"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	Description string     `json:"description"`
	Perpetrator string     `json:"perpetrator,omitempty"`
	Witnesses   string     `json:"witnesses,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Anonymous   bool       `json:"anonymous"`
	Consent     ConsentDTO `json:"consent"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EvidenceResponse DTO с метаданными улики
// @Description DTO с метаданными улики
type EvidenceResponse struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   uuid.UUID `json:"incident_id"`
	FileType     string    `json:"file_type"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateLegalCaseRequest DTO для создания юридического дела
// @Description DTO для создания юридического дела
type CreateLegalCaseRequest struct {
	IncidentID    *uuid.UUID `json:"incident_id,omitempty"`
	CaseType      string     `json:"case_type" validate:"required,min=2,max=64"`
	LawyerName    string     `json:"lawyer_name,omitempty" validate:"omitempty,max=255"`
	Notes         string     `json:"notes,omitempty"`
	NextHearingAt *time.Time `json:"next_hearing_at,omitempty"`
}

// UpdateLegalCaseRequest DTO для частичного обновления дела
// @Description DTO для частичного обновления дела
type UpdateLegalCaseRequest struct {
	CaseType      *string    `json:"case_type,omitempty" validate:"omitempty,min=2,max=64"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=requested assigned in_progress closed"`
	LawyerName    *string    `json:"lawyer_name,omitempty" validate:"omitempty,max=255"`
	Notes         *string    `json:"notes,omitempty"`
	NextHearingAt *time.Time `json:"next_hearing_at,omitempty"`
}

// LegalCaseResponse DTO для ответа с информацией о деле
// @Description DTO для ответа с информацией о деле
type LegalCaseResponse struct {
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

// USSDRequest DTO одного шага USSD-сессии
// @Description DTO одного шага USSD-сессии
type USSDRequest struct {
	SessionID string `json:"session_id" validate:"required,max=64"`
	Phone     string `json:"phone" validate:"required,max=32"`
	Text      string `json:"text"`
}

// USSDResponse DTO с ответом USSD-меню
// @Description DTO с ответом USSD-меню
type USSDResponse struct {
	Response string `json:"response"`
}

// VerifyResponse DTO для проверки токена
// @Description DTO для проверки токена
type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  *UserResponse `json:"user"`
}

// MFAStatusResponse DTO с текущим состоянием MFA
// @Description DTO с текущим состоянием MFA
type MFAStatusResponse struct {
	MFAEnabled bool `json:"mfa_enabled"`
}
