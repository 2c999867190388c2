package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleReporter = "reporter"
	RoleReviewer = "reviewer"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	Role              string    `json:"role"`
	MFAEnabled        bool      `json:"mfa_enabled"`
	MFASecret         string    `json:"-"`
	BiometricEnabled  bool      `json:"biometric_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
