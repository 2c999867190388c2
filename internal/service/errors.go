package service

import (
	"errors"

	"github.com/google/uuid"
)

// Единая таксономия доменных ошибок. Хэндлеры переводят их в HTTP-статусы
// в одном месте, вместо разрозненных проверок в каждом маршруте.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this user")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled for this user")
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")

	ErrFileTooLarge         = errors.New("file exceeds upload size limit")
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// authorizeOwner - единая проверка владения ресурсом.
// Любое несовпадение дает ErrForbidden, а не 401/404 вперемешку.
func authorizeOwner(ownerID, requesterID uuid.UUID) error {
	if ownerID != requesterID {
		return ErrForbidden
	}
	return nil
}
