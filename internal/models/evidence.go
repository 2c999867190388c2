package models

import (
	"time"

	"github.com/google/uuid"
)

// Evidence - метаданные зашифрованного файла в хранилище улик.
// Сами байты лежат в объектном хранилище под ObjectKey,
// ключ файла хранится только в обернутом виде (WrappedKey).
type Evidence struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   uuid.UUID `json:"incident_id"`
	UserID       uuid.UUID `json:"user_id"`
	FileType     string    `json:"file_type"`
	ObjectKey    string    `json:"-"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	SizeBytes    int64     `json:"size_bytes"`
	WrappedKey   []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
