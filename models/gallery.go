package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryAsset represents an uploaded gallery image backed by the asset storage.
type GalleryAsset struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	StoragePath string    `json:"storagePath"`
	CreatedAt   time.Time `json:"createdAt"`
}
