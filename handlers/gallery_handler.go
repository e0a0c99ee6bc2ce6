package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"eventstudio-backend/models"
	"eventstudio-backend/repository"
	"eventstudio-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GalleryHandler handles HTTP requests for gallery image assets
type GalleryHandler struct {
	store            repository.Store
	assetStorage     storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(store repository.Store, assetStorage storage.Storage) *GalleryHandler {
	return &GalleryHandler{
		store:        store,
		assetStorage: assetStorage,
		maxFileSize:  10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
			"image/gif":  true,
		},
	}
}

// UploadAsset handles POST /api/gallery
func (h *GalleryHandler) UploadAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if fileHeader.Size > h.maxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeTypeFromFilename(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "File type not allowed. Allowed types: JPEG, PNG, WEBP, GIF",
		})
		return
	}

	// The asset id keys the storage path, so it is generated before upload.
	assetID := uuid.New()

	storagePath, err := h.assetStorage.Upload(c.Request.Context(), assetID, fileHeader.Filename, file)
	if err != nil {
		log.Printf("Failed to upload asset: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	asset := &models.GalleryAsset{
		ID:          assetID,
		Filename:    fileHeader.Filename,
		MimeType:    mimeType,
		Size:        fileHeader.Size,
		StoragePath: storagePath,
	}

	if err := h.store.CreateGalleryAsset(c.Request.Context(), asset); err != nil {
		// Orphaned upload; best effort cleanup.
		if derr := h.assetStorage.Delete(c.Request.Context(), storagePath); derr != nil {
			log.Printf("Failed to clean up asset %s: %v", storagePath, derr)
		}
		log.Printf("Failed to save asset record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save asset"})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// GetAsset handles GET /api/gallery/:id
func (h *GalleryHandler) GetAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset ID format"})
		return
	}

	asset, err := h.store.GetGalleryAsset(c.Request.Context(), id)
	if err != nil {
		log.Printf("Failed to fetch asset %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch asset"})
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	reader, err := h.assetStorage.Download(c.Request.Context(), asset.StoragePath)
	if err != nil {
		log.Printf("Failed to download asset %s: %v", asset.StoragePath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch asset"})
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, asset.Size, asset.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", asset.Filename),
	})
}

func mimeTypeFromFilename(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
