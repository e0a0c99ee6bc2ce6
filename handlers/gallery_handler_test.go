package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"eventstudio-backend/repository"
	"eventstudio-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGalleryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	assetStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	handler := NewGalleryHandler(store, assetStorage)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/gallery", handler.UploadAsset)
	api.GET("/gallery/:id", handler.GetAsset)
	return r
}

func uploadFile(t *testing.T, r *gin.Engine, filename, mimeType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadAndDownloadAsset(t *testing.T) {
	r := newGalleryRouter(t)

	content := []byte("not-really-a-png-but-close-enough")
	w := uploadFile(t, r, "venue.png", "image/png", content)
	require.Equal(t, http.StatusCreated, w.Code)

	var asset map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &asset))
	assert.Equal(t, "venue.png", asset["filename"])
	assert.Equal(t, "image/png", asset["mimeType"])
	require.NotEmpty(t, asset["id"])

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/"+asset["id"].(string), nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)

	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "image/png", got.Header().Get("Content-Type"))
	assert.Equal(t, content, got.Body.Bytes())
}

func TestUploadAssetMissingFile(t *testing.T) {
	r := newGalleryRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/gallery", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAssetRejectsNonImage(t *testing.T) {
	r := newGalleryRouter(t)

	w := uploadFile(t, r, "notes.txt", "text/plain", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAssetInvalidID(t *testing.T) {
	r := newGalleryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAssetNotFound(t *testing.T) {
	r := newGalleryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/6b9f66f1-9df5-4b51-9a0e-4cdbfef6f1b8", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
