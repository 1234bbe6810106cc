package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"weddingshare/internal/database"
	"weddingshare/internal/repository"
	"weddingshare/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	uploadRepo := repository.NewUploadRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	blobs := storage.NewFilesystem(t.TempDir())

	service := NewService(uploadRepo, settingRepo, blobs, 50*1024*1024,
		[]string{"jpeg", "jpg", "png", "gif", "mp4", "mov", "webm"})
	handler := NewHandler(service)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func multipartBody(t *testing.T, uploaderName, message string, files ...testFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if uploaderName != "" {
		require.NoError(t, mw.WriteField("uploaderName", uploaderName))
	}
	if message != "" {
		require.NoError(t, mw.WriteField("message", message))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, f.name))
		h.Set("Content-Type", f.mime)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.data))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadEndpointSuccess(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, "Alice", "congrats",
		testFile{name: "dance.jpg", mime: "image/jpeg", data: "photo"})

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Success       bool           `json:"success"`
		Message       string         `json:"message"`
		Files         []AcceptedFile `json:"files"`
		Uploader      string         `json:"uploader"`
		UploadMessage string         `json:"uploadMessage"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))

	assert.True(t, payload.Success)
	require.Len(t, payload.Files, 1)
	assert.NotZero(t, payload.Files[0].ID)
	assert.Equal(t, "dance.jpg", payload.Files[0].OriginalName)
	assert.Equal(t, int64(5), payload.Files[0].Size)
	assert.Equal(t, "Alice", payload.Uploader)
	assert.Equal(t, "congrats", payload.UploadMessage)
}

func TestUploadEndpointMissingName(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, "", "",
		testFile{name: "dance.jpg", mime: "image/jpeg", data: "photo"})

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)
}

func TestUploadEndpointNoFiles(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, "Alice", "")

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUploadEndpointDisallowedType(t *testing.T) {
	router := setupRouter(t)

	body, contentType := multipartBody(t, "Alice", "",
		testFile{name: "malware.exe", mime: "application/octet-stream", data: "x"})

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "image and video")
}
