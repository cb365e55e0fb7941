package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"furnish-shop/config"
	"furnish-shop/models"
	"furnish-shop/routes"
	"furnish-shop/store"
	"furnish-shop/utils"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		AppEnv:        "test",
		DataDir:       t.TempDir(),
		UploadDir:     t.TempDir(),
		MaxUploadSize: 10 * 1024 * 1024,
		JWTSecret:     "test-secret",
		JWTExpiry:     "1h",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
		AdminName:     "Admin",
	}

	s, err := store.New(config.AppConfig.DataDir)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	if err := models.SeedDefaults(s); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	router := gin.New()
	routes.SetupRoutes(router, s)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(config.AppConfig.AdminEmail, config.AppConfig.AdminName)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body io.Reader, contentType, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return doRequest(t, router, method, path, reader, "application/json", token)
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file content: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
