package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/omercangizik/AniKutusu1/internal/config"
	"github.com/omercangizik/AniKutusu1/internal/identity"
	identitymocks "github.com/omercangizik/AniKutusu1/internal/identity/mocks"
	repomocks "github.com/omercangizik/AniKutusu1/internal/repository/mocks"
	"github.com/omercangizik/AniKutusu1/internal/service/auth"
	"github.com/omercangizik/AniKutusu1/internal/service/memory"
	storagemocks "github.com/omercangizik/AniKutusu1/internal/storage/mocks"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest"
	"github.com/omercangizik/AniKutusu1/interfaces/http/rest/handlers"
	"github.com/omercangizik/AniKutusu1/pkg/api"
	"github.com/omercangizik/AniKutusu1/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	handler  http.Handler
	provider *identitymocks.MockProvider
	blobs    *storagemocks.MockBlobStore
}

func newTestEnv(t *testing.T, maxUpload int64) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	repo := repomocks.NewMockMemoryRepository()
	blobs := storagemocks.NewMockBlobStore()
	provider := identitymocks.NewMockProvider()
	tokens := identity.NewJWTIssuer("test-secret", "anikutusu-test", time.Hour)

	collector := observability.NewCollector("anikutusu")
	cfg := &config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxUploadBytes: maxUpload,
	}

	router := rest.NewRouter(
		handlers.NewAuthHandler(auth.NewService(provider, tokens, logger), logger),
		handlers.NewMemoryHandler(memory.NewService(repo, blobs, logger), collector, maxUpload, logger),
		collector,
		cfg,
		logger,
	)
	return &testEnv{handler: router.Setup(), provider: provider, blobs: blobs}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, path string, fields map[string]string, photo []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if photo != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(photo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeFieldErrors(t *testing.T, rec *httptest.ResponseRecorder) []api.FieldError {
	t.Helper()
	var body api.FieldErrorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func fieldNames(errs []api.FieldError) []string {
	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Field
	}
	return names
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("RegisterThenLogin", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"email":       "ayse@example.com",
			"password":    "123456",
			"displayName": "Ayşe",
		}))
		require.Equal(t, http.StatusCreated, rec.Code)

		var registered api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
		assert.NotEmpty(t, registered.Token)
		assert.Equal(t, "ayse@example.com", registered.User.Email)
		assert.Equal(t, "Ayşe", registered.User.DisplayName)

		rec = env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "ayse@example.com",
			"password": "123456",
		}))
		require.Equal(t, http.StatusOK, rec.Code)

		var loggedIn api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loggedIn))
		assert.NotEmpty(t, loggedIn.Token)
		assert.Equal(t, registered.User.UID, loggedIn.User.UID)
	})

	t.Run("ShortPasswordRejected", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"email":       "kisa@example.com",
			"password":    "12345",
			"displayName": "Kısa",
		}))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldNames(decodeFieldErrors(t, rec)), "password")

		// No account was created.
		rec = env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "kisa@example.com",
			"password": "12345",
		}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)
		env.provider.Seed("ayse@example.com", "Ayşe")

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/register", map[string]string{
			"email":       "ayse@example.com",
			"password":    "123456",
			"displayName": "Ayşe 2",
		}))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Bu e-posta adresi zaten kullanımda", body.Error)
	})

	t.Run("UnknownEmailLogin", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "yok@example.com",
			"password": "whatever",
		}))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Geçersiz e-posta veya şifre", body.Error)
	})

	t.Run("InvalidEmailRejected", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "not-an-email",
			"password": "123456",
		}))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldNames(decodeFieldErrors(t, rec)), "email")
	})
}

func TestMemoryEndpoints(t *testing.T) {
	t.Run("FirstListIsEmpty", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/fresh", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("CreateWithPhotoThenList", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "2024-06-01",
		}, []byte("jpeg-bytes")))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.MemoryID)
		assert.Equal(t, "Trip", created.Title)
		assert.Equal(t, "Beach day", created.Description)
		assert.Equal(t, "2024-06-01", created.Date)
		require.NotNil(t, created.PhotoURL)
		assert.Contains(t, *created.PhotoURL, "memories/g1/")

		rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/g1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var listed []api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, created, listed[0])
	})

	t.Run("CreateWithoutPhoto", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Sade",
			"description": "Fotoğrafsız",
			"date":        "2024-06-01",
		}, nil))
		require.Equal(t, http.StatusCreated, rec.Code)

		var created api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Nil(t, created.PhotoURL)
	})

	t.Run("MissingDescriptionRejected", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title": "Trip",
			"date":  "2024-06-01",
		}, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldNames(decodeFieldErrors(t, rec)), "description")
	})

	t.Run("InvalidDateRejected", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "dün",
		}, nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, fieldNames(decodeFieldErrors(t, rec)), "date")
	})

	t.Run("OversizedPhotoRejected", func(t *testing.T) {
		env := newTestEnv(t, 16)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "2024-06-01",
		}, bytes.Repeat([]byte("x"), 64)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GetSingleMemory", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "2024-06-01",
		}, nil))
		require.Equal(t, http.StatusCreated, rec.Code)

		var created api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/g1/"+created.MemoryID, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var got api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created, got)

		rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/g1/unknown-id", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("DeleteUnknownMemory", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "2024-06-01",
		}, nil))
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, httptest.NewRequest(http.MethodDelete, "/api/memories/g1/unknown-id", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Anı bulunamadı", body.Error)

		// The sequence is unchanged.
		rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/g1", nil))
		var listed []api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
	})

	t.Run("DeleteRemovesRecordAndBlob", func(t *testing.T) {
		env := newTestEnv(t, 5*1024*1024)

		rec := env.do(t, multipartRequest(t, "/api/memories/g1", map[string]string{
			"title":       "Trip",
			"description": "Beach day",
			"date":        "2024-06-01",
		}, []byte("jpeg-bytes")))
		require.Equal(t, http.StatusCreated, rec.Code)

		var created api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = env.do(t, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/memories/g1/%s", created.MemoryID), nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var msg api.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
		assert.Equal(t, "Anı başarıyla silindi", msg.Message)
		assert.Equal(t, []string{"memories/g1/" + created.MemoryID}, env.blobs.Removed)

		rec = env.do(t, httptest.NewRequest(http.MethodGet, "/api/memories/g1", nil))
		var listed []api.MemoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		assert.Empty(t, listed)
	})
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, 5*1024*1024)

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
