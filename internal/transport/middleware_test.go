package transport

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/skillswap/internal/mocks"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "caller-chosen")
	r.ServeHTTP(w, req)

	assert.Equal(t, "caller-chosen", w.Header().Get("X-Request-ID"))
}

func TestRequestLoggerDemotesNoisyPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/api/exchange/stats", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/agents", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/skills", func(c *gin.Context) { c.Status(http.StatusCreated) })

	get := func(path string) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
	}

	// Dashboard polling endpoints stay out of the Info log.
	get("/api/exchange/stats")
	get("/api/agents")
	assert.Empty(t, buf.String())

	// Writes are always logged.
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/api/skills", strings.NewReader("{}"))
	r.ServeHTTP(w, req)
	assert.Contains(t, buf.String(), "/api/skills")
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodOptions, "/x", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
}

func TestIdempotencyReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)

	stored := []byte(`{"success":true,"agent_id":"a1"}`)
	store.EXPECT().Check(gomock.Any(), "key-1").Return(stored, true, nil)

	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	handlerHits := 0
	r.POST("/x", func(c *gin.Context) {
		handlerHits++
		c.JSON(http.StatusCreated, gin.H{"fresh": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/x", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-1")
	r.ServeHTTP(w, req)

	// Replayed verbatim; the handler never runs again.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(stored), w.Body.String())
	assert.Zero(t, handlerHits)
}

func TestIdempotencyRecordsFirstResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)

	store.EXPECT().Check(gomock.Any(), "key-2").Return(nil, false, nil)
	store.EXPECT().Record(gomock.Any(), "key-2", "", "POST /x", gomock.Any()).Return(nil)

	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	r.POST("/x", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/x", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdempotencySkipsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)

	// 4xx responses are not recorded: the caller should be able to retry with
	// the same key after fixing the request.
	store.EXPECT().Check(gomock.Any(), "key-3").Return(nil, false, nil)

	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	r.POST("/x", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{"error": "bad"}) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/x", strings.NewReader("{}"))
	req.Header.Set("Idempotency-Key", "key-3")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdempotencyIgnoresGET(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)
	// No Check expectation: GETs bypass the store entirely.

	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/x", nil)
	req.Header.Set("Idempotency-Key", "key-4")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
