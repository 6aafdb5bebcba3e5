package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocab/internal/http/middleware"
)

// memCounter is an in-memory RateCounter.
type memCounter struct {
	mu   sync.Mutex
	hits map[string]int64
	err  error
}

func (m *memCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hits == nil {
		m.hits = map[string]int64{}
	}
	m.hits[key]++
	return m.hits[key], window, nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": middleware.RequestIDFrom(c)}) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func get(r http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(middleware.RequestID())

	w := get(r, "/ok", nil)
	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)

	w = get(r, "/ok", map[string]string{middleware.RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, w.Body.String(), "abc-123")
}

func TestRecovery(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := newEngine(middleware.RequestID(), middleware.Recovery(logger))

	w := get(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := newEngine(middleware.RequestID(), middleware.Logging(logger))
	get(r, "/ok", map[string]string{middleware.RequestIDHeader: "rid-1"})

	out := buf.String()
	assert.Contains(t, out, `"path":"/ok"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"rid-1"`)
}

func TestRateLimit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := newEngine(middleware.RateLimit(&memCounter{}, 2, time.Minute, logger))

	for i := 0; i < 2; i++ {
		w := get(r, "/ok", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}
	w := get(r, "/ok", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_FailsOpen(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := newEngine(middleware.RateLimit(&memCounter{err: errors.New("redis down")}, 1, time.Minute, logger))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ok", nil).Code)
	}
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRateLimit_Disabled(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := newEngine(middleware.RateLimit(nil, 1, time.Minute, logger))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/ok", nil).Code)
	}
}
