package bootstrap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-manpower/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRouter_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := bootstrap.NewRouter([]string{"http://localhost:5173"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := bootstrap.NewRouter([]string{"http://localhost:5173"})

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/requests/x/assign", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := bootstrap.NewStdoutAuditLogger(zap.New(core))

	l.Log(context.Background(), bootstrap.AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye"})

	entries := logs.FilterMessage("audit event").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "SERVER_SHUTDOWN", entries[0].ContextMap()["action"])
		assert.Equal(t, "audit", entries[0].LoggerName)
	}
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func TestRunHTTPServer_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	audit := &recordingAudit{}

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.RunHTTPServer(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, audit, zap.NewNop())
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "SERVER_SHUTDOWN", audit.entries[0].Action)
	assert.Equal(t, context.Canceled.Error(), audit.entries[0].Meta["cause"])
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	err := bootstrap.RunHTTPServer(context.Background(), http.NotFoundHandler(),
		bootstrap.ServerConfig{Port: "not-a-port"}, &recordingAudit{}, zap.NewNop())

	assert.Error(t, err)
}
