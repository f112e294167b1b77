package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-manpower/internal/domain"
	"go-manpower/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddlewareWithSecret(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"company_id":  c.GetString("company_id"),
				"employee_id": c.GetString("employee_id"),
				"user":        c.GetString("user_id_validated"),
			})
		})
		return r
	}

	t.Run("valid token sets claims", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "u-1",
			"company_id":  "c-1",
			"employee_id": "e-1",
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"company_id":"c-1","employee_id":"e-1","user":"u-1"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Token not found", env.Error.Message)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     "u-1",
			"company_id":  "c-1",
			"employee_id": "e-1",
			"exp":         time.Now().Add(-time.Hour).Unix(),
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Token has expired", env.Error.Message)
	})

	t.Run("missing company claim", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"user_id": "u-1", "employee_id": "e-1"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func TestRBACAuthorize(t *testing.T) {
	run := func(enf *fakeEnforcer, withIdentity bool) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if withIdentity {
				c.Set("employee_id", "e-1")
				c.Set("company_id", "c-1")
			}
		})
		r.POST("/x", middleware.RBACAuthorize(enf, "manpower", "assign"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
		return w
	}

	t.Run("allowed", func(t *testing.T) {
		enf := &fakeEnforcer{allowed: true}
		w := run(enf, true)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "manpower", enf.got.Resource)
		assert.Equal(t, "assign", enf.got.Action)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := run(&fakeEnforcer{allowed: false}, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enforcer error hidden", func(t *testing.T) {
		w := run(&fakeEnforcer{err: errors.New("casbin down")}, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		w := run(&fakeEnforcer{allowed: true}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIdempotency(t *testing.T) {
	const path = "/requests/:id/assign"
	cacheKey := middleware.IdempotencyKey(path, "u-1", "key-1")
	lockKey := cacheKey + ":lock"

	newRouter := func(rdbMock *redismockClient, calls *int) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set("user_id_validated", "u-1") })
		r.POST(path, middleware.Idempotency(rdbMock.client, nil), func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})
		return r
	}

	t.Run("first call stores the response", func(t *testing.T) {
		m := newRedismock()
		calls := 0
		body := []byte(`{"ok":true}`)
		payload, _ := json.Marshal(struct {
			Status int             `json:"status"`
			Body   json.RawMessage `json:"body"`
		}{Status: http.StatusCreated, Body: body})

		m.mock.ExpectGet(cacheKey).RedisNil()
		m.mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		m.mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
		m.mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requests/r-1/assign", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		newRouter(m, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, m.mock.ExpectationsWereMet())
	})

	t.Run("replay skips the handler", func(t *testing.T) {
		m := newRedismock()
		calls := 0
		m.mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requests/r-1/assign", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		newRouter(m, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.Equal(t, 0, calls)
		assert.NoError(t, m.mock.ExpectationsWereMet())
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		m := newRedismock()
		calls := 0
		m.mock.ExpectGet(cacheKey).RedisNil()
		m.mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/requests/r-1/assign", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		newRouter(m, &calls).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		m := newRedismock()
		calls := 0
		w := httptest.NewRecorder()
		newRouter(m, &calls).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/requests/r-1/assign", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, m.mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u-1") })
	r.GET("/x", middleware.RateLimitByUser(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/x", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{"caller id is kept", "req-2024.06.01:42", true},
		{"missing id is minted", "", false},
		{"unsafe id is replaced", "abc\r\nSet-Cookie: x", false},
		{"oversized id is replaced", strings.Repeat("a", 65), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, w.Body.String())
			if tt.keep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}
