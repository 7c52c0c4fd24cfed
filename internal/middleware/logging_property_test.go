package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func findEntry(entries []observer.LoggedEntry, message string) *observer.LoggedEntry {
	for i := range entries {
		if entries[i].Message == message {
			return &entries[i]
		}
	}
	return nil
}

// All requests are logged with method, path, user ID, status and timestamp
func TestProperty_RequestLogging(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("all requests are logged with required fields", prop.ForAll(
		func(method string, path string, userID string) bool {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestIDMiddleware())
			router.Use(RequestLoggingMiddleware(logger))

			router.Handle(method, path, func(c *gin.Context) {
				if userID != "" {
					c.Set(UserIDKey, userID)
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(method, path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			entry := findEntry(logs.All(), "Request completed")
			if entry == nil {
				t.Logf("Request log entry not found")
				return false
			}

			fields := entry.ContextMap()
			wantUser := userID
			if wantUser == "" {
				wantUser = "anonymous"
			}

			if fields["method"] != method || fields["path"] != path || fields["user_id"] != wantUser {
				t.Logf("unexpected fields: %v", fields)
				return false
			}
			for _, key := range []string{"timestamp", "duration", "status", "request_id"} {
				if _, ok := fields[key]; !ok {
					t.Logf("%s field missing", key)
					return false
				}
			}
			return true
		},
		gen.OneConstOf("GET", "POST", "DELETE"),
		gen.OneConstOf("/api/v1/stats", "/api/v1/score", "/api/v1/bowel-movements"),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// All errors attached to a request are logged with stack traces and context
func TestProperty_ErrorLoggingDetail(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("errors are logged with stack traces and context", prop.ForAll(
		func(errorMessage string, path string) bool {
			core, logs := observer.New(zapcore.ErrorLevel)
			logger := zap.New(core)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(ErrorLoggingMiddleware(logger))

			router.GET(path, func(c *gin.Context) {
				c.Error(&testError{msg: errorMessage})
				c.Status(http.StatusInternalServerError)
			})

			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			entry := findEntry(logs.All(), "Request error occurred")
			if entry == nil {
				t.Logf("Error log entry not found")
				return false
			}

			fields := entry.ContextMap()
			if fields["method"] != "GET" || fields["path"] != path {
				t.Logf("method or path missing")
				return false
			}
			for _, key := range []string{"error", "stack_trace"} {
				if _, ok := fields[key]; !ok {
					t.Logf("%s field missing", key)
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.OneConstOf("/api/v1/reports", "/api/v1/stats", "/api/v1/score"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRecoveryMiddleware_ReturnsInternalError(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.ErrorLevel)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	// Act
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotNil(t, findEntry(logs.All(), "Panic recovered"))
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates uuid", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		assert.NoError(t, err)
		assert.Equal(t, w.Header().Get("X-Request-ID"), w.Body.String())
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})
}

func TestSlowRequestMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SlowRequestMiddleware(zap.New(core), time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		time.Sleep(5 * time.Millisecond)
		c.Status(http.StatusOK)
	})
	router.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/slow", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/fast", nil))

	assert.Equal(t, 1, logs.FilterMessage("Slow request").Len())
}
