package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/bus-portal/internal/middleware"
	"github.com/ukydev/bus-portal/internal/web"
)

func TestPageHandler_Customer(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewPageHandler("Bus Portal", logger)
	page, ok := web.LookupPage("customer")
	require.True(t, ok)

	t.Run("get renders layout and page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customer", nil)
		w := httptest.NewRecorder()

		handler.Page(page)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Equal(t, 1, strings.Count(body, "<header"))
		assert.Contains(t, body, string(web.PublicNavbar()))
		assert.Contains(t, body, "</header><h1>Customer</h1><p>Welcome to the customer page!</p>")
		assert.Contains(t, body, "<title>Customer | Bus Portal</title>")
	})

	t.Run("head has no body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodHead, "/customer", nil)
		w := httptest.NewRecorder()

		handler.Page(page)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/customer", nil)
		w := httptest.NewRecorder()

		handler.Page(page)(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.Equal(t, "GET, HEAD", w.Header().Get("Allow"))
	})
}

func TestPageHandler_Home(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewPageHandler("", logger)

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{"root redirects", http.MethodGet, "/", http.StatusFound},
		{"unknown path", http.MethodGet, "/admin", http.StatusNotFound},
		{"post to root", http.MethodPost, "/", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Home(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	w = httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodDelete, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestNewRouter(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := NewRouter("Bus Portal", logger)

	t.Run("customer page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customer", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Welcome to the customer page!")
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("root redirects to customer", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/customer", w.Header().Get("Location"))
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/buses", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("requests are logged", func(t *testing.T) {
		hook.Reset()
		req := httptest.NewRequest(http.MethodGet, "/customer", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		router.ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, hook.Entries, 1)
		assert.Equal(t, "req-42", hook.LastEntry().Data["request_id"])
		assert.Equal(t, "/customer", hook.LastEntry().Data["path"])
	})
}
