package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentResponse struct {
	ID        string `json:"id"`
	PersonKey string `json:"personKey"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type apiError struct {
	Error      string   `json:"error"`
	Kind       string   `json:"kind"`
	Violations []string `json:"violations"`
}

func postComment(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIRoutes(t *testing.T) {
	db := setupTestDB(t)
	router := SetupRoutes(db, zerolog.Nop())

	t.Run("POST /api/comments stores a clean comment", func(t *testing.T) {
		w := postComment(t, router, `{"personKey":"Jane Doe - Senator","name":"Jane","text":"Great point!","timestamp":"2026-01-01T00:00:00Z"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var res commentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Jane Doe - Senator", res.PersonKey)
		assert.Equal(t, "Jane", res.Name)
		assert.Equal(t, "Great point!", res.Text)
		// Server time is authoritative; the spoofed client timestamp must
		// not come back.
		assert.NotEqual(t, "2026-01-01T00:00:00Z", res.Timestamp)
	})

	t.Run("POST /api/comments rejects PII with every violation", func(t *testing.T) {
		w := postComment(t, router, `{"personKey":"Jane Doe - Senator","name":"John","text":"call 555-123-4567 or write john@example.com"}`)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var res apiError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "validation", res.Kind)
		assert.Equal(t, []string{
			"Phone number detected",
			"Email address detected",
		}, res.Violations)
	})

	t.Run("POST /api/comments rejects empty text with a distinct kind", func(t *testing.T) {
		w := postComment(t, router, `{"personKey":"Jane Doe - Senator","name":"Jane","text":"  "}`)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var res apiError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "empty", res.Kind)
		assert.Empty(t, res.Violations)
	})

	t.Run("POST /api/comments rejects malformed JSON", func(t *testing.T) {
		w := postComment(t, router, `{"personKey":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("POST /api/comments defaults blank names", func(t *testing.T) {
		w := postComment(t, router, `{"personKey":"John Roe - Representative","name":"","text":"A fair vote for once."}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var res commentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Anonymous", res.Name)
	})

	t.Run("GET /api/comments/{personKey} lists stored comments", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/comments/Jane%20Doe%20-%20Senator", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var res []commentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 1)
		assert.Equal(t, "Great point!", res[0].Text)
	})

	t.Run("GET /api/comments/{personKey} for unknown key returns empty list", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/comments/nobody", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("GET /api/comments groups by person key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/comments", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var res map[string][]commentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res, 2)
		assert.Len(t, res["Jane Doe - Senator"], 1)
		assert.Len(t, res["John Roe - Representative"], 1)
	})

	t.Run("GET /api/comments/{personKey}/count", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/comments/Jane%20Doe%20-%20Senator/count", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			PersonKey string `json:"personKey"`
			Count     int    `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Jane Doe - Senator", res.PersonKey)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("GET /api/filter/check returns the verdict", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/filter/check?text=call+555-123-4567", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var res struct {
			IsClean    bool     `json:"isClean"`
			Violations []string `json:"violations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.IsClean)
		assert.Contains(t, res.Violations, "Phone number detected")
	})

	t.Run("GET /healthz", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
