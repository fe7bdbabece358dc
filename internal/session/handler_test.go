package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(m *Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewSessionHandler(m).RegisterRoutes(r)
	return r
}

func perform(r http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(Header, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProfile(t *testing.T, w *httptest.ResponseRecorder) Profile {
	t.Helper()
	var p Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestSessionHandler_LoginAndProfile(t *testing.T) {
	r := newTestRouter(newTestManager())

	w := perform(r, http.MethodPost, "/v1/session", "", LoginRequest{Email: "a@example.com", Name: "Ann"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "id-1", w.Header().Get(Header))

	w = perform(r, http.MethodGet, "/v1/session/profile", "id-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ann", decodeProfile(t, w).Name)

	w = perform(r, http.MethodPatch, "/v1/session/profile", "id-1", UpdateProfileRequest{Name: "Annie"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Annie", decodeProfile(t, w).Name)

	w = perform(r, http.MethodPatch, "/v1/session/profile", "id-1", UpdateProfileRequest{Name: " "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodDelete, "/v1/session", "id-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, "/v1/session/profile", "id-1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionHandler_MissingSession(t *testing.T) {
	r := newTestRouter(newTestManager())

	w := perform(r, http.MethodGet, "/v1/session/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_FOUND")

	w = perform(r, http.MethodPost, "/v1/session/favorites/japan", "unknown", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionHandler_ProfileCollections(t *testing.T) {
	m := newTestManager()
	r := newTestRouter(m)
	p, err := m.Login(context.Background(), "a@example.com", "A")
	require.NoError(t, err)

	w := perform(r, http.MethodPost, "/v1/session/favorites/japan", p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"japan"}, decodeProfile(t, w).FavoriteDestinations)

	w = perform(r, http.MethodPost, "/v1/session/saved-searches", p.ID, SavedSearch{Origin: "JFK", Destination: "LAX"})
	require.Equal(t, http.StatusOK, w.Code)
	saved := decodeProfile(t, w).SavedSearches
	require.Len(t, saved, 1)

	w = perform(r, http.MethodDelete, "/v1/session/saved-searches/"+saved[0].ID, p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeProfile(t, w).SavedSearches)

	for _, id := range []string{"f1", "f2", "f3"} {
		w = perform(r, http.MethodPost, "/v1/session/comparison", p.ID, ComparisonRequest{FlightID: id})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w = perform(r, http.MethodPost, "/v1/session/comparison", p.ID, ComparisonRequest{FlightID: "f4"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = perform(r, http.MethodDelete, "/v1/session/comparison/f2", p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"f1", "f3"}, decodeProfile(t, w).Comparison)
}
