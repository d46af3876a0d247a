package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/participation"
	"github.com/osse101/Matchday_Go/internal/presenter"
)

func TestAdminHandler(t *testing.T) {
	f := newAPIFixture(t)
	require.Equal(t, http.StatusOK, f.do(t, testIdentity, http.MethodPost, "/api/v1/gameweeks/7/workspace", "").Code)

	h := NewAdminHandler(f.registry, f.gameweeks)
	r := chi.NewRouter()
	r.Get("/workspaces", h.HandleGetWorkspaceStats)
	r.Get("/cache/stats", h.HandleGetCacheStats)
	r.Post("/cache/clear", h.HandleClearCache)
	r.Delete("/cache/gameweeks/{gameweekID}", h.HandleInvalidateGameweek)

	call := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec
	}

	t.Run("workspace stats", func(t *testing.T) {
		rec := call(http.MethodGet, "/workspaces")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats participation.Stats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.Open)
		assert.Equal(t, 1, stats.ByPhase[presenter.PhaseIdle])
	})

	t.Run("cache stats", func(t *testing.T) {
		rec := call(http.MethodGet, "/cache/stats")
		require.Equal(t, http.StatusOK, rec.Code)

		var stats gameweek.CacheStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, 1, stats.Size)
	})

	t.Run("invalidate", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call(http.MethodDelete, "/cache/gameweeks/7").Code)
		assert.Equal(t, 0, f.gameweeks.Stats().Size)
		assert.Equal(t, http.StatusBadRequest, call(http.MethodDelete, "/cache/gameweeks/nope").Code)
	})

	t.Run("clear", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, call(http.MethodPost, "/cache/clear").Code)
		assert.Equal(t, 0, f.gameweeks.Stats().Size)
	})
}
