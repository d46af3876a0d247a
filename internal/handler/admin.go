package handler

import (
	"net/http"

	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/participation"
)

// AdminHandler exposes operational views for admins
type AdminHandler struct {
	registry  *participation.Registry
	gameweeks gameweek.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(registry *participation.Registry, gameweeks gameweek.Service) *AdminHandler {
	return &AdminHandler{registry: registry, gameweeks: gameweeks}
}

// HandleGetWorkspaceStats returns open workspace counts by dialog phase
// @Summary Open workspace statistics
// @Tags admin
// @Produce json
// @Success 200 {object} participation.Stats
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/admin/workspaces [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetWorkspaceStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.registry.Stats())
}

// HandleGetCacheStats returns gameweek cache statistics
// @Summary Get gameweek cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} gameweek.CacheStats
// @Router /api/v1/admin/cache/stats [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.gameweeks.Stats())
}

// HandleClearCache drops every cached gameweek
// @Summary Clear gameweek cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/clear [post]
// @Security BearerAuth
func (h *AdminHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.gameweeks.Clear()
	logger.FromContext(r.Context()).Info(LogMsgCacheCleared)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: LogMsgCacheCleared})
}

// HandleInvalidateGameweek drops one cached gameweek, e.g. after a deadline change
// @Summary Invalidate a cached gameweek
// @Tags admin
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/cache/gameweeks/{gameweekID} [delete]
// @Security BearerAuth
func (h *AdminHandler) HandleInvalidateGameweek(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, ParamGameweekID, ErrMsgInvalidGameweekID)
	if !ok {
		return
	}
	h.gameweeks.Invalidate(id)
	logger.FromContext(r.Context()).Info(LogMsgCacheInvalidated, "gameweek_id", id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: LogMsgCacheInvalidated})
}
