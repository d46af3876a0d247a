package handler

import (
	"net/http"

	"github.com/osse101/Matchday_Go/internal/gameweek"
)

// HandleGetGameweek returns a gameweek with its matches
// @Summary Get gameweek
// @Tags gameweeks
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} domain.Gameweek
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID} [get]
// @Security BearerAuth
func HandleGetGameweek(gameweeks gameweek.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := RequireIdentity(r, w)
		if !ok {
			return
		}
		id, ok := GetIDParam(r, w, ParamGameweekID, ErrMsgInvalidGameweekID)
		if !ok {
			return
		}

		gw, err := gameweeks.Get(r.Context(), identity.Token, id)
		if err != nil {
			respondServiceError(w, r, OpGetGameweek, err)
			return
		}
		respondJSON(w, http.StatusOK, gw)
	}
}
