package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/participation"
)

// ParticipationHandler serves the prediction page and its join dialog
type ParticipationHandler struct {
	registry *participation.Registry
}

// NewParticipationHandler creates a new participation handler
func NewParticipationHandler(registry *participation.Registry) *ParticipationHandler {
	return &ParticipationHandler{registry: registry}
}

// SetPickRequest toggles a match pick
type SetPickRequest struct {
	Pick string `json:"pick" validate:"required,pick"`
}

// SetPickResponse reports the pick after the toggle; empty means cleared
type SetPickResponse struct {
	MatchID   int64              `json:"matchId"`
	Pick      domain.Pick        `json:"pick"`
	Workspace participation.View `json:"workspace"`
}

// SetScoreRequest sets one side of a tiebreak score
type SetScoreRequest struct {
	Side  string `json:"side" validate:"required,side"`
	Value *int   `json:"value" validate:"required"`
}

// SubmitResponse carries the classified outcome and the dialog after it
type SubmitResponse struct {
	Outcome   domain.SubmissionOutcome `json:"outcome"`
	Workspace participation.View       `json:"workspace"`
}

// workspace resolves the caller's open workspace for the gameweek in the route
func (h *ParticipationHandler) workspace(w http.ResponseWriter, r *http.Request, opName string) (*participation.Workspace, *domain.Identity, bool) {
	identity, ok := RequireIdentity(r, w)
	if !ok {
		return nil, nil, false
	}
	gwID, ok := GetIDParam(r, w, ParamGameweekID, ErrMsgInvalidGameweekID)
	if !ok {
		return nil, nil, false
	}
	ws, err := h.registry.Get(identity.UserID, gwID)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return nil, nil, false
	}
	return ws, identity, true
}

// HandleOpenWorkspace opens or resumes the participation workspace
// @Summary Open participation dialog
// @Description Opens (or resumes) the caller's prediction workspace for a gameweek. A saved draft is restored.
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} participation.View
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/workspace [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleOpenWorkspace(w http.ResponseWriter, r *http.Request) {
	identity, ok := RequireIdentity(r, w)
	if !ok {
		return
	}
	gwID, ok := GetIDParam(r, w, ParamGameweekID, ErrMsgInvalidGameweekID)
	if !ok {
		return
	}

	ws, err := h.registry.Open(r.Context(), identity, gwID)
	if err != nil {
		respondServiceError(w, r, OpOpenWorkspace, err)
		return
	}
	respondJSON(w, http.StatusOK, ws.View())
}

// HandleGetWorkspace returns picks, violations, form and dialog state
// @Summary Get participation workspace
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} participation.View
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/workspace [get]
// @Security BearerAuth
func (h *ParticipationHandler) HandleGetWorkspace(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := h.workspace(w, r, OpGetWorkspace)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, ws.View())
}

// HandleSetPick toggles a pick; picking the current value clears it
// @Summary Toggle a match pick
// @Tags participation
// @Accept json
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Param matchID path int true "Match ID"
// @Param request body SetPickRequest true "Pick"
// @Success 200 {object} SetPickResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/picks/{matchID} [put]
// @Security BearerAuth
func (h *ParticipationHandler) HandleSetPick(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := h.workspace(w, r, OpSetPick)
	if !ok {
		return
	}
	matchID, ok := GetIDParam(r, w, ParamMatchID, ErrMsgInvalidMatchID)
	if !ok {
		return
	}
	var req SetPickRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetPick); err != nil {
		return
	}

	got, err := ws.SelectPick(r.Context(), matchID, domain.Pick(strings.ToUpper(req.Pick)))
	if err != nil {
		respondServiceError(w, r, OpSetPick, err)
		return
	}
	respondJSON(w, http.StatusOK, SetPickResponse{MatchID: matchID, Pick: got, Workspace: ws.View()})
}

// HandleSetScore sets one side of a tiebreaker's exact score
// @Summary Set tiebreak score
// @Description Negative values are rejected. Only tiebreaker matches take scores.
// @Tags participation
// @Accept json
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Param matchID path int true "Match ID"
// @Param request body SetScoreRequest true "Score"
// @Success 200 {object} participation.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/picks/{matchID}/score [put]
// @Security BearerAuth
func (h *ParticipationHandler) HandleSetScore(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := h.workspace(w, r, OpSetTiebreakScore)
	if !ok {
		return
	}
	matchID, ok := GetIDParam(r, w, ParamMatchID, ErrMsgInvalidMatchID)
	if !ok {
		return
	}
	var req SetScoreRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetTiebreakScore); err != nil {
		return
	}

	side := domain.Side(strings.ToLower(req.Side))
	if err := ws.SetTiebreakScore(r.Context(), matchID, side, *req.Value); err != nil {
		respondServiceError(w, r, OpSetTiebreakScore, err)
		return
	}
	respondJSON(w, http.StatusOK, ws.View())
}

// HandleUpdateForm applies a partial edit to the session form
// @Summary Edit session form
// @Description Absent fields are left unchanged. Invalid values surface as form errors in the response.
// @Tags participation
// @Accept json
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Param request body participation.FormPatch true "Form fields"
// @Success 200 {object} participation.View
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/form [patch]
// @Security BearerAuth
func (h *ParticipationHandler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := h.workspace(w, r, OpUpdateForm)
	if !ok {
		return
	}
	var patch participation.FormPatch
	if err := DecodeAndValidateRequest(r, w, &patch, OpUpdateForm); err != nil {
		return
	}

	if err := ws.UpdateForm(r.Context(), patch); err != nil {
		respondServiceError(w, r, OpUpdateForm, err)
		return
	}
	respondJSON(w, http.StatusOK, ws.View())
}

// HandleSubmit submits predictions and the join request.
// The outbound call is detached from the request so a client disconnect
// cannot abandon a submission halfway.
// @Summary Submit predictions and join session
// @Description Business failures (insufficient balance, already joined, ...) are returned as an outcome with status 200.
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} SubmitResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/dialog/submit [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ws, identity, ok := h.workspace(w, r, OpSubmit)
	if !ok {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	outcome, err := ws.Submit(ctx, identity)
	if err != nil {
		respondServiceError(w, r, OpSubmit, err)
		return
	}

	logger.FromContext(ctx).Info(LogMsgSubmitCompleted,
		"user_id", identity.UserID,
		"gameweek_id", ws.Gameweek().ID,
		"kind", outcome.Kind,
		"code", outcome.ErrorCode)
	respondJSON(w, http.StatusOK, SubmitResponse{Outcome: outcome, Workspace: ws.View()})
}

// HandleCancel is the dialog's cancel button
// @Summary Cancel participation dialog
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} participation.View
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/dialog/cancel [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.dialogAction(w, r, OpCancel, (*participation.Workspace).Cancel)
}

// HandleDismiss is a click on the dialog overlay
// @Summary Dismiss participation dialog
// @Description Ignored while an error is displayed or a submission is in flight.
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} participation.View
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/dialog/dismiss [post]
// @Security BearerAuth
func (h *ParticipationHandler) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	h.dialogAction(w, r, OpDismiss, (*participation.Workspace).Dismiss)
}

// HandleClose is a close request from the surrounding page
// @Summary Close participation dialog
// @Tags participation
// @Produce json
// @Param gameweekID path int true "Gameweek ID"
// @Success 200 {object} participation.View
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/gameweeks/{gameweekID}/dialog [delete]
// @Security BearerAuth
func (h *ParticipationHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.dialogAction(w, r, OpClose, (*participation.Workspace).RequestClose)
}

func (h *ParticipationHandler) dialogAction(w http.ResponseWriter, r *http.Request, opName string, action func(*participation.Workspace, context.Context) error) {
	ws, _, ok := h.workspace(w, r, opName)
	if !ok {
		return
	}
	if err := action(ws, r.Context()); err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, ws.View())
}
