package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// encodeBuffers holds response buffers between requests. Buffers that grew
// past maxPooledBuffer (a workspace view with many matches) are not returned.
var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, 1024)) },
}

const maxPooledBuffer = 64 << 10

// respondJSON encodes payload before writing headers so an encoding failure
// still produces a clean 500
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			encodeBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthRequiredError   = "Please log in to continue."
	ErrMsgForbiddenError      = "You are not allowed to do that."
	ErrMsgUnavailableError    = "Prediction service is temporarily unavailable. Please try again later."

	// Gameweek and prediction messages
	ErrMsgGameweekNotFoundError   = "Gameweek not found"
	ErrMsgMatchNotFoundError      = "That match is not part of this gameweek"
	ErrMsgJoinDeadlinePassedError = "The join deadline for this gameweek has passed"
	ErrMsgNotTiebreakerError      = "Exact scores are only taken for tiebreaker matches"
	ErrMsgInvalidPickError        = "Pick must be HOME_WIN, DRAW or AWAY_WIN"
	ErrMsgInvalidSideError        = "Score side must be home or away"
	ErrMsgNegativeScoreError      = "Scores cannot be negative"
	ErrMsgInvalidBuyInError       = "Buy-in must be a positive amount"
	ErrMsgInvalidSessionTypeError = "Unknown session type"
	ErrMsgInvalidCompetitionError = "Unknown competition"

	// Workspace and dialog messages
	ErrMsgWorkspaceNotFoundError  = "Open the participation dialog first"
	ErrMsgSubmissionInFlightError = "Your predictions are being submitted"
	ErrMsgDialogClosedError       = "This participation dialog is already closed"
	ErrMsgCloseSuppressedError    = "Fix the error or press Cancel to close"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrMsgAuthRequiredError
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError

	case errors.Is(err, domain.ErrGameweekNotFound):
		return http.StatusNotFound, ErrMsgGameweekNotFoundError
	case errors.Is(err, domain.ErrMatchNotInGameweek):
		return http.StatusNotFound, ErrMsgMatchNotFoundError
	case errors.Is(err, domain.ErrWorkspaceNotFound):
		return http.StatusNotFound, ErrMsgWorkspaceNotFoundError

	case errors.Is(err, domain.ErrJoinDeadlinePassed):
		return http.StatusConflict, ErrMsgJoinDeadlinePassedError
	case errors.Is(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict, ErrMsgSubmissionInFlightError
	case errors.Is(err, domain.ErrDialogClosed):
		return http.StatusConflict, ErrMsgDialogClosedError
	case errors.Is(err, domain.ErrCloseSuppressed):
		return http.StatusConflict, ErrMsgCloseSuppressedError

	case errors.Is(err, domain.ErrNotTiebreakerMatch):
		return http.StatusBadRequest, ErrMsgNotTiebreakerError
	case errors.Is(err, domain.ErrInvalidPick):
		return http.StatusBadRequest, ErrMsgInvalidPickError
	case errors.Is(err, domain.ErrInvalidSide):
		return http.StatusBadRequest, ErrMsgInvalidSideError
	case errors.Is(err, domain.ErrNegativeScore):
		return http.StatusBadRequest, ErrMsgNegativeScoreError
	case errors.Is(err, domain.ErrInvalidBuyIn):
		return http.StatusBadRequest, ErrMsgInvalidBuyInError
	case errors.Is(err, domain.ErrInvalidSessionType):
		return http.StatusBadRequest, ErrMsgInvalidSessionTypeError
	case errors.Is(err, domain.ErrInvalidCompetition):
		return http.StatusBadRequest, ErrMsgInvalidCompetitionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError

	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrUnexpectedStatusCode):
		return http.StatusBadGateway, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
