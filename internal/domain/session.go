package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionType is the size/format of a buy-in session
type SessionType string

// Valid reports whether t is a known session type
func (t SessionType) Valid() bool {
	switch t {
	case SessionOneVsOne, SessionSmallGroup, SessionMediumGroup, SessionOpenRoom:
		return true
	}
	return false
}

// AllSessionTypes lists the session types in display order
var AllSessionTypes = []SessionType{
	SessionOneVsOne,
	SessionSmallGroup,
	SessionMediumGroup,
	SessionOpenRoom,
}

// SessionJoinRequest describes the session a user wants to join alongside their predictions.
// AccessKey is required and non-empty iff IsPrivate.
type SessionJoinRequest struct {
	GameweekID  int64           `json:"gameweekId"`
	Competition Competition     `json:"competition"`
	SessionType SessionType     `json:"sessionType"`
	BuyInAmount decimal.Decimal `json:"buyInAmount"`
	IsPrivate   bool            `json:"isPrivate"`
	AccessKey   string          `json:"accessKey,omitempty"`
}

// SubmitPredictionsRequest is the single combined body for submit-predictions.
// Session parameters are also sent as query parameters; the backend reads both.
type SubmitPredictionsRequest struct {
	UserID      string              `json:"userId"`
	GameweekID  int64               `json:"gameweekId"`
	Competition Competition         `json:"competition"`
	Predictions []PredictionPayload `json:"predictions"`
	SessionType SessionType         `json:"sessionType"`
	BuyInAmount decimal.Decimal     `json:"buyInAmount"`
	IsPrivate   bool                `json:"isPrivate"`
	Complete    bool                `json:"complete"`
	AccessKey   string              `json:"-"`
}

// SessionParticipation is the backend's record of a joined session
type SessionParticipation struct {
	ID          int64           `json:"id"`
	SessionID   int64           `json:"sessionId"`
	UserID      string          `json:"userId"`
	GameweekID  int64           `json:"gameweekId"`
	SessionType SessionType     `json:"sessionType"`
	BuyInAmount decimal.Decimal `json:"buyInAmount"`
	IsPrivate   bool            `json:"isPrivate"`
	JoinedAt    time.Time       `json:"joinedAt"`
}

// SubmitPredictionsResponse is the success body of submit-predictions
type SubmitPredictionsResponse struct {
	Predictions          []PredictionPayload   `json:"predictions"`
	SessionParticipation *SessionParticipation `json:"sessionParticipation"`
}

// BalanceDetails carries decimal strings describing an insufficient balance
type BalanceDetails struct {
	Required string `json:"required,omitempty"`
	Current  string `json:"current,omitempty"`
	Shortage string `json:"shortage,omitempty"`
}

// APIErrorBody is the structured error body returned by the backend
type APIErrorBody struct {
	Success     bool            `json:"success"`
	Error       string          `json:"error"`
	Message     string          `json:"message"`
	Details     *BalanceDetails `json:"details,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// APIError is returned by the backend client when a non-2xx response carried a structured body
type APIError struct {
	StatusCode int
	Body       APIErrorBody
}

func (e *APIError) Error() string {
	if e.Body.Message != "" {
		return e.Body.Error + ": " + e.Body.Message
	}
	return e.Body.Error
}
