package domain

// Prediction is a user's pick for one match, plus exact scores for tiebreaker matches
type Prediction struct {
	MatchID           int64 `json:"matchId"`
	Pick              Pick  `json:"pick"`
	TiebreakScoreHome *int  `json:"tiebreakScoreHome"`
	TiebreakScoreAway *int  `json:"tiebreakScoreAway"`
}

// HasScores reports whether both tiebreak scores are set
func (p Prediction) HasScores() bool {
	return p.TiebreakScoreHome != nil && p.TiebreakScoreAway != nil
}

// PredictionPayload is the wire representation sent to the backend.
// Score fields are omitted entirely for non-tiebreaker matches.
type PredictionPayload struct {
	MatchID            int64 `json:"matchId"`
	PredictedResult    Pick  `json:"predictedResult"`
	PredictedHomeScore *int  `json:"predictedHomeScore,omitempty"`
	PredictedAwayScore *int  `json:"predictedAwayScore,omitempty"`
}
