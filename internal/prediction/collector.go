package prediction

import (
	"fmt"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// Violation describes why a match is not ready for submission
type Violation struct {
	MatchID int64  `json:"matchId"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Collector holds a user's picks for one gameweek, keyed by match id.
// It performs no I/O and is not safe for concurrent use; the owning workspace serialises access.
type Collector struct {
	gameweek    *domain.Gameweek
	predictions map[int64]*domain.Prediction
	scoreFlags  map[int64]string
}

// NewCollector creates an empty collector for the gameweek's matches
func NewCollector(gw *domain.Gameweek) *Collector {
	c := &Collector{
		gameweek:    gw,
		predictions: make(map[int64]*domain.Prediction, len(gw.Matches)),
		scoreFlags:  make(map[int64]string),
	}
	for _, m := range gw.Matches {
		c.predictions[m.ID] = &domain.Prediction{MatchID: m.ID}
	}
	return c
}

// Gameweek returns the gameweek this collector belongs to
func (c *Collector) Gameweek() *domain.Gameweek {
	return c.gameweek
}

// SelectPick toggles the pick for a match. Selecting the currently active pick clears it.
// Returns the pick now stored for the match.
func (c *Collector) SelectPick(matchID int64, pick domain.Pick) (domain.Pick, error) {
	if !pick.Valid() {
		return domain.PickNone, fmt.Errorf("%w: %q", domain.ErrInvalidPick, pick)
	}
	p, ok := c.predictions[matchID]
	if !ok {
		return domain.PickNone, fmt.Errorf("%w: %d", domain.ErrMatchNotInGameweek, matchID)
	}

	if p.Pick == pick {
		p.Pick = domain.PickNone
	} else {
		p.Pick = pick
	}
	return p.Pick, nil
}

// SetTiebreakScore stores one side's exact score for a tiebreaker match.
// Negative values leave the stored score untouched and raise the match's score flag.
func (c *Collector) SetTiebreakScore(matchID int64, side domain.Side, value int) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
	}
	m := c.gameweek.Match(matchID)
	if m == nil {
		return fmt.Errorf("%w: %d", domain.ErrMatchNotInGameweek, matchID)
	}
	if !m.IsTiebreaker {
		return fmt.Errorf("%w: %d", domain.ErrNotTiebreakerMatch, matchID)
	}
	if value < 0 {
		c.scoreFlags[matchID] = MsgNegativeScore
		return domain.ErrNegativeScore
	}
	delete(c.scoreFlags, matchID)

	p := c.predictions[matchID]
	v := value
	if side == domain.SideHome {
		p.TiebreakScoreHome = &v
	} else {
		p.TiebreakScoreAway = &v
	}
	return nil
}

// ScoreFlags returns the local score validation flags keyed by match id
func (c *Collector) ScoreFlags() map[int64]string {
	flags := make(map[int64]string, len(c.scoreFlags))
	for k, v := range c.scoreFlags {
		flags[k] = v
	}
	return flags
}

// ValidateComplete returns nil when every match has a pick and every tiebreaker
// match has both scores. Violations are reported in gameweek match order.
func (c *Collector) ValidateComplete() []Violation {
	var violations []Violation
	for _, m := range c.gameweek.Matches {
		p := c.predictions[m.ID]
		if p.Pick == domain.PickNone {
			violations = append(violations, Violation{
				MatchID: m.ID,
				Kind:    ViolationMissingPick,
				Message: fmt.Sprintf(MsgMissingPick, m.HomeTeam, m.AwayTeam),
			})
		}
		if m.IsTiebreaker && !p.HasScores() {
			violations = append(violations, Violation{
				MatchID: m.ID,
				Kind:    ViolationMissingScores,
				Message: fmt.Sprintf(MsgMissingScores, m.HomeTeam, m.AwayTeam),
			})
		}
	}
	return violations
}

// Predictions returns a copy of the current predictions in gameweek match order
func (c *Collector) Predictions() []domain.Prediction {
	out := make([]domain.Prediction, 0, len(c.gameweek.Matches))
	for _, m := range c.gameweek.Matches {
		p := *c.predictions[m.ID]
		p.TiebreakScoreHome = copyInt(p.TiebreakScoreHome)
		p.TiebreakScoreAway = copyInt(p.TiebreakScoreAway)
		out = append(out, p)
	}
	return out
}

// Payload converts the predictions to the backend wire format.
// Scores are only attached to tiebreaker matches.
func (c *Collector) Payload() []domain.PredictionPayload {
	out := make([]domain.PredictionPayload, 0, len(c.gameweek.Matches))
	for _, m := range c.gameweek.Matches {
		p := c.predictions[m.ID]
		item := domain.PredictionPayload{
			MatchID:         m.ID,
			PredictedResult: p.Pick,
		}
		if m.IsTiebreaker {
			item.PredictedHomeScore = copyInt(p.TiebreakScoreHome)
			item.PredictedAwayScore = copyInt(p.TiebreakScoreAway)
		}
		out = append(out, item)
	}
	return out
}

// Restore loads previously saved predictions, skipping matches that are no longer
// in the gameweek and scores on matches that are no longer tiebreakers.
func (c *Collector) Restore(saved []domain.Prediction) {
	for _, s := range saved {
		m := c.gameweek.Match(s.MatchID)
		if m == nil {
			continue
		}
		p := c.predictions[s.MatchID]
		if s.Pick.Valid() {
			p.Pick = s.Pick
		}
		if m.IsTiebreaker {
			p.TiebreakScoreHome = nonNegative(s.TiebreakScoreHome)
			p.TiebreakScoreAway = nonNegative(s.TiebreakScoreAway)
		}
	}
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

func nonNegative(v *int) *int {
	if v == nil || *v < 0 {
		return nil
	}
	return copyInt(v)
}
