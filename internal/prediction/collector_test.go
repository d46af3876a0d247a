package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Matchday_Go/internal/domain"
)

func testGameweek() *domain.Gameweek {
	return &domain.Gameweek{
		ID:          7,
		Competition: domain.CompetitionPremierLeague,
		Matches: []domain.Match{
			{ID: 1, HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
			{ID: 2, HomeTeam: "Leeds", AwayTeam: "Everton", IsTiebreaker: true},
		},
	}
}

func intPtr(v int) *int { return &v }

func TestSelectPick_Toggle(t *testing.T) {
	c := NewCollector(testGameweek())

	got, err := c.SelectPick(1, domain.PickHomeWin)
	require.NoError(t, err)
	assert.Equal(t, domain.PickHomeWin, got)

	got, err = c.SelectPick(1, domain.PickHomeWin)
	require.NoError(t, err)
	assert.Equal(t, domain.PickNone, got, "double toggle returns the pick to none")

	got, err = c.SelectPick(1, domain.PickDraw)
	require.NoError(t, err)
	assert.Equal(t, domain.PickDraw, got)

	got, err = c.SelectPick(1, domain.PickAwayWin)
	require.NoError(t, err)
	assert.Equal(t, domain.PickAwayWin, got, "selecting a different pick replaces it")
}

func TestSelectPick_Errors(t *testing.T) {
	c := NewCollector(testGameweek())

	_, err := c.SelectPick(99, domain.PickDraw)
	assert.ErrorIs(t, err, domain.ErrMatchNotInGameweek)

	_, err = c.SelectPick(1, domain.Pick("WHATEVER"))
	assert.ErrorIs(t, err, domain.ErrInvalidPick)

	_, err = c.SelectPick(1, domain.PickNone)
	assert.ErrorIs(t, err, domain.ErrInvalidPick)
}

func TestSetTiebreakScore(t *testing.T) {
	tests := []struct {
		name    string
		matchID int64
		side    domain.Side
		value   int
		wantErr error
		flagged bool
	}{
		{name: "home score", matchID: 2, side: domain.SideHome, value: 1},
		{name: "away zero", matchID: 2, side: domain.SideAway, value: 0},
		{name: "negative rejected", matchID: 2, side: domain.SideHome, value: -1, wantErr: domain.ErrNegativeScore, flagged: true},
		{name: "not a tiebreaker", matchID: 1, side: domain.SideHome, value: 1, wantErr: domain.ErrNotTiebreakerMatch},
		{name: "unknown match", matchID: 42, side: domain.SideHome, value: 1, wantErr: domain.ErrMatchNotInGameweek},
		{name: "bad side", matchID: 2, side: domain.Side("middle"), value: 1, wantErr: domain.ErrInvalidSide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(testGameweek())
			err := c.SetTiebreakScore(tt.matchID, tt.side, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			_, flagged := c.ScoreFlags()[tt.matchID]
			assert.Equal(t, tt.flagged, flagged)
		})
	}
}

func TestSetTiebreakScore_NegativeIsNoOp(t *testing.T) {
	c := NewCollector(testGameweek())
	require.NoError(t, c.SetTiebreakScore(2, domain.SideHome, 3))

	err := c.SetTiebreakScore(2, domain.SideHome, -2)
	assert.ErrorIs(t, err, domain.ErrNegativeScore)
	assert.Equal(t, 3, *c.Predictions()[1].TiebreakScoreHome)
	assert.Contains(t, c.ScoreFlags(), int64(2))

	require.NoError(t, c.SetTiebreakScore(2, domain.SideHome, 4))
	assert.NotContains(t, c.ScoreFlags(), int64(2), "valid value clears the flag")
}

func TestValidateComplete(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *Collector)
		wantKinds []string
	}{
		{
			name:      "nothing picked",
			setup:     func(c *Collector) {},
			wantKinds: []string{ViolationMissingPick, ViolationMissingPick, ViolationMissingScores},
		},
		{
			name: "picks but tiebreaker missing away score",
			setup: func(c *Collector) {
				_, _ = c.SelectPick(1, domain.PickHomeWin)
				_, _ = c.SelectPick(2, domain.PickDraw)
				_ = c.SetTiebreakScore(2, domain.SideHome, 1)
			},
			wantKinds: []string{ViolationMissingScores},
		},
		{
			name: "scores but no pick on tiebreaker",
			setup: func(c *Collector) {
				_, _ = c.SelectPick(1, domain.PickHomeWin)
				_ = c.SetTiebreakScore(2, domain.SideHome, 1)
				_ = c.SetTiebreakScore(2, domain.SideAway, 1)
			},
			wantKinds: []string{ViolationMissingPick},
		},
		{
			name: "complete",
			setup: func(c *Collector) {
				_, _ = c.SelectPick(1, domain.PickHomeWin)
				_, _ = c.SelectPick(2, domain.PickDraw)
				_ = c.SetTiebreakScore(2, domain.SideHome, 1)
				_ = c.SetTiebreakScore(2, domain.SideAway, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(testGameweek())
			tt.setup(c)

			violations := c.ValidateComplete()
			var kinds []string
			for _, v := range violations {
				kinds = append(kinds, v.Kind)
				assert.NotEmpty(t, v.Message)
			}
			assert.Equal(t, tt.wantKinds, kinds)
		})
	}
}

func TestPayload_ScoresOnlyOnTiebreakers(t *testing.T) {
	c := NewCollector(testGameweek())
	_, _ = c.SelectPick(1, domain.PickHomeWin)
	_, _ = c.SelectPick(2, domain.PickDraw)
	require.NoError(t, c.SetTiebreakScore(2, domain.SideHome, 1))
	require.NoError(t, c.SetTiebreakScore(2, domain.SideAway, 1))

	payload := c.Payload()

	assert.Equal(t, []domain.PredictionPayload{
		{MatchID: 1, PredictedResult: domain.PickHomeWin},
		{MatchID: 2, PredictedResult: domain.PickDraw, PredictedHomeScore: intPtr(1), PredictedAwayScore: intPtr(1)},
	}, payload)
}

func TestPredictions_ReturnsCopies(t *testing.T) {
	c := NewCollector(testGameweek())
	require.NoError(t, c.SetTiebreakScore(2, domain.SideHome, 2))

	preds := c.Predictions()
	*preds[1].TiebreakScoreHome = 9

	assert.Equal(t, 2, *c.Predictions()[1].TiebreakScoreHome)
}

func TestRestore(t *testing.T) {
	c := NewCollector(testGameweek())

	c.Restore([]domain.Prediction{
		{MatchID: 1, Pick: domain.PickAwayWin, TiebreakScoreHome: intPtr(3)},
		{MatchID: 2, Pick: domain.PickDraw, TiebreakScoreHome: intPtr(2), TiebreakScoreAway: intPtr(-1)},
		{MatchID: 77, Pick: domain.PickDraw},
	})

	preds := c.Predictions()
	require.Len(t, preds, 2)
	assert.Equal(t, domain.PickAwayWin, preds[0].Pick)
	assert.Nil(t, preds[0].TiebreakScoreHome, "scores are dropped on non-tiebreaker matches")
	assert.Equal(t, 2, *preds[1].TiebreakScoreHome)
	assert.Nil(t, preds[1].TiebreakScoreAway, "negative saved scores are discarded")
}
