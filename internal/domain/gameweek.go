package domain

import "time"

// Pick is a predicted match outcome. The zero value means no pick.
type Pick string

// Valid reports whether p is one of the three selectable outcomes
func (p Pick) Valid() bool {
	switch p {
	case PickHomeWin, PickDraw, PickAwayWin:
		return true
	}
	return false
}

// Side identifies which team a tiebreak score belongs to
type Side string

// Valid reports whether s names a known side
func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

// Competition identifies the league a gameweek belongs to
type Competition string

// Valid reports whether c is a known competition
func (c Competition) Valid() bool {
	switch c {
	case CompetitionPremierLeague, CompetitionLaLiga, CompetitionSerieA,
		CompetitionBundesliga, CompetitionLigue1, CompetitionChampionsLeague:
		return true
	}
	return false
}

// Match is a single fixture inside a gameweek
type Match struct {
	ID           int64     `json:"id"`
	HomeTeam     string    `json:"homeTeam"`
	AwayTeam     string    `json:"awayTeam"`
	Kickoff      time.Time `json:"kickoff"`
	IsTiebreaker bool      `json:"isTiebreaker"`
}

// Gameweek is a scheduled round of matches for a competition
type Gameweek struct {
	ID           int64       `json:"id"`
	Competition  Competition `json:"competition"`
	Number       int         `json:"number"`
	StartsAt     time.Time   `json:"startsAt"`
	EndsAt       time.Time   `json:"endsAt"`
	JoinDeadline time.Time   `json:"joinDeadline"`
	Matches      []Match     `json:"matches"`
}

// Match returns the match with the given id, or nil if the gameweek doesn't contain it
func (g *Gameweek) Match(id int64) *Match {
	for i := range g.Matches {
		if g.Matches[i].ID == id {
			return &g.Matches[i]
		}
	}
	return nil
}

// JoinOpen reports whether sessions for this gameweek can still be joined at now.
// A zero deadline means the backend did not publish one.
func (g *Gameweek) JoinOpen(now time.Time) bool {
	if g.JoinDeadline.IsZero() {
		return true
	}
	return now.Before(g.JoinDeadline)
}
