package schedule

import (
	"strings"
	"time"
)

// Sport identifies which league's schedule a series draws picks from.
type Sport string

const (
	SportNFL    Sport = "nfl"
	SportSoccer Sport = "soccer"
)

// AllSports is used for payload validation.
var AllSports = map[Sport]struct{}{
	SportNFL:    {},
	SportSoccer: {},
}

// Game is one scheduled matchup with its betting line.
// HomeSpread is negative when the home side is favored.
type Game struct {
	HomeTeamID    string
	AwayTeamID    string
	KickoffAt     time.Time
	HomeSpread    float64
	OverUnder     float64
	HomeMoneyline int
	AwayMoneyline int
	IsComplete    bool
	HomeScore     *int
	AwayScore     *int
}

// Week is an immutable schedule snapshot for one game week.
type Week struct {
	Sport    Sport
	Number   int
	Season   int
	Games    []Game
	ByeTeams []string
}

// Matchup is the per-team view of a Game.
type Matchup struct {
	TeamID     string
	OpponentID string
	IsHome     bool
	Spread     float64
	Moneyline  int
	KickoffAt  time.Time
}

// MatchupFor returns the matchup for teamID in this week, if the team plays.
func (w Week) MatchupFor(teamID string) (Matchup, bool) {
	id := strings.ToLower(teamID)
	for _, g := range w.Games {
		switch id {
		case g.HomeTeamID:
			return Matchup{
				TeamID:     g.HomeTeamID,
				OpponentID: g.AwayTeamID,
				IsHome:     true,
				Spread:     g.HomeSpread,
				Moneyline:  g.HomeMoneyline,
				KickoffAt:  g.KickoffAt,
			}, true
		case g.AwayTeamID:
			return Matchup{
				TeamID:     g.AwayTeamID,
				OpponentID: g.HomeTeamID,
				IsHome:     false,
				Spread:     -g.HomeSpread,
				Moneyline:  g.AwayMoneyline,
				KickoffAt:  g.KickoffAt,
			}, true
		}
	}
	return Matchup{}, false
}

// IsOnBye reports whether teamID sits out this week.
func (w Week) IsOnBye(teamID string) bool {
	id := strings.ToLower(teamID)
	for _, t := range w.ByeTeams {
		if t == id {
			return true
		}
	}
	return false
}
