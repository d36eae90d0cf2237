package playoff

import (
	"fmt"
	"time"
)

// Round of the postseason bracket.
type Round string

const (
	RoundWildCard   Round = "wild_card"
	RoundDivisional Round = "divisional"
	RoundConference Round = "conference"
	RoundSuperBowl  Round = "super_bowl"
)

// Stage groups rounds for pick submission. Stage one is the wild card
// weekend; stage two is everything after it, submitted in one batch.
type Stage string

const (
	StageOne Stage = "stage_1"
	StageTwo Stage = "stage_2"
)

// Conference labels bracket halves. The Super Bowl belongs to neither.
type Conference string

const (
	ConferenceAFC       Conference = "AFC"
	ConferenceNFC       Conference = "NFC"
	ConferenceSuperBowl Conference = "SUPER_BOWL"
)

// winnerPoints is the base score per round for a correct winner call.
var winnerPoints = map[Round]int{
	RoundWildCard:   5,
	RoundDivisional: 7,
	RoundConference: 9,
	RoundSuperBowl:  11,
}

// maxMarginPoints is the bonus for nailing the margin exactly, shrinking by
// one per point of error.
const maxMarginPoints = 5

// RoundWinnerPoints returns the base score for a correct winner in a round,
// zero for an unknown round.
func RoundWinnerPoints(round Round) int {
	return winnerPoints[round]
}

// RoundMaxPoints is the ceiling a single pick in a round can score.
func RoundMaxPoints(round Round) int {
	return winnerPoints[round] + maxMarginPoints
}

// TeamSource defers a game's participant to the outcome of an earlier game.
type TeamSource struct {
	Round      Round
	GameNumber int
	IsWinner   bool
}

// Game is one bracket slot. Until both participants are known, the TBD side
// carries an empty team id and a TeamSource pointing at its feeder game.
type Game struct {
	ID             string
	Round          Round
	Conference     Conference
	GameNumber     int
	AwayTeamID     string
	HomeTeamID     string
	AwayTeamSource *TeamSource
	HomeTeamSource *TeamSource
	KickoffAt      *time.Time
	IsComplete     bool
	HomeScore      *int
	AwayScore      *int
	WinnerID       string
}

// IsResolved reports whether both participants are known.
func (g Game) IsResolved() bool {
	return g.AwayTeamID != "" && g.HomeTeamID != ""
}

// Margin is the winner's margin of victory. Zero until the game completes.
func (g Game) Margin() int {
	if !g.IsComplete || g.HomeScore == nil || g.AwayScore == nil {
		return 0
	}
	m := *g.HomeScore - *g.AwayScore
	if m < 0 {
		m = -m
	}
	return m
}

// Pick is one bracket prediction: a winner and a margin of victory.
type Pick struct {
	GameID          string
	Round           Round
	PickedWinnerID  string
	PredictedMargin int
	PickedAt        time.Time
}

func (p Pick) Validate() error {
	if p.GameID == "" {
		return fmt.Errorf("pick game id is required")
	}
	if p.PickedWinnerID == "" {
		return fmt.Errorf("picked winner is required")
	}
	if _, ok := winnerPoints[p.Round]; !ok {
		return fmt.Errorf("unknown playoff round: %s", p.Round)
	}
	return nil
}

// Result is a graded bracket pick.
type Result struct {
	GameID          string
	PickedWinnerID  string
	PredictedMargin int
	ActualWinnerID  string
	ActualMargin    int
	WinnerPoints    int
	MarginPoints    int
	TotalPoints     int
}

// Member is one participant in a playoff pool.
type Member struct {
	UserID      string
	UserName    string
	UserPicture string
	JoinedAt    time.Time
	Picks       []Pick
	Results     []Result
}

// TotalPoints sums the member's graded results.
func (m Member) TotalPoints() int {
	total := 0
	for _, r := range m.Results {
		total += r.TotalPoints
	}
	return total
}

// PickFor returns the member's pick for a game, if any.
func (m Member) PickFor(gameID string) (Pick, bool) {
	for _, p := range m.Picks {
		if p.GameID == gameID {
			return p, true
		}
	}
	return Pick{}, false
}

// Pool is the playoff bracket state attached to one series. Seeding is kept
// so later rounds can reseed matchups as winners emerge.
type Pool struct {
	SeriesID string
	Season   int
	Seeding  Seeding
	Games    []Game
	Members  []Member
}

// GameByID finds a bracket game.
func (p Pool) GameByID(gameID string) (Game, bool) {
	for _, g := range p.Games {
		if g.ID == gameID {
			return g, true
		}
	}
	return Game{}, false
}

// MemberByUser finds a pool member.
func (p Pool) MemberByUser(userID string) (Member, bool) {
	for _, m := range p.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}
