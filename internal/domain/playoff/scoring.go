package playoff

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMargin   = errors.New("predicted margin must be positive")
	ErrGameUnresolved  = errors.New("game participants are not yet determined")
	ErrUnknownGame     = errors.New("unknown bracket game")
	ErrTeamNotInGame   = errors.New("picked team is not in this game")
	ErrGameAlreadyOver = errors.New("game is already complete")
)

// ValidatePick checks a bracket pick against its game. Picks are rejected
// until both participants are known, and locked once the game completes.
func ValidatePick(game Game, pick Pick) error {
	if pick.PredictedMargin <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMargin, pick.PredictedMargin)
	}
	if !game.IsResolved() {
		return fmt.Errorf("%w: game=%s", ErrGameUnresolved, game.ID)
	}
	if game.IsComplete {
		return fmt.Errorf("%w: game=%s", ErrGameAlreadyOver, game.ID)
	}
	if pick.PickedWinnerID != game.HomeTeamID && pick.PickedWinnerID != game.AwayTeamID {
		return fmt.Errorf("%w: team=%s game=%s", ErrTeamNotInGame, pick.PickedWinnerID, game.ID)
	}
	return nil
}

// MarginPoints scores a margin call: 5 for exact, one fewer per point of
// error, never below zero.
func MarginPoints(predicted, actual int) int {
	diff := predicted - actual
	if diff < 0 {
		diff = -diff
	}
	if diff >= maxMarginPoints {
		return 0
	}
	return maxMarginPoints - diff
}

// ScoreGame grades one pick against the final result. A wrong winner scores
// zero everywhere, margin included.
func ScoreGame(round Round, pickedWinner, actualWinner string, predictedMargin, actualMargin int) Result {
	r := Result{
		PickedWinnerID:  pickedWinner,
		PredictedMargin: predictedMargin,
		ActualWinnerID:  actualWinner,
		ActualMargin:    actualMargin,
	}
	if pickedWinner != actualWinner {
		return r
	}
	r.WinnerPoints = RoundWinnerPoints(round)
	r.MarginPoints = MarginPoints(predictedMargin, actualMargin)
	r.TotalPoints = r.WinnerPoints + r.MarginPoints
	return r
}

// ScoreMember grades every pick the member holds on a completed game that
// has not been graded yet, returning the new results to append.
func ScoreMember(m Member, games []Game) []Result {
	graded := make(map[string]struct{}, len(m.Results))
	for _, r := range m.Results {
		graded[r.GameID] = struct{}{}
	}

	var out []Result
	for _, g := range games {
		if !g.IsComplete || g.WinnerID == "" {
			continue
		}
		if _, ok := graded[g.ID]; ok {
			continue
		}
		pick, ok := m.PickFor(g.ID)
		if !ok {
			continue
		}
		r := ScoreGame(g.Round, pick.PickedWinnerID, g.WinnerID, pick.PredictedMargin, g.Margin())
		r.GameID = g.ID
		out = append(out, r)
	}
	return out
}

// stageRounds maps a submission stage to the rounds it must cover.
var stageRounds = map[Stage][]Round{
	StageOne: {RoundWildCard},
	StageTwo: {RoundDivisional, RoundConference, RoundSuperBowl},
}

// StageComplete reports whether picks cover every game of the stage with a
// winner and a positive margin. Anything less is a saved draft, not a
// submission.
func StageComplete(stage Stage, picks []Pick, games []Game) bool {
	rounds, ok := stageRounds[stage]
	if !ok {
		return false
	}
	inStage := make(map[Round]struct{}, len(rounds))
	for _, r := range rounds {
		inStage[r] = struct{}{}
	}

	for _, g := range games {
		if _, ok := inStage[g.Round]; !ok {
			continue
		}
		covered := false
		for _, p := range picks {
			if p.GameID == g.ID && p.PickedWinnerID != "" && p.PredictedMargin > 0 {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
