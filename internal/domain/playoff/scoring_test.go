package playoff

import (
	"errors"
	"testing"
)

func TestScoreGameCorrectWinner(t *testing.T) {
	t.Parallel()

	// Wild card hit with margin off by 3: 5 winner + 2 margin.
	r := ScoreGame(RoundWildCard, "kc", "kc", 10, 7)
	if r.WinnerPoints != 5 || r.MarginPoints != 2 || r.TotalPoints != 7 {
		t.Fatalf("unexpected score: %+v", r)
	}
}

func TestScoreGameExactMargin(t *testing.T) {
	t.Parallel()

	r := ScoreGame(RoundSuperBowl, "kc", "kc", 3, 3)
	if r.WinnerPoints != 11 || r.MarginPoints != 5 || r.TotalPoints != 16 {
		t.Fatalf("unexpected score: %+v", r)
	}
}

func TestScoreGameWrongWinnerScoresZero(t *testing.T) {
	t.Parallel()

	// Margin accuracy is worthless without the winner.
	r := ScoreGame(RoundConference, "buf", "kc", 3, 3)
	if r.WinnerPoints != 0 || r.MarginPoints != 0 || r.TotalPoints != 0 {
		t.Fatalf("wrong winner must score zero: %+v", r)
	}
}

func TestMarginPoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		predicted, actual, want int
	}{
		{7, 7, 5},
		{7, 8, 4},
		{7, 3, 1},
		{7, 2, 0},
		{3, 20, 0},
	}
	for _, tc := range cases {
		if got := MarginPoints(tc.predicted, tc.actual); got != tc.want {
			t.Fatalf("MarginPoints(%d, %d) = %d, want %d", tc.predicted, tc.actual, got, tc.want)
		}
	}
}

func TestRoundPointValues(t *testing.T) {
	t.Parallel()

	want := map[Round]int{RoundWildCard: 5, RoundDivisional: 7, RoundConference: 9, RoundSuperBowl: 11}
	for round, points := range want {
		if got := RoundWinnerPoints(round); got != points {
			t.Fatalf("RoundWinnerPoints(%s) = %d, want %d", round, got, points)
		}
		if got := RoundMaxPoints(round); got != points+5 {
			t.Fatalf("RoundMaxPoints(%s) = %d, want %d", round, got, points+5)
		}
	}
}

func TestValidatePick(t *testing.T) {
	t.Parallel()

	game := Game{ID: "wc-1", Round: RoundWildCard, AwayTeamID: "den", HomeTeamID: "buf"}

	ok := Pick{GameID: "wc-1", Round: RoundWildCard, PickedWinnerID: "buf", PredictedMargin: 7}
	if err := ValidatePick(game, ok); err != nil {
		t.Fatalf("valid pick rejected: %v", err)
	}

	bad := ok
	bad.PredictedMargin = 0
	if err := ValidatePick(game, bad); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("expected ErrInvalidMargin, got %v", err)
	}

	bad = ok
	bad.PickedWinnerID = "kc"
	if err := ValidatePick(game, bad); !errors.Is(err, ErrTeamNotInGame) {
		t.Fatalf("expected ErrTeamNotInGame, got %v", err)
	}

	unresolved := Game{ID: "super-bowl", Round: RoundSuperBowl,
		AwayTeamSource: &TeamSource{Round: RoundConference, GameNumber: 1, IsWinner: true}}
	if err := ValidatePick(unresolved, ok); !errors.Is(err, ErrGameUnresolved) {
		t.Fatalf("expected ErrGameUnresolved, got %v", err)
	}

	done := game
	done.IsComplete = true
	if err := ValidatePick(done, ok); !errors.Is(err, ErrGameAlreadyOver) {
		t.Fatalf("expected ErrGameAlreadyOver, got %v", err)
	}
}

func TestScoreMemberGradesOnlyNewCompletedGames(t *testing.T) {
	t.Parallel()

	hs, as := 30, 24
	games := []Game{
		{ID: "wc-1", Round: RoundWildCard, AwayTeamID: "den", HomeTeamID: "buf",
			IsComplete: true, WinnerID: "buf", HomeScore: &hs, AwayScore: &as},
		{ID: "wc-2", Round: RoundWildCard, AwayTeamID: "pit", HomeTeamID: "bal"},
	}
	m := Member{
		UserID: "u-1",
		Picks: []Pick{
			{GameID: "wc-1", Round: RoundWildCard, PickedWinnerID: "buf", PredictedMargin: 6},
			{GameID: "wc-2", Round: RoundWildCard, PickedWinnerID: "bal", PredictedMargin: 3},
		},
	}

	results := ScoreMember(m, games)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].GameID != "wc-1" || results[0].TotalPoints != 10 {
		t.Fatalf("unexpected result: %+v", results[0])
	}

	// A second pass grades nothing new.
	m.Results = results
	if again := ScoreMember(m, games); len(again) != 0 {
		t.Fatalf("regrade must be a no-op, got %d results", len(again))
	}
}

func TestStageComplete(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "wc-1", Round: RoundWildCard},
		{ID: "wc-2", Round: RoundWildCard},
		{ID: "div-1", Round: RoundDivisional},
		{ID: "conf-1", Round: RoundConference},
		{ID: "super-bowl", Round: RoundSuperBowl},
	}

	partial := []Pick{{GameID: "wc-1", PickedWinnerID: "buf", PredictedMargin: 3}}
	if StageComplete(StageOne, partial, games) {
		t.Fatalf("stage one should be incomplete with one of two picks")
	}

	full := append(partial, Pick{GameID: "wc-2", PickedWinnerID: "bal", PredictedMargin: 1})
	if !StageComplete(StageOne, full, games) {
		t.Fatalf("stage one should be complete")
	}

	// A zero margin keeps the stage a draft.
	draft := append(partial, Pick{GameID: "wc-2", PickedWinnerID: "bal", PredictedMargin: 0})
	if StageComplete(StageOne, draft, games) {
		t.Fatalf("zero margin pick must not complete a stage")
	}

	stage2 := []Pick{
		{GameID: "div-1", PickedWinnerID: "kc", PredictedMargin: 7},
		{GameID: "conf-1", PickedWinnerID: "kc", PredictedMargin: 4},
		{GameID: "super-bowl", PickedWinnerID: "kc", PredictedMargin: 2},
	}
	if !StageComplete(StageTwo, stage2, games) {
		t.Fatalf("stage two should be complete")
	}
	if StageComplete(StageTwo, stage2[:2], games) {
		t.Fatalf("stage two missing the super bowl must be incomplete")
	}
}
