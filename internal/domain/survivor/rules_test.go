package survivor

import (
	"errors"
	"testing"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

func testWeek() schedule.Week {
	return schedule.Week{
		Sport:  schedule.SportNFL,
		Number: 13,
		Season: 2024,
		Games: []schedule.Game{
			{HomeTeamID: "dal", AwayTeamID: "nyg", HomeSpread: -4.5},
			{HomeTeamID: "det", AwayTeamID: "chi", HomeSpread: -10.5},
			{HomeTeamID: "kc", AwayTeamID: "lv", HomeSpread: -13},
			{HomeTeamID: "atl", AwayTeamID: "lac", HomeSpread: 1.5},
		},
		ByeTeams: []string{"sf", "den"},
	}
}

func testPickContext(now time.Time) PickContext {
	return PickContext{
		Settings: series.DefaultSettings(),
		Week:     13,
		Deadline: now.Add(time.Hour),
		Now:      now,
		Schedule: testWeek(),
	}
}

func TestValidatePickSuccess(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2}

	pick, err := ValidatePick(member, " DAL ", testPickContext(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.TeamID != "dal" || pick.Week != 13 {
		t.Fatalf("unexpected pick: %+v", pick)
	}
	if pick.Result != series.PickPending || pick.IsAutoPick {
		t.Fatalf("manual pick must be pending and not auto: %+v", pick)
	}
	if !pick.PickedAt.Equal(now) {
		t.Fatalf("picked at = %v, want %v", pick.PickedAt, now)
	}
}

func TestValidatePickEliminated(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, IsEliminated: true}

	if _, err := ValidatePick(member, "dal", testPickContext(now)); !errors.Is(err, ErrEliminated) {
		t.Fatalf("expected ErrEliminated, got %v", err)
	}
}

func TestValidatePickDeadlinePassed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2}

	pc := testPickContext(now)
	pc.Deadline = now
	if _, err := ValidatePick(member, "dal", pc); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed at the deadline instant, got %v", err)
	}
}

func TestValidatePickGradedPickImmutable(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{
		ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 13, TeamID: "det", Result: series.PickWin}},
	}

	if _, err := ValidatePick(member, "dal", testPickContext(now)); !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed for graded week, got %v", err)
	}
}

func TestValidatePickTeamAlreadyUsed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{
		ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 5, TeamID: "dal", Result: series.PickWin}},
	}

	if _, err := ValidatePick(member, "dal", testPickContext(now)); !errors.Is(err, ErrTeamAlreadyUsed) {
		t.Fatalf("expected ErrTeamAlreadyUsed, got %v", err)
	}
}

func TestValidatePickReplacementExcludesOwnWeek(t *testing.T) {
	t.Parallel()

	// Changing the current pending pick back to the same team must not count
	// the pick being replaced against the reuse limit.
	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{
		ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 13, TeamID: "dal", Result: series.PickPending}},
	}

	if _, err := ValidatePick(member, "dal", testPickContext(now)); err != nil {
		t.Fatalf("same-week replacement should pass: %v", err)
	}
}

func TestValidatePickTeamOnBye(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2}

	if _, err := ValidatePick(member, "sf", testPickContext(now)); !errors.Is(err, ErrTeamOnBye) {
		t.Fatalf("expected ErrTeamOnBye, got %v", err)
	}
	if _, err := ValidatePick(member, "zzz", testPickContext(now)); !errors.Is(err, ErrTeamOnBye) {
		t.Fatalf("expected ErrTeamOnBye for a team without a game, got %v", err)
	}
}

func TestSelectAutoPickStrongestFavorite(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2}

	pick, err := SelectAutoPick(member, testPickContext(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.TeamID != "kc" {
		t.Fatalf("auto pick = %s, want kc (-13)", pick.TeamID)
	}
	if !pick.IsAutoPick || pick.Result != series.PickPending {
		t.Fatalf("unexpected auto pick: %+v", pick)
	}
}

func TestSelectAutoPickSkipsUsedTeams(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	member := series.Member{
		ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 10, TeamID: "kc", Result: series.PickWin}},
	}

	pick, err := SelectAutoPick(member, testPickContext(now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.TeamID != "det" {
		t.Fatalf("auto pick = %s, want det (-10.5, next strongest)", pick.TeamID)
	}
}

func TestSelectAutoPickTieBreakIsScheduleOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	pc := testPickContext(now)
	pc.Schedule.Games = []schedule.Game{
		{HomeTeamID: "buf", AwayTeamID: "mia", HomeSpread: -7},
		{HomeTeamID: "phi", AwayTeamID: "was", HomeSpread: -7},
	}
	pc.Schedule.ByeTeams = nil
	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2}

	pick, err := SelectAutoPick(member, pc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pick.TeamID != "buf" {
		t.Fatalf("tie break = %s, want buf (earlier in schedule order)", pick.TeamID)
	}
}

func TestSelectAutoPickNoEligibleTeam(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	pc := testPickContext(now)
	pc.Schedule.Games = []schedule.Game{{HomeTeamID: "dal", AwayTeamID: "nyg", HomeSpread: -4.5}}
	member := series.Member{
		ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{
			{Week: 10, TeamID: "dal", Result: series.PickWin},
			{Week: 11, TeamID: "nyg", Result: series.PickWin},
		},
	}

	if _, err := SelectAutoPick(member, pc); !errors.Is(err, ErrNoEligibleAutoPick) {
		t.Fatalf("expected ErrNoEligibleAutoPick, got %v", err)
	}
}

func testSeries(members ...series.Member) series.Series {
	return series.Series{
		ID:          "s-1",
		Name:        "office pool",
		CreatedBy:   "u-1",
		Sport:       schedule.SportNFL,
		GameType:    series.GameTypeSurvivor,
		Season:      2024,
		CurrentWeek: 13,
		IsActive:    true,
		Settings:    series.DefaultSettings(),
		Members:     members,
	}
}

func TestApplyWeekResultWinAndLoss(t *testing.T) {
	t.Parallel()

	s := testSeries(
		series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
			Picks: []series.Pick{{Week: 13, TeamID: "dal", Result: series.PickPending}}},
		series.Member{ID: "m-2", UserID: "u-2", Entry: 1, LivesRemaining: 2,
			Picks: []series.Pick{{Week: 13, TeamID: "nyg", Result: series.PickPending}}},
	)

	updates := ApplyWeekResult(s, 13, map[string]Outcome{"dal": OutcomeWin, "nyg": OutcomeLoss})
	if len(updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(updates))
	}
	if updates[0].Result != series.PickWin || updates[0].LivesRemaining != 2 || updates[0].IsEliminated {
		t.Fatalf("winner update wrong: %+v", updates[0])
	}
	if updates[1].Result != series.PickLoss || updates[1].LivesRemaining != 1 || updates[1].IsEliminated {
		t.Fatalf("loser update wrong: %+v", updates[1])
	}
}

func TestApplyWeekResultEliminatesAtZeroLives(t *testing.T) {
	t.Parallel()

	s := testSeries(series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 1,
		Picks: []series.Pick{{Week: 13, TeamID: "nyg", Result: series.PickPending}}})

	updates := ApplyWeekResult(s, 13, map[string]Outcome{"nyg": OutcomeLoss})
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
	if updates[0].LivesRemaining != 0 || !updates[0].IsEliminated {
		t.Fatalf("expected elimination at zero lives: %+v", updates[0])
	}
}

func TestApplyWeekResultTieRespectsSettings(t *testing.T) {
	t.Parallel()

	member := series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 13, TeamID: "dal", Result: series.PickPending}}}

	s := testSeries(member)
	updates := ApplyWeekResult(s, 13, map[string]Outcome{"dal": OutcomeTie})
	if updates[0].Result != series.PickWin || updates[0].LivesRemaining != 2 {
		t.Fatalf("tie should count as win by default: %+v", updates[0])
	}

	s.Settings.TieCountsAsWin = false
	s.Settings.TieSet = true
	updates = ApplyWeekResult(s, 13, map[string]Outcome{"dal": OutcomeTie})
	if updates[0].Result != series.PickLoss || updates[0].LivesRemaining != 1 {
		t.Fatalf("tie should count as loss when configured: %+v", updates[0])
	}
}

func TestApplyWeekResultIdempotent(t *testing.T) {
	t.Parallel()

	// A pick graded by a previous pass stays untouched on replay.
	s := testSeries(series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 1,
		Picks: []series.Pick{{Week: 13, TeamID: "nyg", Result: series.PickLoss}}})

	if updates := ApplyWeekResult(s, 13, map[string]Outcome{"nyg": OutcomeLoss}); len(updates) != 0 {
		t.Fatalf("replay must be a no-op, got %d updates", len(updates))
	}
}

func TestApplyWeekResultSkipsUnreportedTeams(t *testing.T) {
	t.Parallel()

	s := testSeries(series.Member{ID: "m-1", UserID: "u-1", Entry: 1, LivesRemaining: 2,
		Picks: []series.Pick{{Week: 13, TeamID: "dal", Result: series.PickPending}}})

	if updates := ApplyWeekResult(s, 13, map[string]Outcome{"kc": OutcomeWin}); len(updates) != 0 {
		t.Fatalf("pick without a reported outcome must stay pending, got %d updates", len(updates))
	}
}
