package usecase

import (
	"testing"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/schedule/static"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
)

func seedAutoPickService(t *testing.T) (*AutoPickService, *memory.SeriesRepository) {
	t.Helper()

	repo := memory.NewSeriesRepository()
	for _, s := range memory.SeedSeries() {
		if err := repo.Create(t.Context(), s); err != nil {
			t.Fatalf("seed series: %v", err)
		}
	}
	return NewAutoPickService(repo, static.NewProvider(), logging.NewNop()), repo
}

func TestAutoPickService_Sweep_AssignsFavorites(t *testing.T) {
	svc, repo := seedAutoPickService(t)

	result, err := svc.Sweep(t.Context(), AutoPickSweepInput{SeriesID: memory.SeriesIDOfficePool})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.AssignedCount != 2 {
		t.Fatalf("assigned = %d, want 2: %+v", result.AssignedCount, result.Tasks)
	}

	got, _, err := repo.GetByID(t.Context(), memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("get series: %v", err)
	}

	// Strongest favorite is kc at -13; the member who already burned kc
	// falls through to det at -10.5.
	first, _ := got.MemberByID("member-demo-1")
	if pick, ok := first.PickAt(13); !ok || pick.TeamID != "kc" || !pick.IsAutoPick {
		t.Fatalf("member-demo-1 pick = %+v, want auto kc", pick)
	}
	second, _ := got.MemberByID("member-demo-2")
	if pick, ok := second.PickAt(13); !ok || pick.TeamID != "det" || !pick.IsAutoPick {
		t.Fatalf("member-demo-2 pick = %+v, want auto det", pick)
	}
}

func TestAutoPickService_Sweep_SkipsMembersWithPicks(t *testing.T) {
	svc, repo := seedAutoPickService(t)

	if _, err := svc.Sweep(t.Context(), AutoPickSweepInput{SeriesID: memory.SeriesIDOfficePool}); err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	rerun, err := svc.Sweep(t.Context(), AutoPickSweepInput{SeriesID: memory.SeriesIDOfficePool})
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if rerun.AssignedCount != 0 || rerun.MemberCount != 0 {
		t.Fatalf("rerun should find nothing to assign, got %+v", rerun)
	}

	got, _, err := repo.GetByID(t.Context(), memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	member, _ := got.MemberByID("member-demo-1")
	picks := 0
	for _, p := range member.Picks {
		if p.Week == 13 {
			picks++
		}
	}
	if picks != 1 {
		t.Fatalf("expected exactly one week 13 pick after rerun, got %d", picks)
	}
}

func TestAutoPickService_Sweep_DryRun(t *testing.T) {
	svc, repo := seedAutoPickService(t)

	result, err := svc.Sweep(t.Context(), AutoPickSweepInput{
		SeriesID: memory.SeriesIDOfficePool,
		DryRun:   true,
	})
	if err != nil {
		t.Fatalf("dry run sweep failed: %v", err)
	}
	if result.AssignedCount != 0 || result.SkippedCount != 2 {
		t.Fatalf("dry run should only skip, got %+v", result)
	}

	got, _, err := repo.GetByID(t.Context(), memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	member, _ := got.MemberByID("member-demo-1")
	if _, ok := member.PickAt(13); ok {
		t.Fatalf("dry run must not write picks")
	}
}

func TestAutoPickService_Sweep_FailsMemberWithNoTeamLeft(t *testing.T) {
	svc, repo := seedAutoPickService(t)

	week, err := static.NewProvider().WeekSchedule(t.Context(), schedule.SportNFL, 13)
	if err != nil {
		t.Fatalf("week schedule: %v", err)
	}

	// Burn every team on the slate in earlier weeks so nothing is eligible.
	joined := time.Date(2024, time.September, 2, 12, 0, 0, 0, time.UTC)
	var picks []series.Pick
	seen := map[string]bool{}
	next := 20
	for _, g := range week.Games {
		for _, team := range []string{g.HomeTeamID, g.AwayTeamID} {
			if seen[team] {
				continue
			}
			seen[team] = true
			picks = append(picks, series.Pick{Week: next, TeamID: team, Result: series.PickWin, PickedAt: joined})
			next++
		}
	}

	exhausted := series.Series{
		ID:          "exhausted-pool",
		Name:        "Exhausted Pool",
		CreatedBy:   "user-demo-9",
		CreatedAt:   joined,
		Sport:       schedule.SportNFL,
		Competition: "NFL",
		GameType:    series.GameTypeSurvivor,
		Season:      2024,
		CurrentWeek: 13,
		IsActive:    true,
		Settings:    series.DefaultSettings(),
		Members: []series.Member{{
			ID: "member-demo-9", UserID: "user-demo-9", UserName: "Alex",
			Role: series.RoleAdmin, Entry: 1, LivesRemaining: 1, JoinedAt: joined,
			Picks: picks,
		}},
	}
	if err := repo.Create(t.Context(), exhausted); err != nil {
		t.Fatalf("create series: %v", err)
	}

	result, err := svc.Sweep(t.Context(), AutoPickSweepInput{SeriesID: "exhausted-pool"})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.FailedCount != 1 || result.SkippedCount != 0 {
		t.Fatalf("failed = %d, skipped = %d, want 1 and 0: %+v", result.FailedCount, result.SkippedCount, result.Tasks)
	}
	if result.Tasks[0].Status != autoPickStatusFailed {
		t.Fatalf("task status = %s, want failed", result.Tasks[0].Status)
	}

	got, _, err := repo.GetByID(t.Context(), "exhausted-pool")
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	member, _ := got.MemberByID("member-demo-9")
	if _, ok := member.PickAt(13); ok {
		t.Fatalf("no pick should be written when nothing is eligible")
	}
}

func TestAutoPickService_Sweep_AllActiveSurvivorSeries(t *testing.T) {
	svc, _ := seedAutoPickService(t)

	result, err := svc.Sweep(t.Context(), AutoPickSweepInput{})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	// The playoff pool series is skipped entirely.
	if result.SeriesCount != 1 {
		t.Fatalf("series count = %d, want 1", result.SeriesCount)
	}
}
