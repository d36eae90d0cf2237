package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/schedule/static"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
)

func seedResultService(t *testing.T) (*ResultService, *memory.SeriesRepository) {
	t.Helper()

	repo := memory.NewSeriesRepository()
	for _, s := range memory.SeedSeries() {
		if err := repo.Create(t.Context(), s); err != nil {
			t.Fatalf("seed series: %v", err)
		}
	}

	now := time.Now().UTC()
	picks := map[string]series.Pick{
		"member-demo-1": {Week: 13, TeamID: "kc", Result: series.PickPending, PickedAt: now},
		"member-demo-2": {Week: 13, TeamID: "dal", Result: series.PickPending, PickedAt: now},
	}
	for memberID, pick := range picks {
		if err := repo.UpsertPick(t.Context(), memory.SeriesIDOfficePool, memberID, pick); err != nil {
			t.Fatalf("seed pick: %v", err)
		}
	}

	return NewResultService(repo, static.NewProvider(), logging.NewNop()), repo
}

func TestResultService_ReportWeekResults(t *testing.T) {
	svc, repo := seedResultService(t)

	summary, err := svc.ReportWeekResults(t.Context(), ReportWeekResultsInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		Week:     13,
		Outcomes: map[string]survivor.Outcome{
			"kc":  survivor.OutcomeWin,
			"dal": survivor.OutcomeLoss,
		},
	})
	if err != nil {
		t.Fatalf("report results failed: %v", err)
	}
	if summary.Graded != 2 {
		t.Fatalf("graded = %d, want 2", summary.Graded)
	}
	if summary.Eliminated != 1 {
		t.Fatalf("eliminated = %d, want 1", summary.Eliminated)
	}

	got, _, err := repo.GetByID(t.Context(), memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	winner, _ := got.MemberByID("member-demo-1")
	if winner.LivesRemaining != 2 || winner.IsEliminated {
		t.Fatalf("winner should keep both lives, got %+v", winner)
	}
	loser, _ := got.MemberByID("member-demo-2")
	if loser.LivesRemaining != 0 || !loser.IsEliminated {
		t.Fatalf("loser with one life should be eliminated, got %+v", loser)
	}
	if pick, _ := loser.PickAt(13); pick.Result != series.PickLoss {
		t.Fatalf("pick result = %s, want loss", pick.Result)
	}
}

func TestResultService_ReportWeekResults_Idempotent(t *testing.T) {
	svc, _ := seedResultService(t)

	outcomes := map[string]survivor.Outcome{
		"kc":  survivor.OutcomeWin,
		"dal": survivor.OutcomeLoss,
	}
	input := ReportWeekResultsInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		Week:     13,
		Outcomes: outcomes,
	}

	if _, err := svc.ReportWeekResults(t.Context(), input); err != nil {
		t.Fatalf("first report: %v", err)
	}
	replay, err := svc.ReportWeekResults(t.Context(), input)
	if err != nil {
		t.Fatalf("replay report: %v", err)
	}
	if replay.Graded != 0 {
		t.Fatalf("replay should grade nothing, got %d", replay.Graded)
	}
}

func TestResultService_ReportWeekResults_RequiresAdmin(t *testing.T) {
	svc, _ := seedResultService(t)

	_, err := svc.ReportWeekResults(t.Context(), ReportWeekResultsInput{
		UserID:   "user-demo-2",
		SeriesID: memory.SeriesIDOfficePool,
		Week:     13,
		Outcomes: map[string]survivor.Outcome{"kc": survivor.OutcomeWin},
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestResultService_ReportWeekResults_RejectsUnknownOutcome(t *testing.T) {
	svc, _ := seedResultService(t)

	_, err := svc.ReportWeekResults(t.Context(), ReportWeekResultsInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		Week:     13,
		Outcomes: map[string]survivor.Outcome{"kc": "draw"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
