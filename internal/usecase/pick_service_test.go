package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/memory"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/schedule/static"
	"github.com/pickemhq/survivor-pool/internal/platform/cache"
)

func seedPickService(t *testing.T) (*PickService, *memory.SeriesRepository) {
	t.Helper()

	repo := memory.NewSeriesRepository()
	for _, s := range memory.SeedSeries() {
		if err := repo.Create(t.Context(), s); err != nil {
			t.Fatalf("seed series: %v", err)
		}
	}
	svc := NewPickService(repo, static.NewProvider(), cache.NewStore(time.Minute))
	return svc, repo
}

func TestPickService_SubmitPick(t *testing.T) {
	svc, repo := seedPickService(t)

	pick, err := svc.SubmitPick(t.Context(), SubmitPickInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		MemberID: "member-demo-1",
		TeamID:   "KC",
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}
	if pick.TeamID != "kc" {
		t.Fatalf("team id should normalize to lowercase, got %s", pick.TeamID)
	}
	if pick.IsAutoPick {
		t.Fatalf("manual pick flagged as auto pick")
	}

	got, _, err := repo.GetByID(t.Context(), memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("get series: %v", err)
	}
	member, _ := got.MemberByID("member-demo-1")
	if _, ok := member.PickAt(13); !ok {
		t.Fatalf("pick was not persisted for week 13")
	}
}

func TestPickService_SubmitPick_RejectsReusedTeam(t *testing.T) {
	svc, _ := seedPickService(t)

	// det already won for this member in week 11.
	_, err := svc.SubmitPick(t.Context(), SubmitPickInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		MemberID: "member-demo-1",
		TeamID:   "det",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for reused team, got %v", err)
	}
	if !errors.Is(err, survivor.ErrTeamAlreadyUsed) {
		t.Fatalf("rule sentinel should survive wrapping, got %v", err)
	}
}

func TestPickService_SubmitPick_LastManStanding(t *testing.T) {
	svc, repo := seedPickService(t)

	createdAt := time.Date(2024, time.September, 2, 12, 0, 0, 0, time.UTC)
	lms := series.Series{
		ID:          "lms-pool",
		Name:        "One Life Pool",
		CreatedBy:   "user-demo-1",
		CreatedAt:   createdAt,
		Sport:       schedule.SportNFL,
		Competition: "NFL",
		GameType:    series.GameTypeLastManStanding,
		Season:      2024,
		CurrentWeek: 13,
		IsActive:    true,
		Settings:    series.DefaultSettings(),
		Members: []series.Member{{
			ID: "member-lms-1", UserID: "user-demo-1", UserName: "Dana",
			Role: series.RoleAdmin, Entry: 1, LivesRemaining: 1, JoinedAt: createdAt,
		}},
	}
	if err := repo.Create(t.Context(), lms); err != nil {
		t.Fatalf("create series: %v", err)
	}

	pick, err := svc.SubmitPick(t.Context(), SubmitPickInput{
		UserID:   "user-demo-1",
		SeriesID: "lms-pool",
		MemberID: "member-lms-1",
		TeamID:   "kc",
	})
	if err != nil {
		t.Fatalf("last man standing pick failed: %v", err)
	}
	if pick.TeamID != "kc" {
		t.Fatalf("pick = %+v, want kc", pick)
	}
}

func TestPickService_SubmitPick_OwnershipAndOnBehalf(t *testing.T) {
	svc, _ := seedPickService(t)

	_, err := svc.SubmitPick(t.Context(), SubmitPickInput{
		UserID:   "user-demo-2",
		SeriesID: memory.SeriesIDOfficePool,
		MemberID: "member-demo-1",
		TeamID:   "kc",
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign entry, got %v", err)
	}

	// The admin may submit for another member's entry.
	_, err = svc.SubmitPick(t.Context(), SubmitPickInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDOfficePool,
		MemberID: "member-demo-2",
		TeamID:   "dal",
		OnBehalf: true,
	})
	if err != nil {
		t.Fatalf("admin on-behalf pick failed: %v", err)
	}
}

func TestPickService_Status(t *testing.T) {
	svc, _ := seedPickService(t)

	statuses, err := svc.Status(t.Context(), "user-demo-2", memory.SeriesIDOfficePool)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("expected one entry, got %d", len(statuses))
	}

	st := statuses[0]
	if st.LivesRemaining != 1 {
		t.Fatalf("lives = %d, want 1", st.LivesRemaining)
	}
	if st.HasPickedThisWeek {
		t.Fatalf("no pick exists for the current week yet")
	}
	if len(st.UsedTeams) != 2 {
		t.Fatalf("used teams = %v, want 2 entries", st.UsedTeams)
	}
	if !st.CanPick {
		t.Fatalf("surviving member in an active series should be able to pick")
	}

	if _, err := svc.Status(t.Context(), "user-404", memory.SeriesIDOfficePool); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-member, got %v", err)
	}
}
