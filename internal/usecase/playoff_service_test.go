package usecase

import (
	"errors"
	"testing"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
	"github.com/pickemhq/survivor-pool/internal/infrastructure/repository/memory"
)

func playoffTestSeeding() playoff.Seeding {
	return playoff.Seeding{
		AFC: playoff.ConferenceSeeding{"kc", "buf", "bal", "hou", "lac", "pit", "den"},
		NFC: playoff.ConferenceSeeding{"det", "phi", "lar", "tb", "min", "was", "gb"},
	}
}

func seedPlayoffService(t *testing.T) (*PlayoffService, playoff.Pool) {
	t.Helper()

	seriesRepo := memory.NewSeriesRepository()
	for _, s := range memory.SeedSeries() {
		if err := seriesRepo.Create(t.Context(), s); err != nil {
			t.Fatalf("seed series: %v", err)
		}
	}
	svc := NewPlayoffService(seriesRepo, memory.NewPlayoffRepository())

	pool, err := svc.CreatePool(t.Context(), CreatePlayoffPoolInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Seeding:  playoffTestSeeding(),
	})
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	return svc, pool
}

func TestPlayoffService_CreatePool(t *testing.T) {
	svc, pool := seedPlayoffService(t)

	// 6 wild card + 4 divisional + 2 conference + super bowl.
	if len(pool.Games) != 13 {
		t.Fatalf("game count = %d, want 13", len(pool.Games))
	}
	wc, ok := pool.GameByID("wc-1")
	if !ok || wc.AwayTeamID != "den" || wc.HomeTeamID != "buf" {
		t.Fatalf("wc-1 = %+v, want den at buf", wc)
	}
	div, ok := pool.GameByID("div-1")
	if !ok || div.IsResolved() {
		t.Fatalf("divisional slots must start unresolved, got %+v", div)
	}

	_, err := svc.CreatePool(t.Context(), CreatePlayoffPoolInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Seeding:  playoffTestSeeding(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("reseeding an existing bracket should fail, got %v", err)
	}
}

func TestPlayoffService_SubmitPicks_StageGating(t *testing.T) {
	svc, pool := seedPlayoffService(t)

	partial, err := svc.SubmitPicks(t.Context(), SubmitPlayoffPicksInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Stage:    playoff.StageOne,
		Picks: []playoff.Pick{
			{GameID: "wc-1", PickedWinnerID: "buf", PredictedMargin: 7},
		},
	})
	if err != nil {
		t.Fatalf("partial submit failed: %v", err)
	}
	if partial {
		t.Fatalf("one pick of six should not complete stage one")
	}

	var rest []playoff.Pick
	for _, id := range []string{"wc-2", "wc-3", "wc-4", "wc-5", "wc-6"} {
		g, _ := pool.GameByID(id)
		rest = append(rest, playoff.Pick{GameID: id, PickedWinnerID: g.HomeTeamID, PredictedMargin: 3})
	}
	complete, err := svc.SubmitPicks(t.Context(), SubmitPlayoffPicksInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Stage:    playoff.StageOne,
		Picks:    rest,
	})
	if err != nil {
		t.Fatalf("full submit failed: %v", err)
	}
	if !complete {
		t.Fatalf("six picks should complete stage one")
	}

	// Stage two games have no participants yet.
	_, err = svc.SubmitPicks(t.Context(), SubmitPlayoffPicksInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Stage:    playoff.StageTwo,
		Picks: []playoff.Pick{
			{GameID: "div-1", PickedWinnerID: "kc", PredictedMargin: 3},
		},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("picking an unresolved game should fail, got %v", err)
	}
}

func TestPlayoffService_ReportGameResult_ReseedsDivisional(t *testing.T) {
	svc, _ := seedPlayoffService(t)

	// Home team wins every wild card game.
	finals := map[string][2]int{
		"wc-1": {27, 20}, "wc-2": {24, 17}, "wc-3": {30, 13},
		"wc-4": {28, 21}, "wc-5": {31, 10}, "wc-6": {23, 16},
	}
	for _, id := range []string{"wc-1", "wc-2", "wc-3", "wc-4", "wc-5", "wc-6"} {
		score := finals[id]
		if _, err := svc.ReportGameResult(t.Context(), ReportPlayoffGameInput{
			UserID:    "user-demo-1",
			SeriesID:  memory.SeriesIDPlayoffsPool,
			GameID:    id,
			HomeScore: score[0],
			AwayScore: score[1],
		}); err != nil {
			t.Fatalf("report %s: %v", id, err)
		}
	}

	pool, err := svc.GetPool(t.Context(), "user-demo-1", memory.SeriesIDPlayoffsPool)
	if err != nil {
		t.Fatalf("get pool: %v", err)
	}

	// AFC survivors buf, bal, hou reseed around kc: lowest seed visits the
	// top seed, the other two pair with the higher seed at home.
	assertMatchup := func(id, away, home string) {
		t.Helper()
		g, ok := pool.GameByID(id)
		if !ok {
			t.Fatalf("game %s missing", id)
		}
		if g.AwayTeamID != away || g.HomeTeamID != home {
			t.Fatalf("%s = %s at %s, want %s at %s", id, g.AwayTeamID, g.HomeTeamID, away, home)
		}
	}
	assertMatchup("div-1", "hou", "kc")
	assertMatchup("div-2", "bal", "buf")
	assertMatchup("div-3", "tb", "det")
	assertMatchup("div-4", "lar", "phi")
}

func TestPlayoffService_ReportGameResult_GradesPicks(t *testing.T) {
	svc, _ := seedPlayoffService(t)

	if _, err := svc.SubmitPicks(t.Context(), SubmitPlayoffPicksInput{
		UserID:   "user-demo-1",
		SeriesID: memory.SeriesIDPlayoffsPool,
		Stage:    playoff.StageOne,
		Picks: []playoff.Pick{
			{GameID: "wc-1", PickedWinnerID: "buf", PredictedMargin: 7},
		},
	}); err != nil {
		t.Fatalf("submit pick: %v", err)
	}

	if _, err := svc.ReportGameResult(t.Context(), ReportPlayoffGameInput{
		UserID:    "user-demo-1",
		SeriesID:  memory.SeriesIDPlayoffsPool,
		GameID:    "wc-1",
		HomeScore: 27,
		AwayScore: 22,
	}); err != nil {
		t.Fatalf("report result: %v", err)
	}

	rows, err := svc.Standings(t.Context(), "user-demo-1", memory.SeriesIDPlayoffsPool)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	// Correct winner at 5, margin off by two scores 5-2=3.
	if rows[0].TotalPoints != 8 {
		t.Fatalf("points = %d, want 8", rows[0].TotalPoints)
	}
	if rows[0].Rank != 1 {
		t.Fatalf("rank = %d, want 1", rows[0].Rank)
	}
}

func TestPlayoffService_ReportGameResult_RejectsTies(t *testing.T) {
	svc, _ := seedPlayoffService(t)

	_, err := svc.ReportGameResult(t.Context(), ReportPlayoffGameInput{
		UserID:    "user-demo-1",
		SeriesID:  memory.SeriesIDPlayoffsPool,
		GameID:    "wc-1",
		HomeScore: 21,
		AwayScore: 21,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a tie, got %v", err)
	}
}

func TestPlayoffService_JoinPool(t *testing.T) {
	svc, _ := seedPlayoffService(t)

	member, err := svc.JoinPool(t.Context(), "user-demo-2", "Riley", "", memory.SeriesIDPlayoffsPool)
	if err != nil {
		t.Fatalf("join pool: %v", err)
	}
	if member.UserID != "user-demo-2" {
		t.Fatalf("unexpected member: %+v", member)
	}

	_, err = svc.JoinPool(t.Context(), "user-demo-2", "Riley", "", memory.SeriesIDPlayoffsPool)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("double join should fail, got %v", err)
	}
}
