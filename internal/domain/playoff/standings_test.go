package playoff

import "testing"

func TestStandingsRankingAndTieBreak(t *testing.T) {
	t.Parallel()

	games := []Game{
		{ID: "wc-1", Round: RoundWildCard, IsComplete: true, WinnerID: "buf"},
		{ID: "div-1", Round: RoundDivisional},
	}

	members := []Member{
		{
			UserID: "u-behind",
			Results: []Result{{GameID: "wc-1", TotalPoints: 4}},
		},
		{
			UserID:  "u-leader",
			Results: []Result{{GameID: "wc-1", TotalPoints: 9}},
		},
		{
			// Tied with u-tied-live on total, but holds a live divisional
			// pick worth up to 12 more.
			UserID:  "u-tied-live",
			Results: []Result{{GameID: "wc-1", TotalPoints: 9}},
			Picks:   []Pick{{GameID: "div-1", Round: RoundDivisional, PickedWinnerID: "kc", PredictedMargin: 3}},
		},
	}

	rows := Standings(members, games)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].UserID != "u-tied-live" {
		t.Fatalf("tie break should favor the live bracket: %+v", rows)
	}
	if rows[0].PossiblePoints != 21 {
		t.Fatalf("possible points = %d, want 21 (9 + 12 divisional max)", rows[0].PossiblePoints)
	}

	// Competition ranking: equal totals share a rank, the next total skips.
	if rows[0].Rank != 1 || rows[1].Rank != 1 || rows[2].Rank != 3 {
		t.Fatalf("ranks = %d,%d,%d, want 1,1,3", rows[0].Rank, rows[1].Rank, rows[2].Rank)
	}
}

func TestStandingsGradedPicksAddNoPossiblePoints(t *testing.T) {
	t.Parallel()

	games := []Game{{ID: "wc-1", Round: RoundWildCard, IsComplete: true, WinnerID: "buf"}}
	members := []Member{{
		UserID:  "u-1",
		Picks:   []Pick{{GameID: "wc-1", Round: RoundWildCard, PickedWinnerID: "buf", PredictedMargin: 3}},
		Results: []Result{{GameID: "wc-1", TotalPoints: 8}},
	}}

	rows := Standings(members, games)
	if rows[0].TotalPoints != 8 || rows[0].PossiblePoints != 8 {
		t.Fatalf("graded pick must not inflate possible points: %+v", rows[0])
	}
}
