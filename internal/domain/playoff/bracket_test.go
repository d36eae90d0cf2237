package playoff

import "testing"

func testSeeding() Seeding {
	return Seeding{
		AFC: ConferenceSeeding{"kc", "buf", "bal", "hou", "lac", "pit", "den"},
		NFC: ConferenceSeeding{"det", "phi", "lar", "tb", "min", "was", "gb"},
	}
}

func TestGenerateWildCardGames(t *testing.T) {
	t.Parallel()

	games := GenerateWildCardGames(testSeeding())
	if len(games) != 6 {
		t.Fatalf("expected 6 wild card games, got %d", len(games))
	}

	want := []struct {
		away, home string
		conf       Conference
	}{
		{"den", "buf", ConferenceAFC},
		{"pit", "bal", ConferenceAFC},
		{"lac", "hou", ConferenceAFC},
		{"gb", "phi", ConferenceNFC},
		{"was", "lar", ConferenceNFC},
		{"min", "tb", ConferenceNFC},
	}
	for i, w := range want {
		g := games[i]
		if g.AwayTeamID != w.away || g.HomeTeamID != w.home || g.Conference != w.conf {
			t.Fatalf("game %d = %s@%s (%s), want %s@%s (%s)",
				i+1, g.AwayTeamID, g.HomeTeamID, g.Conference, w.away, w.home, w.conf)
		}
		if g.Round != RoundWildCard || g.GameNumber != i+1 {
			t.Fatalf("game %d round/number wrong: %+v", i+1, g)
		}
		if g.IsComplete {
			t.Fatalf("generated game must not be complete: %+v", g)
		}
	}
}

func TestGenerateDivisionalGamesReseeds(t *testing.T) {
	t.Parallel()

	// AFC survivors: #1 kc (bye), #2 buf, #4 hou, #6 pit.
	// NFC survivors: #1 det (bye), #3 lar, #5 min, #7 gb.
	games, err := GenerateDivisionalGames(testSeeding(), WildCardWinners{
		AFC: []string{"pit", "buf", "hou"},
		NFC: []string{"gb", "min", "lar"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 4 {
		t.Fatalf("expected 4 divisional games, got %d", len(games))
	}

	// #1 hosts the lowest remaining seed; the other two pair off with the
	// higher seed at home.
	if games[0].AwayTeamID != "pit" || games[0].HomeTeamID != "kc" {
		t.Fatalf("afc game 1 = %s@%s, want pit@kc", games[0].AwayTeamID, games[0].HomeTeamID)
	}
	if games[1].AwayTeamID != "hou" || games[1].HomeTeamID != "buf" {
		t.Fatalf("afc game 2 = %s@%s, want hou@buf", games[1].AwayTeamID, games[1].HomeTeamID)
	}
	if games[2].AwayTeamID != "gb" || games[2].HomeTeamID != "det" {
		t.Fatalf("nfc game 3 = %s@%s, want gb@det", games[2].AwayTeamID, games[2].HomeTeamID)
	}
	if games[3].AwayTeamID != "min" || games[3].HomeTeamID != "lar" {
		t.Fatalf("nfc game 4 = %s@%s, want min@lar", games[3].AwayTeamID, games[3].HomeTeamID)
	}
}

func TestGenerateDivisionalGamesWrongWinnerCount(t *testing.T) {
	t.Parallel()

	if _, err := GenerateDivisionalGames(testSeeding(), WildCardWinners{AFC: []string{"buf"}, NFC: []string{"phi", "lar", "tb"}}); err == nil {
		t.Fatalf("expected error for short winner list")
	}
}

func TestGenerateConferenceGames(t *testing.T) {
	t.Parallel()

	games, err := GenerateConferenceGames(testSeeding(), DivisionalWinners{
		AFC: []string{"hou", "kc"},
		NFC: []string{"det", "gb"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if games[0].AwayTeamID != "hou" || games[0].HomeTeamID != "kc" {
		t.Fatalf("afc title game = %s@%s, want hou@kc", games[0].AwayTeamID, games[0].HomeTeamID)
	}
	if games[1].AwayTeamID != "gb" || games[1].HomeTeamID != "det" {
		t.Fatalf("nfc title game = %s@%s, want gb@det", games[1].AwayTeamID, games[1].HomeTeamID)
	}
}

func TestGenerateSuperBowlAFCIsAway(t *testing.T) {
	t.Parallel()

	g := GenerateSuperBowl("kc", "det")
	if g.AwayTeamID != "kc" || g.HomeTeamID != "det" {
		t.Fatalf("super bowl = %s@%s, want kc@det", g.AwayTeamID, g.HomeTeamID)
	}
	if g.Round != RoundSuperBowl || g.Conference != ConferenceSuperBowl {
		t.Fatalf("unexpected super bowl game: %+v", g)
	}
}

func TestAdvanceBracketResolvesChains(t *testing.T) {
	t.Parallel()

	hs, as := 27, 20
	games := append([]Game{
		{ID: "div-1", Round: RoundDivisional, GameNumber: 1,
			AwayTeamID: "pit", HomeTeamID: "kc", IsComplete: true, WinnerID: "kc", HomeScore: &hs, AwayScore: &as},
		{ID: "div-2", Round: RoundDivisional, GameNumber: 2,
			AwayTeamID: "hou", HomeTeamID: "buf", IsComplete: true, WinnerID: "buf", HomeScore: &hs, AwayScore: &as},
	}, PendingStageTwoGames()...)

	advanced := AdvanceBracket(games)

	var conf1 Game
	for _, g := range advanced {
		if g.ID == "conf-1" {
			conf1 = g
		}
	}
	if conf1.HomeTeamID != "kc" || conf1.AwayTeamID != "buf" {
		t.Fatalf("conference game = %s@%s, want buf@kc", conf1.AwayTeamID, conf1.HomeTeamID)
	}

	// Unfinished feeders leave the super bowl unresolved.
	for _, g := range advanced {
		if g.ID == "super-bowl" && g.IsResolved() {
			t.Fatalf("super bowl should stay unresolved: %+v", g)
		}
	}

	// Input slice stays untouched.
	for _, g := range games {
		if g.ID == "conf-1" && g.HomeTeamID != "" {
			t.Fatalf("AdvanceBracket mutated its input")
		}
	}
}

func TestSeedingValidate(t *testing.T) {
	t.Parallel()

	if err := testSeeding().Validate(); err != nil {
		t.Fatalf("valid seeding rejected: %v", err)
	}

	bad := testSeeding()
	bad.AFC[3] = ""
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for empty seed")
	}

	bad = testSeeding()
	bad.NFC[6] = bad.NFC[0]
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for duplicate seed")
	}
}
