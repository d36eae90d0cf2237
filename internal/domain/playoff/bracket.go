package playoff

import (
	"fmt"
	"sort"
)

// GenerateWildCardGames builds the six wild card games: 7@2, 6@3, 5@4 in
// each conference. The #1 seeds sit the round out. Game numbers run 1-3
// for the AFC and 4-6 for the NFC.
func GenerateWildCardGames(seeding Seeding) []Game {
	games := make([]Game, 0, 6)
	for i, conf := range []struct {
		name  Conference
		seeds ConferenceSeeding
	}{
		{ConferenceAFC, seeding.AFC},
		{ConferenceNFC, seeding.NFC},
	} {
		base := i * 3
		for j, pair := range [][2]int{{7, 2}, {6, 3}, {5, 4}} {
			n := base + j + 1
			games = append(games, Game{
				ID:         fmt.Sprintf("wc-%d", n),
				Round:      RoundWildCard,
				Conference: conf.name,
				GameNumber: n,
				AwayTeamID: conf.seeds[pair[0]-1],
				HomeTeamID: conf.seeds[pair[1]-1],
			})
		}
	}
	return games
}

// WildCardWinners holds the surviving wild card teams per conference.
type WildCardWinners struct {
	AFC []string
	NFC []string
}

// GenerateDivisionalGames reseeds after wild card weekend: the #1 seed
// hosts the lowest remaining seed, the other two survivors pair off with
// the higher seed at home. Game numbers 1-2 AFC, 3-4 NFC.
func GenerateDivisionalGames(seeding Seeding, winners WildCardWinners) ([]Game, error) {
	if len(winners.AFC) != 3 || len(winners.NFC) != 3 {
		return nil, fmt.Errorf("divisional round needs 3 wild card winners per conference, got afc=%d nfc=%d",
			len(winners.AFC), len(winners.NFC))
	}

	games := make([]Game, 0, 4)
	for i, conf := range []struct {
		name    Conference
		seeds   ConferenceSeeding
		winners []string
	}{
		{ConferenceAFC, seeding.AFC, winners.AFC},
		{ConferenceNFC, seeding.NFC, winners.NFC},
	} {
		teams := append([]string{conf.seeds[0]}, conf.winners...)
		sort.SliceStable(teams, func(a, b int) bool {
			return conf.seeds.SeedOf(teams[a]) < conf.seeds.SeedOf(teams[b])
		})

		base := i * 2
		games = append(games,
			Game{
				ID:         fmt.Sprintf("div-%d", base+1),
				Round:      RoundDivisional,
				Conference: conf.name,
				GameNumber: base + 1,
				AwayTeamID: teams[3],
				HomeTeamID: teams[0],
			},
			Game{
				ID:         fmt.Sprintf("div-%d", base+2),
				Round:      RoundDivisional,
				Conference: conf.name,
				GameNumber: base + 2,
				AwayTeamID: teams[2],
				HomeTeamID: teams[1],
			},
		)
	}
	return games, nil
}

// DivisionalWinners holds the surviving divisional teams per conference.
type DivisionalWinners struct {
	AFC []string
	NFC []string
}

// GenerateConferenceGames builds the two championship games, higher seed
// at home. Game 1 is the AFC title game, game 2 the NFC.
func GenerateConferenceGames(seeding Seeding, winners DivisionalWinners) ([]Game, error) {
	if len(winners.AFC) != 2 || len(winners.NFC) != 2 {
		return nil, fmt.Errorf("conference round needs 2 divisional winners per conference, got afc=%d nfc=%d",
			len(winners.AFC), len(winners.NFC))
	}

	games := make([]Game, 0, 2)
	for i, conf := range []struct {
		name    Conference
		seeds   ConferenceSeeding
		winners []string
	}{
		{ConferenceAFC, seeding.AFC, winners.AFC},
		{ConferenceNFC, seeding.NFC, winners.NFC},
	} {
		home, away := conf.winners[0], conf.winners[1]
		if conf.seeds.SeedOf(away) < conf.seeds.SeedOf(home) {
			home, away = away, home
		}
		games = append(games, Game{
			ID:         fmt.Sprintf("conf-%d", i+1),
			Round:      RoundConference,
			Conference: conf.name,
			GameNumber: i + 1,
			AwayTeamID: away,
			HomeTeamID: home,
		})
	}
	return games, nil
}

// GenerateSuperBowl builds the final with the AFC champion designated away.
func GenerateSuperBowl(afcChampion, nfcChampion string) Game {
	return Game{
		ID:         "super-bowl",
		Round:      RoundSuperBowl,
		Conference: ConferenceSuperBowl,
		GameNumber: 1,
		AwayTeamID: afcChampion,
		HomeTeamID: nfcChampion,
	}
}

// PendingStageTwoGames builds the stage-two slots before wild card weekend
// finishes, with every participant deferred through a TeamSource. This lets
// a pool open stage-two picks the moment its feeder games resolve.
func PendingStageTwoGames() []Game {
	src := func(round Round, n int) *TeamSource {
		return &TeamSource{Round: round, GameNumber: n, IsWinner: true}
	}
	return []Game{
		{ID: "conf-1", Round: RoundConference, Conference: ConferenceAFC, GameNumber: 1,
			AwayTeamSource: src(RoundDivisional, 2), HomeTeamSource: src(RoundDivisional, 1)},
		{ID: "conf-2", Round: RoundConference, Conference: ConferenceNFC, GameNumber: 2,
			AwayTeamSource: src(RoundDivisional, 4), HomeTeamSource: src(RoundDivisional, 3)},
		{ID: "super-bowl", Round: RoundSuperBowl, Conference: ConferenceSuperBowl, GameNumber: 1,
			AwayTeamSource: src(RoundConference, 1), HomeTeamSource: src(RoundConference, 2)},
	}
}

// AdvanceBracket fills TBD participants whose source games have completed.
// It returns a new slice; the input is not mutated. Resolution is repeated
// until a full pass changes nothing, so a chain of completed feeders
// resolves in one call.
func AdvanceBracket(games []Game) []Game {
	out := make([]Game, len(games))
	copy(out, games)

	find := func(round Round, number int) (Game, bool) {
		for _, g := range out {
			if g.Round == round && g.GameNumber == number {
				return g, true
			}
		}
		return Game{}, false
	}
	resolve := func(src *TeamSource) (string, bool) {
		if src == nil {
			return "", false
		}
		feeder, ok := find(src.Round, src.GameNumber)
		if !ok || !feeder.IsComplete || feeder.WinnerID == "" {
			return "", false
		}
		if src.IsWinner {
			return feeder.WinnerID, true
		}
		if feeder.WinnerID == feeder.HomeTeamID {
			return feeder.AwayTeamID, true
		}
		return feeder.HomeTeamID, true
	}

	for changed := true; changed; {
		changed = false
		for i := range out {
			if out[i].AwayTeamID == "" {
				if team, ok := resolve(out[i].AwayTeamSource); ok {
					out[i].AwayTeamID = team
					changed = true
				}
			}
			if out[i].HomeTeamID == "" {
				if team, ok := resolve(out[i].HomeTeamSource); ok {
					out[i].HomeTeamID = team
					changed = true
				}
			}
		}
	}
	return out
}

// GamesByRound filters a bracket down to one round, preserving order.
func GamesByRound(games []Game, round Round) []Game {
	var out []Game
	for _, g := range games {
		if g.Round == round {
			out = append(out, g)
		}
	}
	return out
}
