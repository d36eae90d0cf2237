package static

import (
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
)

// 2024 NFL bye weeks, lowercase team ids.
func nflByeWeeks2024() map[int][]string {
	return map[int][]string{
		5:  {"det", "lac"},
		6:  {"kc", "lar", "mia", "min"},
		7:  {"chi", "dal"},
		9:  {"cle", "gb", "lv", "sea"},
		10: {"bal", "cin", "jax", "nyj", "ten", "hou"},
		11: {"ari", "car", "nyg", "tb"},
		12: {"atl", "buf", "ind", "no"},
		13: {"den", "phi", "pit", "sf", "ne", "was"},
	}
}

func kickoff(day int, month time.Month, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, time.UTC)
}

// Reference NFL slate with lines. A configured odds feed replaces this.
func nflWeekGames() []schedule.Game {
	return []schedule.Game{
		{HomeTeamID: "dal", AwayTeamID: "nyg", KickoffAt: kickoff(28, time.November, 16, 30), HomeSpread: -4.5, OverUnder: 44.5, HomeMoneyline: -200, AwayMoneyline: 168},
		{HomeTeamID: "det", AwayTeamID: "chi", KickoffAt: kickoff(28, time.November, 12, 30), HomeSpread: -10.5, OverUnder: 49.5, HomeMoneyline: -500, AwayMoneyline: 380},
		{HomeTeamID: "gb", AwayTeamID: "mia", KickoffAt: kickoff(28, time.November, 20, 20), HomeSpread: -3.5, OverUnder: 47.5, HomeMoneyline: -175, AwayMoneyline: 148},
		{HomeTeamID: "kc", AwayTeamID: "lv", KickoffAt: kickoff(29, time.November, 15, 0), HomeSpread: -13, OverUnder: 43.5, HomeMoneyline: -700, AwayMoneyline: 500},
		{HomeTeamID: "atl", AwayTeamID: "lac", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: 1.5, OverUnder: 47.5, HomeMoneyline: 105, AwayMoneyline: -125},
		{HomeTeamID: "buf", AwayTeamID: "sf", KickoffAt: kickoff(1, time.December, 20, 20), HomeSpread: -5.5, OverUnder: 45.5, HomeMoneyline: -235, AwayMoneyline: 192},
		{HomeTeamID: "cin", AwayTeamID: "pit", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: -2.5, OverUnder: 47, HomeMoneyline: -138, AwayMoneyline: 118},
		{HomeTeamID: "hou", AwayTeamID: "jax", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: -5.5, OverUnder: 43.5, HomeMoneyline: -235, AwayMoneyline: 192},
		{HomeTeamID: "ind", AwayTeamID: "ne", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: -4, OverUnder: 42.5, HomeMoneyline: -190, AwayMoneyline: 160},
		{HomeTeamID: "min", AwayTeamID: "ari", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: -3.5, OverUnder: 45.5, HomeMoneyline: -175, AwayMoneyline: 148},
		{HomeTeamID: "no", AwayTeamID: "lar", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: 3.5, OverUnder: 49.5, HomeMoneyline: 148, AwayMoneyline: -175},
		{HomeTeamID: "nyj", AwayTeamID: "sea", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: 2, OverUnder: 42.5, HomeMoneyline: 112, AwayMoneyline: -132},
		{HomeTeamID: "ten", AwayTeamID: "was", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: 5.5, OverUnder: 44.5, HomeMoneyline: 198, AwayMoneyline: -240},
		{HomeTeamID: "tb", AwayTeamID: "car", KickoffAt: kickoff(1, time.December, 13, 0), HomeSpread: -6.5, OverUnder: 46.5, HomeMoneyline: -275, AwayMoneyline: 222},
		{HomeTeamID: "bal", AwayTeamID: "phi", KickoffAt: kickoff(1, time.December, 16, 25), HomeSpread: -2.5, OverUnder: 51, HomeMoneyline: -138, AwayMoneyline: 118},
		{HomeTeamID: "cle", AwayTeamID: "den", KickoffAt: kickoff(2, time.December, 20, 15), HomeSpread: 5.5, OverUnder: 41.5, HomeMoneyline: 205, AwayMoneyline: -250},
	}
}

// Premier League 2024-25 fixtures. Soccer fixtures carry no betting lines;
// the favorite-based auto pick is an NFL-only concern.
func premierLeagueMatchweeks() map[int][]schedule.Game {
	return map[int][]schedule.Game{
		15: {
			{HomeTeamID: "ars", AwayTeamID: "eve", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "bha", AwayTeamID: "cry", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "che", AwayTeamID: "bre", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "ips", AwayTeamID: "bou", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "liv", AwayTeamID: "ful", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "mci", AwayTeamID: "mun", KickoffAt: kickoff(15, time.December, 16, 30)},
			{HomeTeamID: "nfo", AwayTeamID: "avl", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "sou", AwayTeamID: "tot", KickoffAt: kickoff(15, time.December, 14, 0)},
			{HomeTeamID: "whu", AwayTeamID: "wol", KickoffAt: kickoff(14, time.December, 15, 0)},
			{HomeTeamID: "lei", AwayTeamID: "new", KickoffAt: kickoff(14, time.December, 15, 0)},
		},
		16: {
			{HomeTeamID: "avl", AwayTeamID: "mci", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "bou", AwayTeamID: "cry", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "bre", AwayTeamID: "nfo", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "eve", AwayTeamID: "che", KickoffAt: kickoff(22, time.December, 14, 0)},
			{HomeTeamID: "ful", AwayTeamID: "sou", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "liv", AwayTeamID: "tot", KickoffAt: kickoff(22, time.December, 16, 30)},
			{HomeTeamID: "new", AwayTeamID: "ips", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "whu", AwayTeamID: "bha", KickoffAt: kickoff(21, time.December, 15, 0)},
			{HomeTeamID: "wol", AwayTeamID: "lei", KickoffAt: kickoff(21, time.December, 15, 0)},
		},
	}
}
