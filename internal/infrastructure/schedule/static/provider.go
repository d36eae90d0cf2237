package static

import (
	"context"
	"fmt"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
)

// Provider serves schedule and odds data from an in-process table. It backs
// development and tests, and acts as the fallback when no odds feed is
// configured.
type Provider struct {
	nflGames    []schedule.Game
	nflByeWeeks map[int][]string
	soccerWeeks map[int][]schedule.Game
	season      int
}

func NewProvider() *Provider {
	return &Provider{
		nflGames:    nflWeekGames(),
		nflByeWeeks: nflByeWeeks2024(),
		soccerWeeks: premierLeagueMatchweeks(),
		season:      2024,
	}
}

func (p *Provider) WeekSchedule(_ context.Context, sport schedule.Sport, week int) (schedule.Week, error) {
	if week < 1 {
		return schedule.Week{}, fmt.Errorf("week must be at least 1, got %d", week)
	}

	switch sport {
	case schedule.SportNFL:
		return schedule.Week{
			Sport:    schedule.SportNFL,
			Number:   week,
			Season:   p.season,
			Games:    p.nflGames,
			ByeTeams: p.nflByeWeeks[week],
		}, nil
	case schedule.SportSoccer:
		games, ok := p.soccerWeeks[week]
		if !ok {
			return schedule.Week{}, fmt.Errorf("no fixtures for matchweek %d", week)
		}
		return schedule.Week{
			Sport:  schedule.SportSoccer,
			Number: week,
			Season: p.season,
			Games:  games,
		}, nil
	default:
		return schedule.Week{}, fmt.Errorf("unknown sport: %s", sport)
	}
}
