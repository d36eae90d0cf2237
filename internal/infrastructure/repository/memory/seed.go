package memory

import (
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

const (
	SeriesIDOfficePool   = "office-pool-2024"
	SeriesIDPlayoffsPool = "playoffs-pool-2024"
)

// SeedSeries returns demo pools for local runs without a database.
func SeedSeries() []series.Series {
	createdAt := time.Date(2024, time.September, 2, 12, 0, 0, 0, time.UTC)
	return []series.Series{
		{
			ID:          SeriesIDOfficePool,
			Name:        "Office Survivor Pool",
			Description: "Last one standing wins",
			CreatedBy:   "user-demo-1",
			CreatedAt:   createdAt,
			Sport:       schedule.SportNFL,
			Competition: "NFL",
			GameType:    series.GameTypeSurvivor,
			Season:      2024,
			CurrentWeek: 13,
			IsActive:    true,
			Settings:    series.DefaultSettings(),
			Members: []series.Member{
				{
					ID: "member-demo-1", UserID: "user-demo-1", UserName: "Dana",
					Role: series.RoleAdmin, Entry: 1, LivesRemaining: 2, JoinedAt: createdAt,
					Picks: []series.Pick{
						{Week: 11, TeamID: "det", Result: series.PickWin, PickedAt: createdAt},
						{Week: 12, TeamID: "buf", Result: series.PickWin, PickedAt: createdAt},
					},
				},
				{
					ID: "member-demo-2", UserID: "user-demo-2", UserName: "Riley",
					Role: series.RoleMember, Entry: 1, LivesRemaining: 1, JoinedAt: createdAt,
					Picks: []series.Pick{
						{Week: 11, TeamID: "nyj", Result: series.PickLoss, PickedAt: createdAt},
						{Week: 12, TeamID: "kc", Result: series.PickWin, PickedAt: createdAt},
					},
				},
			},
		},
		{
			ID:          SeriesIDPlayoffsPool,
			Name:        "Playoff Bracket Pool",
			CreatedBy:   "user-demo-1",
			CreatedAt:   createdAt,
			Sport:       schedule.SportNFL,
			Competition: "NFL",
			GameType:    series.GameTypePlayoffPool,
			Season:      2024,
			CurrentWeek: 1,
			IsActive:    true,
			Settings:    series.DefaultSettings(),
			Members: []series.Member{
				{
					ID: "member-demo-3", UserID: "user-demo-1", UserName: "Dana",
					Role: series.RoleAdmin, Entry: 1, LivesRemaining: 2, JoinedAt: createdAt,
				},
			},
		},
	}
}
