package playoff

import "sort"

// StandingRow is one ranked pool member.
type StandingRow struct {
	UserID         string
	UserName       string
	UserPicture    string
	TotalPoints    int
	PossiblePoints int
	Rank           int
}

// Standings ranks pool members by total points, breaking ties toward the
// member with more points still achievable. Possible points assume every
// ungraded pick lands at the round maximum. Members on equal totals share a
// rank and the next distinct total skips past them (1, 1, 3).
func Standings(members []Member, games []Game) []StandingRow {
	roundOf := make(map[string]Round, len(games))
	for _, g := range games {
		roundOf[g.ID] = g.Round
	}

	rows := make([]StandingRow, 0, len(members))
	for _, m := range members {
		graded := make(map[string]struct{}, len(m.Results))
		for _, r := range m.Results {
			graded[r.GameID] = struct{}{}
		}

		total := m.TotalPoints()
		possible := total
		for _, p := range m.Picks {
			if _, ok := graded[p.GameID]; ok {
				continue
			}
			round, ok := roundOf[p.GameID]
			if !ok {
				continue
			}
			possible += RoundMaxPoints(round)
		}

		rows = append(rows, StandingRow{
			UserID:         m.UserID,
			UserName:       m.UserName,
			UserPicture:    m.UserPicture,
			TotalPoints:    total,
			PossiblePoints: possible,
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].TotalPoints != rows[b].TotalPoints {
			return rows[a].TotalPoints > rows[b].TotalPoints
		}
		return rows[a].PossiblePoints > rows[b].PossiblePoints
	})

	for i := range rows {
		if i > 0 && rows[i].TotalPoints == rows[i-1].TotalPoints {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
	return rows
}
