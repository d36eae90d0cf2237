package survivor

import (
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

// Status is the per-member read model clients poll between weeks. It is
// derived from a series snapshot on every call rather than kept as state.
type Status struct {
	SeriesID          string
	MemberID          string
	LivesRemaining    int
	IsEliminated      bool
	UsedTeams         []string
	HasPickedThisWeek bool
	CurrentPick       *series.Pick
	Deadline          time.Time
	CanPick           bool
}

// MemberStatus derives the status of one member entry at the given instant.
func MemberStatus(s series.Series, m series.Member, now time.Time) Status {
	st := Status{
		SeriesID:       s.ID,
		MemberID:       m.ID,
		LivesRemaining: m.LivesRemaining,
		IsEliminated:   m.IsEliminated,
		UsedTeams:      m.UsedTeams(),
		Deadline:       NextDeadline(now),
		CanPick:        s.IsActive && !m.IsEliminated,
	}
	if pick, ok := m.PickAt(s.CurrentWeek); ok {
		st.HasPickedThisWeek = true
		st.CurrentPick = &pick
	}
	return st
}
