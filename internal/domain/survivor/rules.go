package survivor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

var (
	ErrEliminated         = errors.New("member is eliminated")
	ErrDeadlinePassed     = errors.New("pick deadline has passed")
	ErrTeamAlreadyUsed    = errors.New("team usage limit reached")
	ErrTeamOnBye          = errors.New("team is not playing this week")
	ErrNoEligibleAutoPick = errors.New("no eligible auto-pick team")
)

// PickContext bundles the per-week inputs a pick decision needs. Callers
// resolve settings, compute the deadline, and fetch the schedule snapshot
// once, then evaluate any number of members against it.
type PickContext struct {
	Settings series.Settings
	Week     int
	Deadline time.Time
	Now      time.Time
	Schedule schedule.Week
}

// ValidatePick checks a manual pick and returns the pending pick to persist.
// A pick for the same week that is still pending may be replaced before the
// deadline; the replaced pick's team does not count against the reuse limit.
func ValidatePick(member series.Member, teamID string, pc PickContext) (series.Pick, error) {
	teamID = strings.ToLower(strings.TrimSpace(teamID))
	if teamID == "" {
		return series.Pick{}, fmt.Errorf("team id is required")
	}
	if member.IsEliminated {
		return series.Pick{}, fmt.Errorf("%w: member=%s", ErrEliminated, member.ID)
	}
	if existing, ok := member.PickAt(pc.Week); ok && existing.Result != series.PickPending {
		return series.Pick{}, fmt.Errorf("%w: week %d is already graded", ErrDeadlinePassed, pc.Week)
	}
	if !pc.Now.Before(pc.Deadline) {
		return series.Pick{}, fmt.Errorf("%w: week=%d", ErrDeadlinePassed, pc.Week)
	}
	if uses := member.TeamUses(teamID, pc.Week); uses >= pc.Settings.MaxTeamUses {
		return series.Pick{}, fmt.Errorf("%w: team=%s uses=%d max=%d", ErrTeamAlreadyUsed, teamID, uses, pc.Settings.MaxTeamUses)
	}
	if pc.Schedule.IsOnBye(teamID) {
		return series.Pick{}, fmt.Errorf("%w: team=%s week=%d", ErrTeamOnBye, teamID, pc.Week)
	}
	if _, ok := pc.Schedule.MatchupFor(teamID); !ok {
		return series.Pick{}, fmt.Errorf("%w: team=%s week=%d", ErrTeamOnBye, teamID, pc.Week)
	}

	return series.Pick{
		Week:     pc.Week,
		TeamID:   teamID,
		Result:   series.PickPending,
		PickedAt: pc.Now,
	}, nil
}

// SelectAutoPick picks the strongest remaining favorite for a member who
// missed the deadline: the team with the most negative spread among teams
// below their use limit and not on bye. Equal spreads resolve to whichever
// comes first in schedule order, so reruns of a sweep stay deterministic.
func SelectAutoPick(member series.Member, pc PickContext) (series.Pick, error) {
	if member.IsEliminated {
		return series.Pick{}, fmt.Errorf("%w: member=%s", ErrEliminated, member.ID)
	}
	if existing, ok := member.PickAt(pc.Week); ok && existing.Result != series.PickPending {
		return series.Pick{}, fmt.Errorf("%w: week %d is already graded", ErrDeadlinePassed, pc.Week)
	}

	bestTeam := ""
	bestSpread := 0.0
	consider := func(teamID string, spread float64) {
		if pc.Schedule.IsOnBye(teamID) {
			return
		}
		if member.TeamUses(teamID, pc.Week) >= pc.Settings.MaxTeamUses {
			return
		}
		if bestTeam == "" || spread < bestSpread {
			bestTeam = teamID
			bestSpread = spread
		}
	}
	for _, g := range pc.Schedule.Games {
		consider(g.HomeTeamID, g.HomeSpread)
		consider(g.AwayTeamID, -g.HomeSpread)
	}
	if bestTeam == "" {
		return series.Pick{}, fmt.Errorf("%w: member=%s week=%d", ErrNoEligibleAutoPick, member.ID, pc.Week)
	}

	return series.Pick{
		Week:       pc.Week,
		TeamID:     bestTeam,
		Result:     series.PickPending,
		IsAutoPick: true,
		PickedAt:   pc.Now,
	}, nil
}

// Outcome is a reported game result for one team.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeTie  Outcome = "tie"
)

// AllOutcomes is used for payload validation.
var AllOutcomes = map[Outcome]struct{}{
	OutcomeWin:  {},
	OutcomeLoss: {},
	OutcomeTie:  {},
}

// MemberUpdate is one member's graded state after a week result pass.
type MemberUpdate struct {
	MemberID       string
	Week           int
	Result         series.PickResult
	LivesRemaining int
	IsEliminated   bool
}

// ApplyWeekResult grades pending picks for a week against the reported
// outcomes and returns the member updates to persist. Ties resolve through
// TieCountsAsWin before lives are touched; a loss costs exactly one life and
// a member eliminates when lives reach zero. Picks already graded are left
// alone, so replaying the same outcomes is a no-op.
func ApplyWeekResult(s series.Series, week int, outcomes map[string]Outcome) []MemberUpdate {
	settings := series.ResolveSettings(&s.Settings)

	var updates []MemberUpdate
	for _, m := range s.Members {
		pick, ok := m.PickAt(week)
		if !ok || pick.Result != series.PickPending {
			continue
		}
		outcome, ok := outcomes[pick.TeamID]
		if !ok {
			continue
		}

		result := series.PickLoss
		switch {
		case outcome == OutcomeWin:
			result = series.PickWin
		case outcome == OutcomeTie && settings.TieCountsAsWin:
			result = series.PickWin
		}

		lives := m.LivesRemaining
		if result == series.PickLoss {
			lives--
			if lives < 0 {
				lives = 0
			}
		}
		updates = append(updates, MemberUpdate{
			MemberID:       m.ID,
			Week:           week,
			Result:         result,
			LivesRemaining: lives,
			IsEliminated:   lives <= 0,
		})
	}
	return updates
}
