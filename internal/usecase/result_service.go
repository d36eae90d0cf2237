package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
)

type ReportWeekResultsInput struct {
	UserID   string
	SeriesID string
	Week     int
	// Outcomes maps team id to win, loss, or tie.
	Outcomes map[string]survivor.Outcome
}

type WeekResultSummary struct {
	SeriesID   string
	Week       int
	Graded     int
	Eliminated int
}

// ResultService grades survivor weeks. Outcomes arrive either from an admin
// report or derived from completed games on the schedule feed.
type ResultService struct {
	seriesRepo series.Repository
	schedules  schedule.Provider
	logger     *logging.Logger
}

func NewResultService(seriesRepo series.Repository, schedules schedule.Provider, logger *logging.Logger) *ResultService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ResultService{
		seriesRepo: seriesRepo,
		schedules:  schedules,
		logger:     logger,
	}
}

func (s *ResultService) ReportWeekResults(ctx context.Context, input ReportWeekResultsInput) (WeekResultSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.ReportWeekResults")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	if input.UserID == "" || input.SeriesID == "" {
		return WeekResultSummary{}, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}
	if input.Week < 1 {
		return WeekResultSummary{}, fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}
	if len(input.Outcomes) == 0 {
		return WeekResultSummary{}, fmt.Errorf("%w: at least one outcome is required", ErrInvalidInput)
	}

	outcomes := make(map[string]survivor.Outcome, len(input.Outcomes))
	for teamID, outcome := range input.Outcomes {
		teamID = strings.ToLower(strings.TrimSpace(teamID))
		if teamID == "" {
			return WeekResultSummary{}, fmt.Errorf("%w: outcome with empty team id", ErrInvalidInput)
		}
		if _, ok := survivor.AllOutcomes[outcome]; !ok {
			return WeekResultSummary{}, fmt.Errorf("%w: unknown outcome %q for team %s", ErrInvalidInput, outcome, teamID)
		}
		outcomes[teamID] = outcome
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, input.SeriesID)
	if err != nil {
		return WeekResultSummary{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return WeekResultSummary{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsAdmin(input.UserID) {
		return WeekResultSummary{}, fmt.Errorf("%w: only an admin can report results", ErrUnauthorized)
	}

	return s.applyOutcomes(ctx, item, input.Week, outcomes)
}

// GradeFromSchedule grades a week from the completed games on the schedule
// feed. Games still in progress are left for the next run.
func (s *ResultService) GradeFromSchedule(ctx context.Context, seriesID string, weekNumber int) (WeekResultSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResultService.GradeFromSchedule")
	defer span.End()

	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return WeekResultSummary{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}
	if weekNumber < 1 {
		return WeekResultSummary{}, fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return WeekResultSummary{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return WeekResultSummary{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}

	week, err := s.schedules.WeekSchedule(ctx, item.Sport, weekNumber)
	if err != nil {
		return WeekResultSummary{}, fmt.Errorf("%w: fetch week %d schedule: %v", ErrDependencyUnavailable, weekNumber, err)
	}

	outcomes := outcomesFromGames(week.Games)
	if len(outcomes) == 0 {
		return WeekResultSummary{SeriesID: seriesID, Week: weekNumber}, nil
	}
	return s.applyOutcomes(ctx, item, weekNumber, outcomes)
}

func (s *ResultService) applyOutcomes(ctx context.Context, item series.Series, week int, outcomes map[string]survivor.Outcome) (WeekResultSummary, error) {
	updates := survivor.ApplyWeekResult(item, week, outcomes)
	summary := WeekResultSummary{SeriesID: item.ID, Week: week}

	for _, u := range updates {
		if err := s.seriesRepo.SetPickResult(ctx, item.ID, u.MemberID, u.Week, u.Result); err != nil {
			return summary, fmt.Errorf("set pick result member=%s week=%d: %w", u.MemberID, u.Week, err)
		}
		if err := s.seriesRepo.UpdateMemberStanding(ctx, item.ID, u.MemberID, u.LivesRemaining, u.IsEliminated); err != nil {
			return summary, fmt.Errorf("update member standing member=%s: %w", u.MemberID, err)
		}
		summary.Graded++
		if u.IsEliminated {
			summary.Eliminated++
		}
	}

	s.logger.InfoContext(ctx, "graded survivor week",
		"series_id", item.ID,
		"week", week,
		"graded", summary.Graded,
		"eliminated", summary.Eliminated,
	)
	return summary, nil
}

func outcomesFromGames(games []schedule.Game) map[string]survivor.Outcome {
	outcomes := make(map[string]survivor.Outcome)
	for _, g := range games {
		if !g.IsComplete || g.HomeScore == nil || g.AwayScore == nil {
			continue
		}
		switch {
		case *g.HomeScore > *g.AwayScore:
			outcomes[g.HomeTeamID] = survivor.OutcomeWin
			outcomes[g.AwayTeamID] = survivor.OutcomeLoss
		case *g.HomeScore < *g.AwayScore:
			outcomes[g.HomeTeamID] = survivor.OutcomeLoss
			outcomes[g.AwayTeamID] = survivor.OutcomeWin
		default:
			outcomes[g.HomeTeamID] = survivor.OutcomeTie
			outcomes[g.AwayTeamID] = survivor.OutcomeTie
		}
	}
	return outcomes
}
