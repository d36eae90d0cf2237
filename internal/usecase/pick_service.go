package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/platform/cache"
)

type SubmitPickInput struct {
	UserID   string
	SeriesID string
	MemberID string
	TeamID   string
	// OnBehalf marks an admin submitting for another member. Admin picks
	// bypass the entry ownership check but not the deadline.
	OnBehalf bool
}

// PickService handles survivor pick submission and status reads. Week
// schedules come through a short-lived cache so a pick storm near the
// deadline hits the odds feed once.
type PickService struct {
	seriesRepo series.Repository
	schedules  schedule.Provider
	weekCache  *cache.Store
	now        func() time.Time
}

func NewPickService(seriesRepo series.Repository, schedules schedule.Provider, weekCache *cache.Store) *PickService {
	return &PickService{
		seriesRepo: seriesRepo,
		schedules:  schedules,
		weekCache:  weekCache,
		now:        time.Now,
	}
}

func (s *PickService) SubmitPick(ctx context.Context, input SubmitPickInput) (series.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.SubmitPick")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	input.MemberID = strings.TrimSpace(input.MemberID)
	if input.UserID == "" || input.SeriesID == "" || input.MemberID == "" {
		return series.Pick{}, fmt.Errorf("%w: user id, series id, and member id are required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.TeamID) == "" {
		return series.Pick{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, member, err := s.loadSurvivorEntry(ctx, input.SeriesID, input.MemberID)
	if err != nil {
		return series.Pick{}, err
	}
	if member.UserID != input.UserID {
		if !input.OnBehalf || !item.IsAdmin(input.UserID) {
			return series.Pick{}, fmt.Errorf("%w: this entry belongs to another user", ErrUnauthorized)
		}
	}

	pc, err := s.pickContext(ctx, item)
	if err != nil {
		return series.Pick{}, err
	}

	pick, err := survivor.ValidatePick(member, input.TeamID, pc)
	if err != nil {
		return series.Pick{}, mapSurvivorError(err)
	}

	if err := s.seriesRepo.UpsertPick(ctx, item.ID, member.ID, pick); err != nil {
		return series.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}
	return pick, nil
}

// Status returns the survivor status of every entry the user holds in a
// series.
func (s *PickService) Status(ctx context.Context, userID, seriesID string) ([]survivor.Status, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.Status")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" || seriesID == "" {
		return nil, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: series not found", ErrNotFound)
	}

	entries := item.MembersOfUser(userID)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: you are not a member of this series", ErrUnauthorized)
	}

	now := s.now().UTC()
	statuses := make([]survivor.Status, 0, len(entries))
	for _, m := range entries {
		statuses = append(statuses, survivor.MemberStatus(item, m, now))
	}
	return statuses, nil
}

// WeekSchedule returns the week's schedule snapshot for pick screens.
func (s *PickService) WeekSchedule(ctx context.Context, sport schedule.Sport, week int) (schedule.Week, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PickService.WeekSchedule")
	defer span.End()

	if week < 1 {
		return schedule.Week{}, fmt.Errorf("%w: week must be at least 1", ErrInvalidInput)
	}
	if _, ok := schedule.AllSports[sport]; !ok {
		return schedule.Week{}, fmt.Errorf("%w: unknown sport: %s", ErrInvalidInput, sport)
	}
	return s.fetchWeek(ctx, sport, week)
}

func (s *PickService) loadSurvivorEntry(ctx context.Context, seriesID, memberID string) (series.Series, series.Member, error) {
	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return series.Series{}, series.Member{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Series{}, series.Member{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.GameType.UsesSurvivorRules() {
		return series.Series{}, series.Member{}, fmt.Errorf("%w: series does not take weekly survivor picks", ErrInvalidInput)
	}
	if !item.IsActive {
		return series.Series{}, series.Member{}, fmt.Errorf("%w: series is no longer active", ErrInvalidInput)
	}

	member, ok := item.MemberByID(memberID)
	if !ok {
		return series.Series{}, series.Member{}, fmt.Errorf("%w: member not found", ErrNotFound)
	}
	return item, member, nil
}

func (s *PickService) pickContext(ctx context.Context, item series.Series) (survivor.PickContext, error) {
	week, err := s.fetchWeek(ctx, item.Sport, item.CurrentWeek)
	if err != nil {
		return survivor.PickContext{}, err
	}

	now := s.now().UTC()
	return survivor.PickContext{
		Settings: series.ResolveSettings(&item.Settings),
		Week:     item.CurrentWeek,
		Deadline: survivor.NextDeadline(now),
		Now:      now,
		Schedule: week,
	}, nil
}

func (s *PickService) fetchWeek(ctx context.Context, sport schedule.Sport, weekNumber int) (schedule.Week, error) {
	load := func(ctx context.Context) (any, error) {
		week, err := s.schedules.WeekSchedule(ctx, sport, weekNumber)
		if err != nil {
			return nil, fmt.Errorf("%w: fetch week %d schedule: %v", ErrDependencyUnavailable, weekNumber, err)
		}
		return week, nil
	}

	if s.weekCache == nil {
		value, err := load(ctx)
		if err != nil {
			return schedule.Week{}, err
		}
		return value.(schedule.Week), nil
	}

	key := fmt.Sprintf("schedule:%s:%d", sport, weekNumber)
	value, err := s.weekCache.GetOrLoad(ctx, key, load)
	if err != nil {
		return schedule.Week{}, err
	}
	week, ok := value.(schedule.Week)
	if !ok {
		return schedule.Week{}, fmt.Errorf("unexpected cache entry type for %s", key)
	}
	return week, nil
}

// mapSurvivorError wraps rule violations in the shared input error so the
// transport layer renders them as 4xx responses. The rule sentinel stays in
// the chain for per-reason error codes.
func mapSurvivorError(err error) error {
	switch {
	case errors.Is(err, survivor.ErrEliminated),
		errors.Is(err, survivor.ErrDeadlinePassed),
		errors.Is(err, survivor.ErrTeamAlreadyUsed),
		errors.Is(err, survivor.ErrTeamOnBye),
		errors.Is(err, survivor.ErrNoEligibleAutoPick):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
