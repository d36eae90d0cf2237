package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/platform/logging"
)

const (
	autoPickStatusAssigned = "assigned"
	autoPickStatusSkipped  = "skipped"
	autoPickStatusFailed   = "failed"
)

type AutoPickSweepInput struct {
	// SeriesID narrows the sweep to one series; empty sweeps every active
	// survivor series.
	SeriesID   string
	MaxWorkers int
	// DryRun computes assignments without writing picks.
	DryRun bool
}

type AutoPickSweepResult struct {
	SeriesCount   int                  `json:"series_count"`
	MemberCount   int                  `json:"member_count"`
	AssignedCount int                  `json:"assigned_count"`
	SkippedCount  int                  `json:"skipped_count"`
	FailedCount   int                  `json:"failed_count"`
	WorkerCount   int                  `json:"worker_count"`
	Tasks         []AutoPickTaskResult `json:"tasks"`
}

type AutoPickTaskResult struct {
	SeriesID string `json:"series_id"`
	MemberID string `json:"member_id"`
	Week     int    `json:"week"`
	TeamID   string `json:"team_id,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

// AutoPickService assigns favorite-based picks to members who missed the
// weekly deadline. An internal job hits it right after lock time.
type AutoPickService struct {
	seriesRepo series.Repository
	schedules  schedule.Provider
	logger     *logging.Logger
	now        func() time.Time
}

func NewAutoPickService(seriesRepo series.Repository, schedules schedule.Provider, logger *logging.Logger) *AutoPickService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AutoPickService{
		seriesRepo: seriesRepo,
		schedules:  schedules,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *AutoPickService) Sweep(ctx context.Context, input AutoPickSweepInput) (AutoPickSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AutoPickService.Sweep")
	defer span.End()

	targets, err := s.resolveTargets(ctx, strings.TrimSpace(input.SeriesID))
	if err != nil {
		return AutoPickSweepResult{}, err
	}

	result := AutoPickSweepResult{SeriesCount: len(targets)}
	if len(targets) == 0 {
		return result, nil
	}

	workerCount := normalizeSweepWorkerCount(input.MaxWorkers, len(targets))
	result.WorkerCount = workerCount

	memberPool, err := ants.NewPool(workerCount)
	if err != nil {
		return AutoPickSweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer memberPool.Release()

	var mu sync.Mutex
	var assigned, skipped, failed, members atomic.Int32

	seriesPool := pool.New().WithMaxGoroutines(workerCount)
	for _, target := range targets {
		target := target
		seriesPool.Go(func() {
			rows := s.sweepSeries(ctx, memberPool, target, input.DryRun)
			for _, row := range rows {
				members.Add(1)
				switch row.Status {
				case autoPickStatusAssigned:
					assigned.Add(1)
				case autoPickStatusSkipped:
					skipped.Add(1)
				default:
					failed.Add(1)
				}
			}
			mu.Lock()
			result.Tasks = append(result.Tasks, rows...)
			mu.Unlock()
		})
	}
	seriesPool.Wait()

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].SeriesID != result.Tasks[j].SeriesID {
			return result.Tasks[i].SeriesID < result.Tasks[j].SeriesID
		}
		return result.Tasks[i].MemberID < result.Tasks[j].MemberID
	})

	result.MemberCount = int(members.Load())
	result.AssignedCount = int(assigned.Load())
	result.SkippedCount = int(skipped.Load())
	result.FailedCount = int(failed.Load())

	s.logger.InfoContext(ctx, "auto-pick sweep finished",
		"series_count", result.SeriesCount,
		"assigned", result.AssignedCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
		"dry_run", input.DryRun,
	)
	return result, nil
}

func (s *AutoPickService) resolveTargets(ctx context.Context, seriesID string) ([]series.Series, error) {
	if seriesID != "" {
		item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
		if err != nil {
			return nil, fmt.Errorf("get series: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: series not found", ErrNotFound)
		}
		if !item.GameType.UsesSurvivorRules() {
			return nil, fmt.Errorf("%w: series does not take weekly survivor picks", ErrInvalidInput)
		}
		return []series.Series{item}, nil
	}

	items, err := s.seriesRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active series: %w", err)
	}
	targets := make([]series.Series, 0, len(items))
	for _, item := range items {
		if item.GameType.UsesSurvivorRules() {
			targets = append(targets, item)
		}
	}
	return targets, nil
}

func (s *AutoPickService) sweepSeries(ctx context.Context, memberPool *ants.Pool, item series.Series, dryRun bool) []AutoPickTaskResult {
	week, err := s.schedules.WeekSchedule(ctx, item.Sport, item.CurrentWeek)
	if err != nil {
		return []AutoPickTaskResult{{
			SeriesID: item.ID,
			Week:     item.CurrentWeek,
			Status:   autoPickStatusFailed,
			Message:  fmt.Sprintf("fetch week %d schedule: %v", item.CurrentWeek, err),
		}}
	}

	now := s.now().UTC()
	pc := survivor.PickContext{
		Settings: series.ResolveSettings(&item.Settings),
		Week:     item.CurrentWeek,
		Deadline: survivor.NextDeadline(now),
		Now:      now,
		Schedule: week,
	}

	pending := make([]series.Member, 0, len(item.Members))
	for _, m := range item.Members {
		if m.IsEliminated {
			continue
		}
		if _, ok := m.PickAt(item.CurrentWeek); ok {
			continue
		}
		pending = append(pending, m)
	}
	if len(pending) == 0 {
		return nil
	}

	rows := make([]AutoPickTaskResult, len(pending))
	var workers sync.WaitGroup
	for i, m := range pending {
		i, m := i, m
		workers.Add(1)
		if err := memberPool.Submit(func() {
			defer workers.Done()
			rows[i] = s.assignAutoPick(ctx, item, m, pc, dryRun)
		}); err != nil {
			workers.Done()
			rows[i] = AutoPickTaskResult{
				SeriesID: item.ID,
				MemberID: m.ID,
				Week:     item.CurrentWeek,
				Status:   autoPickStatusFailed,
				Message:  fmt.Sprintf("submit to worker pool: %v", err),
			}
		}
	}
	workers.Wait()
	return rows
}

func (s *AutoPickService) assignAutoPick(ctx context.Context, item series.Series, m series.Member, pc survivor.PickContext, dryRun bool) AutoPickTaskResult {
	row := AutoPickTaskResult{SeriesID: item.ID, MemberID: m.ID, Week: pc.Week}

	pick, err := survivor.SelectAutoPick(m, pc)
	if err != nil {
		// No legal team left means the member loses the week, not a skip.
		if errors.Is(err, survivor.ErrNoEligibleAutoPick) {
			row.Status = autoPickStatusFailed
		} else {
			row.Status = autoPickStatusSkipped
		}
		row.Message = err.Error()
		return row
	}
	row.TeamID = pick.TeamID

	if dryRun {
		row.Status = autoPickStatusSkipped
		row.Message = "dry run"
		return row
	}
	if err := s.seriesRepo.UpsertPick(ctx, item.ID, m.ID, pick); err != nil {
		row.Status = autoPickStatusFailed
		row.Message = err.Error()
		return row
	}
	row.Status = autoPickStatusAssigned
	return row
}

func normalizeSweepWorkerCount(value, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 4
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
