package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	schedulemock "github.com/pickemhq/survivor-pool/internal/mocks/domain/schedule"
	seriesmock "github.com/pickemhq/survivor-pool/internal/mocks/domain/series"
)

func TestPickService_Status_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seriesRepo := seriesmock.NewRepository(t)
	schedules := schedulemock.NewProvider(t)

	service := NewPickService(seriesRepo, schedules, nil)
	seriesID := "office-pool-2024"
	item := series.Series{
		ID:          seriesID,
		Name:        "Office Survivor Pool",
		Sport:       schedule.SportNFL,
		GameType:    series.GameTypeSurvivor,
		CurrentWeek: 3,
		IsActive:    true,
		Members: []series.Member{
			{ID: "member-1", UserID: "user-1", LivesRemaining: 2, JoinedAt: time.Now().UTC()},
			{ID: "member-2", UserID: "user-2", LivesRemaining: 1, JoinedAt: time.Now().UTC()},
		},
	}

	seriesRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), seriesID).
		Return(item, true, nil).
		Once()

	statuses, err := service.Status(ctx, "user-1", seriesID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("unexpected status count: got=%d want=1", len(statuses))
	}
	if statuses[0].MemberID != "member-1" {
		t.Fatalf("unexpected member id: got=%s want=member-1", statuses[0].MemberID)
	}
}

func TestPickService_Status_SeriesNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seriesRepo := seriesmock.NewRepository(t)
	schedules := schedulemock.NewProvider(t)

	service := NewPickService(seriesRepo, schedules, nil)

	seriesRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "missing-series").
		Return(series.Series{}, false, nil).
		Once()

	_, err := service.Status(ctx, "user-1", "missing-series")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPickService_WeekSchedule_ProviderDownUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seriesRepo := seriesmock.NewRepository(t)
	schedules := schedulemock.NewProvider(t)

	service := NewPickService(seriesRepo, schedules, nil)

	schedules.
		On("WeekSchedule", mock.MatchedBy(func(v context.Context) bool { return v != nil }), schedule.SportNFL, 4).
		Return(schedule.Week{}, errors.New("feed timeout")).
		Once()

	_, err := service.WeekSchedule(ctx, schedule.SportNFL, 4)
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
