package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
	idgen "github.com/pickemhq/survivor-pool/internal/platform/id"
)

type CreateSeriesInput struct {
	UserID      string
	UserName    string
	UserPicture string
	Name        string
	Description string
	Sport       string
	Competition string
	GameType    string
	Season      int
	Settings    *series.Settings
	PrizeValue  int64
	ShowPrize   bool
}

type UpdateSeriesSettingsInput struct {
	UserID     string
	SeriesID   string
	Settings   series.Settings
	PrizeValue int64
	ShowPrize  bool
}

type SeriesService struct {
	seriesRepo series.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewSeriesService(seriesRepo series.Repository, idGen idgen.Generator) *SeriesService {
	return &SeriesService{
		seriesRepo: seriesRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *SeriesService) CreateSeries(ctx context.Context, input CreateSeriesInput) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.CreateSeries")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	if input.UserID == "" {
		return series.Series{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return series.Series{}, fmt.Errorf("%w: series name is required", ErrInvalidInput)
	}

	sport := schedule.Sport(strings.ToLower(strings.TrimSpace(input.Sport)))
	if sport == "" {
		sport = schedule.SportNFL
	}
	if _, ok := schedule.AllSports[sport]; !ok {
		return series.Series{}, fmt.Errorf("%w: unknown sport: %s", ErrInvalidInput, input.Sport)
	}

	gameType := series.GameType(strings.ToLower(strings.TrimSpace(input.GameType)))
	if gameType == "" {
		gameType = series.GameTypeSurvivor
	}
	if _, ok := series.AllGameTypes[gameType]; !ok {
		return series.Series{}, fmt.Errorf("%w: unknown game type: %s", ErrInvalidInput, input.GameType)
	}

	partial := input.Settings
	if gameType == series.GameTypeLastManStanding && (partial == nil || partial.LivesPerPlayer == 0) {
		// Last man standing defaults to a single life.
		base := series.Settings{}
		if partial != nil {
			base = *partial
		}
		base.LivesPerPlayer = 1
		partial = &base
	}

	settings := series.ResolveSettings(partial)
	if err := settings.Validate(); err != nil {
		return series.Series{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	seriesID, err := s.idGen.NewID()
	if err != nil {
		return series.Series{}, fmt.Errorf("generate series id: %w", err)
	}
	memberID, err := s.idGen.NewID()
	if err != nil {
		return series.Series{}, fmt.Errorf("generate member id: %w", err)
	}

	now := s.now().UTC()
	season := input.Season
	if season == 0 {
		season = now.Year()
	}

	created := series.Series{
		ID:             seriesID,
		Name:           input.Name,
		Description:    strings.TrimSpace(input.Description),
		CreatedBy:      input.UserID,
		CreatedAt:      now,
		Sport:          sport,
		Competition:    strings.TrimSpace(input.Competition),
		GameType:       gameType,
		Season:         season,
		CurrentWeek:    settings.StartingWeek,
		IsActive:       true,
		PrizeValue:     input.PrizeValue,
		ShowPrizeValue: input.ShowPrize,
		Settings:       settings,
		Members: []series.Member{{
			ID:             memberID,
			UserID:         input.UserID,
			UserName:       strings.TrimSpace(input.UserName),
			UserPicture:    strings.TrimSpace(input.UserPicture),
			Role:           series.RoleAdmin,
			Entry:          1,
			LivesRemaining: settings.LivesPerPlayer,
			JoinedAt:       now,
		}},
	}
	if err := created.Validate(); err != nil {
		return series.Series{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seriesRepo.Create(ctx, created); err != nil {
		return series.Series{}, fmt.Errorf("create series: %w", err)
	}
	return created, nil
}

func (s *SeriesService) ListMySeries(ctx context.Context, userID string) ([]series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.ListMySeries")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	items, err := s.seriesRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list series by user: %w", err)
	}
	for i := range items {
		redactPrize(&items[i], userID)
	}
	return items, nil
}

func (s *SeriesService) GetSeries(ctx context.Context, userID, seriesID string) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.GetSeries")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" {
		return series.Series{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if seriesID == "" {
		return series.Series{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return series.Series{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Series{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if len(item.MembersOfUser(userID)) == 0 {
		return series.Series{}, fmt.Errorf("%w: you are not a member of this series", ErrUnauthorized)
	}

	redactPrize(&item, userID)
	return item, nil
}

// JoinSeries adds another entry for the user, or a first one for users who
// arrived through an accepted invitation.
func (s *SeriesService) JoinSeries(ctx context.Context, userID, userName, userPicture, seriesID string) (series.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.JoinSeries")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" {
		return series.Member{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if seriesID == "" {
		return series.Member{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return series.Member{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Member{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsActive {
		return series.Member{}, fmt.Errorf("%w: series is no longer active", ErrInvalidInput)
	}

	settings := series.ResolveSettings(&item.Settings)
	entries := item.MembersOfUser(userID)
	if len(entries) > 0 {
		if !settings.AllowMultipleEntries {
			return series.Member{}, fmt.Errorf("%w: you already joined this series", ErrInvalidInput)
		}
		if len(entries) >= settings.MaxEntriesPerPlayer {
			return series.Member{}, fmt.Errorf("%w: entry limit of %d reached", ErrInvalidInput, settings.MaxEntriesPerPlayer)
		}
	}

	memberID, err := s.idGen.NewID()
	if err != nil {
		return series.Member{}, fmt.Errorf("generate member id: %w", err)
	}
	member := series.Member{
		ID:             memberID,
		UserID:         userID,
		UserName:       strings.TrimSpace(userName),
		UserPicture:    strings.TrimSpace(userPicture),
		Role:           series.RoleMember,
		Entry:          len(entries) + 1,
		LivesRemaining: settings.LivesPerPlayer,
		JoinedAt:       s.now().UTC(),
	}
	if err := s.seriesRepo.AddMember(ctx, seriesID, member); err != nil {
		return series.Member{}, fmt.Errorf("add series member: %w", err)
	}
	return member, nil
}

func (s *SeriesService) LeaveSeries(ctx context.Context, userID, seriesID, memberID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.LeaveSeries")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	memberID = strings.TrimSpace(memberID)
	if userID == "" || seriesID == "" || memberID == "" {
		return fmt.Errorf("%w: user id, series id, and member id are required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: series not found", ErrNotFound)
	}

	member, ok := item.MemberByID(memberID)
	if !ok {
		return fmt.Errorf("%w: member not found", ErrNotFound)
	}
	if member.UserID != userID && !item.IsAdmin(userID) {
		return fmt.Errorf("%w: only the member or an admin can remove an entry", ErrUnauthorized)
	}
	if member.UserID == item.CreatedBy && member.Role == series.RoleAdmin {
		return fmt.Errorf("%w: the series creator cannot leave, deactivate the series instead", ErrInvalidInput)
	}

	if err := s.seriesRepo.RemoveMember(ctx, seriesID, memberID); err != nil {
		return fmt.Errorf("remove series member: %w", err)
	}
	return nil
}

func (s *SeriesService) DeactivateSeries(ctx context.Context, userID, seriesID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.DeactivateSeries")
	defer span.End()

	if err := s.requireAdmin(ctx, userID, seriesID); err != nil {
		return err
	}
	if err := s.seriesRepo.SetActive(ctx, seriesID, false); err != nil {
		return fmt.Errorf("deactivate series: %w", err)
	}
	return nil
}

func (s *SeriesService) UpdateSettings(ctx context.Context, input UpdateSeriesSettingsInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.UpdateSettings")
	defer span.End()

	if err := s.requireAdmin(ctx, input.UserID, input.SeriesID); err != nil {
		return err
	}

	settings := series.ResolveSettings(&input.Settings)
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if input.PrizeValue < 0 {
		return fmt.Errorf("%w: prize value cannot be negative", ErrInvalidInput)
	}

	if err := s.seriesRepo.UpdateSettings(ctx, strings.TrimSpace(input.SeriesID), settings, input.PrizeValue, input.ShowPrize); err != nil {
		return fmt.Errorf("update series settings: %w", err)
	}
	return nil
}

func (s *SeriesService) AdvanceWeek(ctx context.Context, userID, seriesID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.AdvanceWeek")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" || seriesID == "" {
		return 0, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return 0, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsAdmin(userID) {
		return 0, fmt.Errorf("%w: only an admin can advance the week", ErrUnauthorized)
	}

	next := item.CurrentWeek + 1
	if err := s.seriesRepo.SetCurrentWeek(ctx, seriesID, next); err != nil {
		return 0, fmt.Errorf("set series current week: %w", err)
	}
	return next, nil
}

func (s *SeriesService) requireAdmin(ctx context.Context, userID, seriesID string) error {
	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if seriesID == "" {
		return fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsAdmin(userID) {
		return fmt.Errorf("%w: admin role required", ErrUnauthorized)
	}
	return nil
}

// redactPrize hides the prize amount from non-admin members when the series
// keeps it private.
func redactPrize(s *series.Series, userID string) {
	if s.ShowPrizeValue || s.IsAdmin(userID) {
		return
	}
	s.PrizeValue = 0
}
