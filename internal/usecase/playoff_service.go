package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

type CreatePlayoffPoolInput struct {
	UserID   string
	SeriesID string
	Seeding  playoff.Seeding
}

type SubmitPlayoffPicksInput struct {
	UserID   string
	SeriesID string
	Stage    playoff.Stage
	Picks    []playoff.Pick
}

type ReportPlayoffGameInput struct {
	UserID    string
	SeriesID  string
	GameID    string
	HomeScore int
	AwayScore int
}

// PlayoffService runs bracket pools: seeding the wild card slate, taking
// staged pick submissions, and grading games as they finish.
type PlayoffService struct {
	seriesRepo  series.Repository
	playoffRepo playoff.Repository
	now         func() time.Time
}

func NewPlayoffService(seriesRepo series.Repository, playoffRepo playoff.Repository) *PlayoffService {
	return &PlayoffService{
		seriesRepo:  seriesRepo,
		playoffRepo: playoffRepo,
		now:         time.Now,
	}
}

// CreatePool seeds the bracket for a playoff pool series: six wild card
// games plus the stage-two slots that resolve as feeder games complete.
func (s *PlayoffService) CreatePool(ctx context.Context, input CreatePlayoffPoolInput) (playoff.Pool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.CreatePool")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	if input.UserID == "" || input.SeriesID == "" {
		return playoff.Pool{}, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}
	if err := input.Seeding.Validate(); err != nil {
		return playoff.Pool{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item, err := s.requirePlayoffSeries(ctx, input.SeriesID)
	if err != nil {
		return playoff.Pool{}, err
	}
	if !item.IsAdmin(input.UserID) {
		return playoff.Pool{}, fmt.Errorf("%w: only an admin can seed the bracket", ErrUnauthorized)
	}

	if _, exists, err := s.playoffRepo.GetPool(ctx, input.SeriesID); err != nil {
		return playoff.Pool{}, fmt.Errorf("get playoff pool: %w", err)
	} else if exists {
		return playoff.Pool{}, fmt.Errorf("%w: bracket is already seeded", ErrInvalidInput)
	}

	games := playoff.GenerateWildCardGames(input.Seeding)
	divisional, err := pendingDivisionalGames()
	if err != nil {
		return playoff.Pool{}, err
	}
	games = append(games, divisional...)
	games = append(games, playoff.PendingStageTwoGames()...)

	pool := playoff.Pool{
		SeriesID: input.SeriesID,
		Season:   item.Season,
		Seeding:  input.Seeding,
		Games:    games,
	}
	for _, m := range item.Members {
		pool.Members = append(pool.Members, playoff.Member{
			UserID:      m.UserID,
			UserName:    m.UserName,
			UserPicture: m.UserPicture,
			JoinedAt:    m.JoinedAt,
		})
	}

	if err := s.playoffRepo.CreatePool(ctx, pool); err != nil {
		return playoff.Pool{}, fmt.Errorf("create playoff pool: %w", err)
	}
	return pool, nil
}

func (s *PlayoffService) GetPool(ctx context.Context, userID, seriesID string) (playoff.Pool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.GetPool")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" || seriesID == "" {
		return playoff.Pool{}, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}

	pool, exists, err := s.playoffRepo.GetPool(ctx, seriesID)
	if err != nil {
		return playoff.Pool{}, fmt.Errorf("get playoff pool: %w", err)
	}
	if !exists {
		return playoff.Pool{}, fmt.Errorf("%w: bracket is not seeded yet", ErrNotFound)
	}
	return pool, nil
}

// JoinPool enrolls the user in an already seeded bracket pool.
func (s *PlayoffService) JoinPool(ctx context.Context, userID, userName, userPicture, seriesID string) (playoff.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.JoinPool")
	defer span.End()

	userID = strings.TrimSpace(userID)
	seriesID = strings.TrimSpace(seriesID)
	if userID == "" || seriesID == "" {
		return playoff.Member{}, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}

	pool, exists, err := s.playoffRepo.GetPool(ctx, seriesID)
	if err != nil {
		return playoff.Member{}, fmt.Errorf("get playoff pool: %w", err)
	}
	if !exists {
		return playoff.Member{}, fmt.Errorf("%w: bracket is not seeded yet", ErrNotFound)
	}
	if _, joined := pool.MemberByUser(userID); joined {
		return playoff.Member{}, fmt.Errorf("%w: you already joined this pool", ErrInvalidInput)
	}

	member := playoff.Member{
		UserID:      userID,
		UserName:    strings.TrimSpace(userName),
		UserPicture: strings.TrimSpace(userPicture),
		JoinedAt:    s.now().UTC(),
	}
	if err := s.playoffRepo.AddMember(ctx, seriesID, member); err != nil {
		return playoff.Member{}, fmt.Errorf("add playoff member: %w", err)
	}
	return member, nil
}

// SubmitPicks saves a batch of bracket picks. Partial batches are kept as a
// draft; the returned bool reports whether the stage is now fully covered.
func (s *PlayoffService) SubmitPicks(ctx context.Context, input SubmitPlayoffPicksInput) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.SubmitPicks")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	if input.UserID == "" || input.SeriesID == "" {
		return false, fmt.Errorf("%w: user id and series id are required", ErrInvalidInput)
	}
	if input.Stage != playoff.StageOne && input.Stage != playoff.StageTwo {
		return false, fmt.Errorf("%w: unknown stage: %s", ErrInvalidInput, input.Stage)
	}
	if len(input.Picks) == 0 {
		return false, fmt.Errorf("%w: at least one pick is required", ErrInvalidInput)
	}

	pool, exists, err := s.playoffRepo.GetPool(ctx, input.SeriesID)
	if err != nil {
		return false, fmt.Errorf("get playoff pool: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("%w: bracket is not seeded yet", ErrNotFound)
	}
	member, joined := pool.MemberByUser(input.UserID)
	if !joined {
		return false, fmt.Errorf("%w: you are not a member of this pool", ErrUnauthorized)
	}

	now := s.now().UTC()
	picks := make([]playoff.Pick, 0, len(input.Picks))
	for _, p := range input.Picks {
		p.PickedWinnerID = strings.ToLower(strings.TrimSpace(p.PickedWinnerID))
		p.PickedAt = now

		game, ok := pool.GameByID(p.GameID)
		if !ok {
			return false, fmt.Errorf("%w: unknown game: %s", ErrInvalidInput, p.GameID)
		}
		p.Round = game.Round
		if err := p.Validate(); err != nil {
			return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := playoff.ValidatePick(game, p); err != nil {
			return false, mapPlayoffError(err)
		}
		picks = append(picks, p)
	}

	if err := s.playoffRepo.UpsertPicks(ctx, input.SeriesID, input.UserID, picks); err != nil {
		return false, fmt.Errorf("upsert playoff picks: %w", err)
	}

	merged := mergePicks(member.Picks, picks)
	return playoff.StageComplete(input.Stage, merged, pool.Games), nil
}

// ReportGameResult records a final score, advances the bracket, and grades
// every member's pick on the finished game.
func (s *PlayoffService) ReportGameResult(ctx context.Context, input ReportPlayoffGameInput) (playoff.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.ReportGameResult")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	input.GameID = strings.TrimSpace(input.GameID)
	if input.UserID == "" || input.SeriesID == "" || input.GameID == "" {
		return playoff.Game{}, fmt.Errorf("%w: user id, series id, and game id are required", ErrInvalidInput)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return playoff.Game{}, fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}
	if input.HomeScore == input.AwayScore {
		return playoff.Game{}, fmt.Errorf("%w: playoff games cannot end in a tie", ErrInvalidInput)
	}

	item, err := s.requirePlayoffSeries(ctx, input.SeriesID)
	if err != nil {
		return playoff.Game{}, err
	}
	if !item.IsAdmin(input.UserID) {
		return playoff.Game{}, fmt.Errorf("%w: only an admin can report game results", ErrUnauthorized)
	}

	pool, exists, err := s.playoffRepo.GetPool(ctx, input.SeriesID)
	if err != nil {
		return playoff.Game{}, fmt.Errorf("get playoff pool: %w", err)
	}
	if !exists {
		return playoff.Game{}, fmt.Errorf("%w: bracket is not seeded yet", ErrNotFound)
	}

	game, ok := pool.GameByID(input.GameID)
	if !ok {
		return playoff.Game{}, fmt.Errorf("%w: unknown game: %s", ErrInvalidInput, input.GameID)
	}
	if !game.IsResolved() {
		return playoff.Game{}, fmt.Errorf("%w: game participants are not yet determined", ErrInvalidInput)
	}

	home, away := input.HomeScore, input.AwayScore
	game.HomeScore = &home
	game.AwayScore = &away
	game.IsComplete = true
	if home > away {
		game.WinnerID = game.HomeTeamID
	} else {
		game.WinnerID = game.AwayTeamID
	}

	for i := range pool.Games {
		if pool.Games[i].ID == game.ID {
			pool.Games[i] = game
			break
		}
	}
	advanced, err := advanceRounds(pool)
	if err != nil {
		return playoff.Game{}, fmt.Errorf("advance bracket: %w", err)
	}
	if err := s.playoffRepo.UpsertGames(ctx, input.SeriesID, advanced); err != nil {
		return playoff.Game{}, fmt.Errorf("upsert playoff games: %w", err)
	}

	for _, m := range pool.Members {
		results := playoff.ScoreMember(m, advanced)
		if len(results) == 0 {
			continue
		}
		if err := s.playoffRepo.AppendResults(ctx, input.SeriesID, m.UserID, results); err != nil {
			return playoff.Game{}, fmt.Errorf("append playoff results user=%s: %w", m.UserID, err)
		}
	}
	return game, nil
}

// Standings returns the ranked leaderboard for a bracket pool.
func (s *PlayoffService) Standings(ctx context.Context, userID, seriesID string) ([]playoff.StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.Standings")
	defer span.End()

	pool, err := s.GetPool(ctx, userID, seriesID)
	if err != nil {
		return nil, err
	}
	return playoff.Standings(pool.Members, pool.Games), nil
}

func (s *PlayoffService) requirePlayoffSeries(ctx context.Context, seriesID string) (series.Series, error) {
	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return series.Series{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Series{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if item.GameType != series.GameTypePlayoffPool {
		return series.Series{}, fmt.Errorf("%w: series is not a playoff pool", ErrInvalidInput)
	}
	if !item.IsActive {
		return series.Series{}, fmt.Errorf("%w: series is no longer active", ErrInvalidInput)
	}
	return item, nil
}

// pendingDivisionalGames builds the four divisional slots before the wild
// card round finishes. Reseeding means a slot's participants depend on which
// seeds survive, not on a single feeder game, so both sides stay TBD with no
// source until GenerateDivisionalGames replaces them.
func pendingDivisionalGames() ([]playoff.Game, error) {
	games := make([]playoff.Game, 0, 4)
	for n := 1; n <= 4; n++ {
		conf := playoff.ConferenceAFC
		if n > 2 {
			conf = playoff.ConferenceNFC
		}
		games = append(games, playoff.Game{
			ID:         fmt.Sprintf("div-%d", n),
			Round:      playoff.RoundDivisional,
			Conference: conf,
			GameNumber: n,
		})
	}
	return games, nil
}

// advanceRounds fills TBD slots from completed feeders, then reseeds the
// next round's matchups once every game of a round has finished. Divisional
// and conference pairings depend on which seeds survive, so they cannot be
// fixed ahead of time the way the Super Bowl slot can.
func advanceRounds(p playoff.Pool) ([]playoff.Game, error) {
	games := playoff.AdvanceBracket(p.Games)

	wildCard := playoff.GamesByRound(games, playoff.RoundWildCard)
	if roundComplete(wildCard) {
		winners := playoff.WildCardWinners{
			AFC: winnersByGameNumber(wildCard, 1, 3),
			NFC: winnersByGameNumber(wildCard, 4, 6),
		}
		divisional, err := playoff.GenerateDivisionalGames(p.Seeding, winners)
		if err != nil {
			return nil, err
		}
		games = adoptMatchups(games, divisional)
	}

	divisional := playoff.GamesByRound(games, playoff.RoundDivisional)
	if roundComplete(divisional) {
		winners := playoff.DivisionalWinners{
			AFC: winnersByGameNumber(divisional, 1, 2),
			NFC: winnersByGameNumber(divisional, 3, 4),
		}
		conference, err := playoff.GenerateConferenceGames(p.Seeding, winners)
		if err != nil {
			return nil, err
		}
		games = adoptMatchups(games, conference)
	}

	games = playoff.AdvanceBracket(games)

	// Feeder sources fill championship slots in completion order, which can
	// land the lower seed at home. Swap before kickoff if so.
	for i := range games {
		g := games[i]
		if g.Round != playoff.RoundConference || !g.IsResolved() || g.IsComplete {
			continue
		}
		seeds := p.Seeding.AFC
		if g.Conference == playoff.ConferenceNFC {
			seeds = p.Seeding.NFC
		}
		if seeds.SeedOf(g.AwayTeamID) < seeds.SeedOf(g.HomeTeamID) {
			games[i].AwayTeamID, games[i].HomeTeamID = g.HomeTeamID, g.AwayTeamID
		}
	}

	return games, nil
}

func roundComplete(games []playoff.Game) bool {
	if len(games) == 0 {
		return false
	}
	for _, g := range games {
		if !g.IsComplete || g.WinnerID == "" {
			return false
		}
	}
	return true
}

func winnersByGameNumber(games []playoff.Game, from, to int) []string {
	winners := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		for _, g := range games {
			if g.GameNumber == n && g.WinnerID != "" {
				winners = append(winners, g.WinnerID)
				break
			}
		}
	}
	return winners
}

// adoptMatchups copies freshly generated participants into still-open bracket
// slots. Slots that already have both teams keep their state so replays of a
// report cannot rewrite settled matchups.
func adoptMatchups(games, generated []playoff.Game) []playoff.Game {
	out := append([]playoff.Game(nil), games...)
	for _, gen := range generated {
		for i := range out {
			if out[i].ID != gen.ID {
				continue
			}
			if out[i].IsResolved() {
				break
			}
			out[i].AwayTeamID = gen.AwayTeamID
			out[i].HomeTeamID = gen.HomeTeamID
			out[i].AwayTeamSource = nil
			out[i].HomeTeamSource = nil
			break
		}
	}
	return out
}

func mergePicks(existing, updates []playoff.Pick) []playoff.Pick {
	merged := append([]playoff.Pick(nil), existing...)
	for _, u := range updates {
		replaced := false
		for i := range merged {
			if merged[i].GameID == u.GameID {
				merged[i] = u
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, u)
		}
	}
	return merged
}

func mapPlayoffError(err error) error {
	switch {
	case errors.Is(err, playoff.ErrInvalidMargin),
		errors.Is(err, playoff.ErrGameUnresolved),
		errors.Is(err, playoff.ErrUnknownGame),
		errors.Is(err, playoff.ErrTeamNotInGame),
		errors.Is(err, playoff.ErrGameAlreadyOver):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return err
	}
}
