package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
)

type PlayoffRepository struct {
	db *sqlx.DB
}

func NewPlayoffRepository(db *sqlx.DB) *PlayoffRepository {
	return &PlayoffRepository{db: db}
}

func (r *PlayoffRepository) GetPool(ctx context.Context, seriesID string) (playoff.Pool, bool, error) {
	var row playoffPoolTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT series_id, season, afc_seeds, nfc_seeds FROM playoff_pools WHERE series_id = $1`, seriesID)
	if err != nil {
		if isNotFound(err) {
			return playoff.Pool{}, false, nil
		}
		return playoff.Pool{}, false, fmt.Errorf("get playoff pool: %w", err)
	}

	pool := playoff.Pool{
		SeriesID: seriesID,
		Season:   row.Season,
		Seeding: playoff.Seeding{
			AFC: seedingFromArray(row.AFCSeeds),
			NFC: seedingFromArray(row.NFCSeeds),
		},
	}

	var gameRows []playoffGameTableModel
	gameQuery := `SELECT series_id, game_id, round, conference, game_number, away_team_id,
home_team_id, away_source_round, away_source_game, away_source_winner,
home_source_round, home_source_game, home_source_winner, kickoff_at,
is_complete, home_score, away_score, winner_id
FROM playoff_games WHERE series_id = $1 ORDER BY round, game_number`
	if err := r.db.SelectContext(ctx, &gameRows, gameQuery, seriesID); err != nil {
		return playoff.Pool{}, false, fmt.Errorf("list playoff games: %w", err)
	}
	pool.Games = make([]playoff.Game, 0, len(gameRows))
	for _, row := range gameRows {
		pool.Games = append(pool.Games, playoffGameFromRow(row))
	}

	var memberRows []playoffMemberTableModel
	memberQuery := `SELECT series_id, user_id, user_name, user_picture, joined_at
FROM playoff_members WHERE series_id = $1 ORDER BY joined_at, user_id`
	if err := r.db.SelectContext(ctx, &memberRows, memberQuery, seriesID); err != nil {
		return playoff.Pool{}, false, fmt.Errorf("list playoff members: %w", err)
	}

	var pickRows []playoffPickTableModel
	pickQuery := `SELECT series_id, user_id, game_id, round, picked_winner_id, predicted_margin, picked_at
FROM playoff_picks WHERE series_id = $1 ORDER BY user_id, game_id`
	if err := r.db.SelectContext(ctx, &pickRows, pickQuery, seriesID); err != nil {
		return playoff.Pool{}, false, fmt.Errorf("list playoff picks: %w", err)
	}
	picksByUser := make(map[string][]playoff.Pick, len(memberRows))
	for _, row := range pickRows {
		picksByUser[row.UserID] = append(picksByUser[row.UserID], playoffPickFromRow(row))
	}

	var resultRows []playoffResultTableModel
	resultQuery := `SELECT series_id, user_id, game_id, picked_winner_id, predicted_margin,
actual_winner_id, actual_margin, winner_points, margin_points, total_points
FROM playoff_results WHERE series_id = $1 ORDER BY user_id, game_id`
	if err := r.db.SelectContext(ctx, &resultRows, resultQuery, seriesID); err != nil {
		return playoff.Pool{}, false, fmt.Errorf("list playoff results: %w", err)
	}
	resultsByUser := make(map[string][]playoff.Result, len(memberRows))
	for _, row := range resultRows {
		resultsByUser[row.UserID] = append(resultsByUser[row.UserID], playoffResultFromRow(row))
	}

	pool.Members = make([]playoff.Member, 0, len(memberRows))
	for _, row := range memberRows {
		pool.Members = append(pool.Members, playoff.Member{
			UserID:      row.UserID,
			UserName:    row.UserName,
			UserPicture: row.UserPicture,
			JoinedAt:    row.JoinedAt,
			Picks:       picksByUser[row.UserID],
			Results:     resultsByUser[row.UserID],
		})
	}
	return pool, true, nil
}

func (r *PlayoffRepository) CreatePool(ctx context.Context, p playoff.Pool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO playoff_pools (series_id, season, afc_seeds, nfc_seeds) VALUES ($1, $2, $3, $4)`,
		p.SeriesID, p.Season, pq.StringArray(p.Seeding.AFC[:]), pq.StringArray(p.Seeding.NFC[:]))
	if err != nil {
		return fmt.Errorf("create playoff pool: %w", err)
	}
	if err := r.UpsertGames(ctx, p.SeriesID, p.Games); err != nil {
		return err
	}
	for _, m := range p.Members {
		if err := r.AddMember(ctx, p.SeriesID, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *PlayoffRepository) UpsertGames(ctx context.Context, seriesID string, games []playoff.Game) error {
	query := `INSERT INTO playoff_games (
    series_id, game_id, round, conference, game_number, away_team_id, home_team_id,
    away_source_round, away_source_game, away_source_winner,
    home_source_round, home_source_game, home_source_winner,
    kickoff_at, is_complete, home_score, away_score, winner_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (series_id, game_id) DO UPDATE SET
    away_team_id = EXCLUDED.away_team_id,
    home_team_id = EXCLUDED.home_team_id,
    kickoff_at = EXCLUDED.kickoff_at,
    is_complete = EXCLUDED.is_complete,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    winner_id = EXCLUDED.winner_id`
	for _, g := range games {
		awayRound, awayGame, awayWinner := sourceToColumns(g.AwayTeamSource)
		homeRound, homeGame, homeWinner := sourceToColumns(g.HomeTeamSource)
		_, err := r.db.ExecContext(ctx, query,
			seriesID, g.ID, string(g.Round), string(g.Conference), g.GameNumber,
			g.AwayTeamID, g.HomeTeamID,
			awayRound, awayGame, awayWinner,
			homeRound, homeGame, homeWinner,
			g.KickoffAt, g.IsComplete, g.HomeScore, g.AwayScore, g.WinnerID)
		if err != nil {
			return fmt.Errorf("upsert playoff game %s: %w", g.ID, err)
		}
	}
	return nil
}

func (r *PlayoffRepository) AddMember(ctx context.Context, seriesID string, m playoff.Member) error {
	query := `INSERT INTO playoff_members (series_id, user_id, user_name, user_picture, joined_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, seriesID, m.UserID, m.UserName, m.UserPicture, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("add playoff member: %w", err)
	}
	if err := r.UpsertPicks(ctx, seriesID, m.UserID, m.Picks); err != nil {
		return err
	}
	return r.AppendResults(ctx, seriesID, m.UserID, m.Results)
}

func (r *PlayoffRepository) UpsertPicks(ctx context.Context, seriesID, userID string, picks []playoff.Pick) error {
	query := `INSERT INTO playoff_picks (
    series_id, user_id, game_id, round, picked_winner_id, predicted_margin, picked_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (series_id, user_id, game_id) DO UPDATE SET
    picked_winner_id = EXCLUDED.picked_winner_id,
    predicted_margin = EXCLUDED.predicted_margin,
    picked_at = EXCLUDED.picked_at`
	for _, p := range picks {
		_, err := r.db.ExecContext(ctx, query,
			seriesID, userID, p.GameID, string(p.Round), p.PickedWinnerID, p.PredictedMargin, p.PickedAt)
		if err != nil {
			return fmt.Errorf("upsert playoff pick %s: %w", p.GameID, err)
		}
	}
	return nil
}

func (r *PlayoffRepository) AppendResults(ctx context.Context, seriesID, userID string, results []playoff.Result) error {
	query := `INSERT INTO playoff_results (
    series_id, user_id, game_id, picked_winner_id, predicted_margin,
    actual_winner_id, actual_margin, winner_points, margin_points, total_points
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (series_id, user_id, game_id) DO NOTHING`
	for _, res := range results {
		_, err := r.db.ExecContext(ctx, query,
			seriesID, userID, res.GameID, res.PickedWinnerID, res.PredictedMargin,
			res.ActualWinnerID, res.ActualMargin, res.WinnerPoints, res.MarginPoints, res.TotalPoints)
		if err != nil {
			return fmt.Errorf("append playoff result %s: %w", res.GameID, err)
		}
	}
	return nil
}
