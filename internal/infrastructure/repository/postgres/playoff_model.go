package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
)

type playoffPoolTableModel struct {
	SeriesID string         `db:"series_id"`
	Season   int            `db:"season"`
	AFCSeeds pq.StringArray `db:"afc_seeds"`
	NFCSeeds pq.StringArray `db:"nfc_seeds"`
}

func seedingFromArray(values pq.StringArray) playoff.ConferenceSeeding {
	var seeds playoff.ConferenceSeeding
	for i := 0; i < len(seeds) && i < len(values); i++ {
		seeds[i] = values[i]
	}
	return seeds
}

type playoffGameTableModel struct {
	SeriesID         string     `db:"series_id"`
	GameID           string     `db:"game_id"`
	Round            string     `db:"round"`
	Conference       string     `db:"conference"`
	GameNumber       int        `db:"game_number"`
	AwayTeamID       string     `db:"away_team_id"`
	HomeTeamID       string     `db:"home_team_id"`
	AwaySourceRound  *string    `db:"away_source_round"`
	AwaySourceGame   *int       `db:"away_source_game"`
	AwaySourceWinner *bool      `db:"away_source_winner"`
	HomeSourceRound  *string    `db:"home_source_round"`
	HomeSourceGame   *int       `db:"home_source_game"`
	HomeSourceWinner *bool      `db:"home_source_winner"`
	KickoffAt        *time.Time `db:"kickoff_at"`
	IsComplete       bool       `db:"is_complete"`
	HomeScore        *int       `db:"home_score"`
	AwayScore        *int       `db:"away_score"`
	WinnerID         string     `db:"winner_id"`
}

type playoffMemberTableModel struct {
	SeriesID    string    `db:"series_id"`
	UserID      string    `db:"user_id"`
	UserName    string    `db:"user_name"`
	UserPicture string    `db:"user_picture"`
	JoinedAt    time.Time `db:"joined_at"`
}

type playoffPickTableModel struct {
	SeriesID        string    `db:"series_id"`
	UserID          string    `db:"user_id"`
	GameID          string    `db:"game_id"`
	Round           string    `db:"round"`
	PickedWinnerID  string    `db:"picked_winner_id"`
	PredictedMargin int       `db:"predicted_margin"`
	PickedAt        time.Time `db:"picked_at"`
}

type playoffResultTableModel struct {
	SeriesID        string `db:"series_id"`
	UserID          string `db:"user_id"`
	GameID          string `db:"game_id"`
	PickedWinnerID  string `db:"picked_winner_id"`
	PredictedMargin int    `db:"predicted_margin"`
	ActualWinnerID  string `db:"actual_winner_id"`
	ActualMargin    int    `db:"actual_margin"`
	WinnerPoints    int    `db:"winner_points"`
	MarginPoints    int    `db:"margin_points"`
	TotalPoints     int    `db:"total_points"`
}

func playoffGameFromRow(row playoffGameTableModel) playoff.Game {
	return playoff.Game{
		ID:             row.GameID,
		Round:          playoff.Round(row.Round),
		Conference:     playoff.Conference(row.Conference),
		GameNumber:     row.GameNumber,
		AwayTeamID:     row.AwayTeamID,
		HomeTeamID:     row.HomeTeamID,
		AwayTeamSource: sourceFromColumns(row.AwaySourceRound, row.AwaySourceGame, row.AwaySourceWinner),
		HomeTeamSource: sourceFromColumns(row.HomeSourceRound, row.HomeSourceGame, row.HomeSourceWinner),
		KickoffAt:      row.KickoffAt,
		IsComplete:     row.IsComplete,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		WinnerID:       row.WinnerID,
	}
}

func sourceFromColumns(round *string, game *int, winner *bool) *playoff.TeamSource {
	if round == nil || game == nil || winner == nil {
		return nil
	}
	return &playoff.TeamSource{Round: playoff.Round(*round), GameNumber: *game, IsWinner: *winner}
}

func sourceToColumns(src *playoff.TeamSource) (round *string, game *int, winner *bool) {
	if src == nil {
		return nil, nil, nil
	}
	r := string(src.Round)
	g := src.GameNumber
	w := src.IsWinner
	return &r, &g, &w
}

func playoffPickFromRow(row playoffPickTableModel) playoff.Pick {
	return playoff.Pick{
		GameID:          row.GameID,
		Round:           playoff.Round(row.Round),
		PickedWinnerID:  row.PickedWinnerID,
		PredictedMargin: row.PredictedMargin,
		PickedAt:        row.PickedAt,
	}
}

func playoffResultFromRow(row playoffResultTableModel) playoff.Result {
	return playoff.Result{
		GameID:          row.GameID,
		PickedWinnerID:  row.PickedWinnerID,
		PredictedMargin: row.PredictedMargin,
		ActualWinnerID:  row.ActualWinnerID,
		ActualMargin:    row.ActualMargin,
		WinnerPoints:    row.WinnerPoints,
		MarginPoints:    row.MarginPoints,
		TotalPoints:     row.TotalPoints,
	}
}
