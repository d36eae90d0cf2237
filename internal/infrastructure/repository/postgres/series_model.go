package postgres

import (
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

type seriesTableModel struct {
	ID                   string     `db:"id"`
	Name                 string     `db:"name"`
	Description          string     `db:"description"`
	CreatedBy            string     `db:"created_by"`
	CreatedAt            time.Time  `db:"created_at"`
	Sport                string     `db:"sport"`
	Competition          string     `db:"competition"`
	GameType             string     `db:"game_type"`
	Season               int        `db:"season"`
	CurrentWeek          int        `db:"current_week"`
	IsActive             bool       `db:"is_active"`
	PrizeValue           int64      `db:"prize_value"`
	ShowPrizeValue       bool       `db:"show_prize_value"`
	StartingWeek         int        `db:"starting_week"`
	LivesPerPlayer       int        `db:"lives_per_player"`
	MaxTeamUses          int        `db:"max_team_uses"`
	TieCountsAsWin       bool       `db:"tie_counts_as_win"`
	AllowMultipleEntries bool       `db:"allow_multiple_entries"`
	MaxEntriesPerPlayer  int        `db:"max_entries_per_player"`
	DeletedAt            *time.Time `db:"deleted_at"`
}

type memberTableModel struct {
	ID             string    `db:"id"`
	SeriesID       string    `db:"series_id"`
	UserID         string    `db:"user_id"`
	UserName       string    `db:"user_name"`
	UserPicture    string    `db:"user_picture"`
	Role           string    `db:"role"`
	Entry          int       `db:"entry"`
	LivesRemaining int       `db:"lives_remaining"`
	IsEliminated   bool      `db:"is_eliminated"`
	JoinedAt       time.Time `db:"joined_at"`
}

type pickTableModel struct {
	SeriesID   string    `db:"series_id"`
	MemberID   string    `db:"member_id"`
	Week       int       `db:"week"`
	TeamID     string    `db:"team_id"`
	Result     string    `db:"result"`
	IsAutoPick bool      `db:"is_auto_pick"`
	PickedAt   time.Time `db:"picked_at"`
}

type invitationTableModel struct {
	ID        string    `db:"id"`
	SeriesID  string    `db:"series_id"`
	Email     string    `db:"email"`
	InvitedBy string    `db:"invited_by"`
	InvitedAt time.Time `db:"invited_at"`
	Status    string    `db:"status"`
}

func seriesFromRow(row seriesTableModel) series.Series {
	return series.Series{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt,
		Sport:          schedule.Sport(row.Sport),
		Competition:    row.Competition,
		GameType:       series.GameType(row.GameType),
		Season:         row.Season,
		CurrentWeek:    row.CurrentWeek,
		IsActive:       row.IsActive,
		PrizeValue:     row.PrizeValue,
		ShowPrizeValue: row.ShowPrizeValue,
		Settings: series.Settings{
			StartingWeek:         row.StartingWeek,
			LivesPerPlayer:       row.LivesPerPlayer,
			MaxTeamUses:          row.MaxTeamUses,
			TieCountsAsWin:       row.TieCountsAsWin,
			AllowMultipleEntries: row.AllowMultipleEntries,
			MaxEntriesPerPlayer:  row.MaxEntriesPerPlayer,
			TieSet:               true,
		},
	}
}

func memberFromRow(row memberTableModel) series.Member {
	return series.Member{
		ID:             row.ID,
		UserID:         row.UserID,
		UserName:       row.UserName,
		UserPicture:    row.UserPicture,
		Role:           series.Role(row.Role),
		Entry:          row.Entry,
		LivesRemaining: row.LivesRemaining,
		IsEliminated:   row.IsEliminated,
		JoinedAt:       row.JoinedAt,
	}
}

func pickFromRow(row pickTableModel) series.Pick {
	return series.Pick{
		Week:       row.Week,
		TeamID:     row.TeamID,
		Result:     series.PickResult(row.Result),
		IsAutoPick: row.IsAutoPick,
		PickedAt:   row.PickedAt,
	}
}

func invitationFromRow(row invitationTableModel) series.Invitation {
	return series.Invitation{
		ID:        row.ID,
		SeriesID:  row.SeriesID,
		Email:     row.Email,
		InvitedBy: row.InvitedBy,
		InvitedAt: row.InvitedAt,
		Status:    series.InvitationStatus(row.Status),
	}
}
