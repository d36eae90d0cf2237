package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

const seriesColumns = `id, name, description, created_by, created_at, sport, competition, game_type,
season, current_week, is_active, prize_value, show_prize_value, starting_week, lives_per_player,
max_team_uses, tie_counts_as_win, allow_multiple_entries, max_entries_per_player, deleted_at`

type SeriesRepository struct {
	db *sqlx.DB
}

func NewSeriesRepository(db *sqlx.DB) *SeriesRepository {
	return &SeriesRepository{db: db}
}

func (r *SeriesRepository) GetByID(ctx context.Context, seriesID string) (series.Series, bool, error) {
	var row seriesTableModel
	query := `SELECT ` + seriesColumns + ` FROM series WHERE id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &row, query, seriesID); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, fmt.Errorf("get series: %w", err)
	}

	s := seriesFromRow(row)
	if err := r.loadAggregate(ctx, &s); err != nil {
		return series.Series{}, false, err
	}
	return s, true, nil
}

func (r *SeriesRepository) ListByUser(ctx context.Context, userID string) ([]series.Series, error) {
	var rows []seriesTableModel
	query := `SELECT ` + seriesColumns + ` FROM series
WHERE deleted_at IS NULL
  AND id IN (SELECT series_id FROM series_members WHERE user_id = $1)
ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list series by user: %w", err)
	}
	return r.assembleAll(ctx, rows)
}

func (r *SeriesRepository) ListActive(ctx context.Context) ([]series.Series, error) {
	var rows []seriesTableModel
	query := `SELECT ` + seriesColumns + ` FROM series
WHERE deleted_at IS NULL AND is_active ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list active series: %w", err)
	}
	return r.assembleAll(ctx, rows)
}

func (r *SeriesRepository) Create(ctx context.Context, s series.Series) error {
	query := `INSERT INTO series (
    id, name, description, created_by, created_at, sport, competition, game_type,
    season, current_week, is_active, prize_value, show_prize_value, starting_week,
    lives_per_player, max_team_uses, tie_counts_as_win, allow_multiple_entries,
    max_entries_per_player
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Description, s.CreatedBy, s.CreatedAt, string(s.Sport),
		s.Competition, string(s.GameType), s.Season, s.CurrentWeek, s.IsActive,
		s.PrizeValue, s.ShowPrizeValue, s.Settings.StartingWeek,
		s.Settings.LivesPerPlayer, s.Settings.MaxTeamUses, s.Settings.TieCountsAsWin,
		s.Settings.AllowMultipleEntries, s.Settings.MaxEntriesPerPlayer)
	if err != nil {
		return fmt.Errorf("create series: %w", err)
	}

	for _, m := range s.Members {
		if err := r.AddMember(ctx, s.ID, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *SeriesRepository) SetActive(ctx context.Context, seriesID string, active bool) error {
	query := `UPDATE series SET is_active = $2,
deleted_at = CASE WHEN $2 THEN NULL ELSE now() END
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, seriesID, active)
	if err != nil {
		return fmt.Errorf("set series active: %w", err)
	}
	return requireRow(res, "series", seriesID)
}

func (r *SeriesRepository) UpdateSettings(ctx context.Context, seriesID string, settings series.Settings, prizeValue int64, showPrize bool) error {
	query := `UPDATE series SET
    starting_week = $2, lives_per_player = $3, max_team_uses = $4,
    tie_counts_as_win = $5, allow_multiple_entries = $6, max_entries_per_player = $7,
    prize_value = $8, show_prize_value = $9
WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, seriesID,
		settings.StartingWeek, settings.LivesPerPlayer, settings.MaxTeamUses,
		settings.TieCountsAsWin, settings.AllowMultipleEntries,
		settings.MaxEntriesPerPlayer, prizeValue, showPrize)
	if err != nil {
		return fmt.Errorf("update series settings: %w", err)
	}
	return requireRow(res, "series", seriesID)
}

func (r *SeriesRepository) SetCurrentWeek(ctx context.Context, seriesID string, week int) error {
	query := `UPDATE series SET current_week = $2 WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, seriesID, week)
	if err != nil {
		return fmt.Errorf("set series current week: %w", err)
	}
	return requireRow(res, "series", seriesID)
}

func (r *SeriesRepository) AddMember(ctx context.Context, seriesID string, m series.Member) error {
	query := `INSERT INTO series_members (
    id, series_id, user_id, user_name, user_picture, role, entry,
    lives_remaining, is_eliminated, joined_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, seriesID, m.UserID, m.UserName, m.UserPicture, string(m.Role),
		m.Entry, m.LivesRemaining, m.IsEliminated, m.JoinedAt)
	if err != nil {
		return fmt.Errorf("add series member: %w", err)
	}

	for _, p := range m.Picks {
		if err := r.UpsertPick(ctx, seriesID, m.ID, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *SeriesRepository) RemoveMember(ctx context.Context, seriesID, memberID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM series_members WHERE series_id = $1 AND id = $2`, seriesID, memberID)
	if err != nil {
		return fmt.Errorf("remove series member: %w", err)
	}
	return requireRow(res, "series member", memberID)
}

func (r *SeriesRepository) UpdateMemberStanding(ctx context.Context, seriesID, memberID string, livesRemaining int, eliminated bool) error {
	query := `UPDATE series_members SET lives_remaining = $3, is_eliminated = $4
WHERE series_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, seriesID, memberID, livesRemaining, eliminated)
	if err != nil {
		return fmt.Errorf("update member standing: %w", err)
	}
	return requireRow(res, "series member", memberID)
}

func (r *SeriesRepository) UpsertPick(ctx context.Context, seriesID, memberID string, p series.Pick) error {
	query := `INSERT INTO picks (series_id, member_id, week, team_id, result, is_auto_pick, picked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (series_id, member_id, week) DO UPDATE SET
    team_id = EXCLUDED.team_id,
    result = EXCLUDED.result,
    is_auto_pick = EXCLUDED.is_auto_pick,
    picked_at = EXCLUDED.picked_at`
	_, err := r.db.ExecContext(ctx, query,
		seriesID, memberID, p.Week, p.TeamID, string(p.Result), p.IsAutoPick, p.PickedAt)
	if err != nil {
		return fmt.Errorf("upsert pick: %w", err)
	}
	return nil
}

func (r *SeriesRepository) SetPickResult(ctx context.Context, seriesID, memberID string, week int, result series.PickResult) error {
	query := `UPDATE picks SET result = $4
WHERE series_id = $1 AND member_id = $2 AND week = $3`
	res, err := r.db.ExecContext(ctx, query, seriesID, memberID, week, string(result))
	if err != nil {
		return fmt.Errorf("set pick result: %w", err)
	}
	return requireRow(res, "pick", fmt.Sprintf("%s/%s/week %d", seriesID, memberID, week))
}

func (r *SeriesRepository) CreateInvitation(ctx context.Context, inv series.Invitation) error {
	query := `INSERT INTO invitations (id, series_id, email, invited_by, invited_at, status)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID, inv.SeriesID, inv.Email, inv.InvitedBy, inv.InvitedAt, string(inv.Status))
	if err != nil {
		return fmt.Errorf("create invitation: %w", err)
	}
	return nil
}

func (r *SeriesRepository) GetInvitation(ctx context.Context, invitationID string) (series.Invitation, bool, error) {
	var row invitationTableModel
	query := `SELECT id, series_id, email, invited_by, invited_at, status
FROM invitations WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, invitationID); err != nil {
		if isNotFound(err) {
			return series.Invitation{}, false, nil
		}
		return series.Invitation{}, false, fmt.Errorf("get invitation: %w", err)
	}
	return invitationFromRow(row), true, nil
}

func (r *SeriesRepository) SetInvitationStatus(ctx context.Context, invitationID string, status series.InvitationStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET status = $2 WHERE id = $1`, invitationID, string(status))
	if err != nil {
		return fmt.Errorf("set invitation status: %w", err)
	}
	return requireRow(res, "invitation", invitationID)
}

func (r *SeriesRepository) assembleAll(ctx context.Context, rows []seriesTableModel) ([]series.Series, error) {
	out := make([]series.Series, 0, len(rows))
	for _, row := range rows {
		s := seriesFromRow(row)
		if err := r.loadAggregate(ctx, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// loadAggregate fills members, their picks and the invitation list for one
// series row.
func (r *SeriesRepository) loadAggregate(ctx context.Context, s *series.Series) error {
	var memberRows []memberTableModel
	memberQuery := `SELECT id, series_id, user_id, user_name, user_picture, role, entry,
lives_remaining, is_eliminated, joined_at
FROM series_members WHERE series_id = $1 ORDER BY joined_at, id`
	if err := r.db.SelectContext(ctx, &memberRows, memberQuery, s.ID); err != nil {
		return fmt.Errorf("list series members: %w", err)
	}

	var pickRows []pickTableModel
	pickQuery := `SELECT series_id, member_id, week, team_id, result, is_auto_pick, picked_at
FROM picks WHERE series_id = $1 ORDER BY member_id, week`
	if err := r.db.SelectContext(ctx, &pickRows, pickQuery, s.ID); err != nil {
		return fmt.Errorf("list series picks: %w", err)
	}
	picksByMember := make(map[string][]series.Pick, len(memberRows))
	for _, row := range pickRows {
		picksByMember[row.MemberID] = append(picksByMember[row.MemberID], pickFromRow(row))
	}

	s.Members = make([]series.Member, 0, len(memberRows))
	for _, row := range memberRows {
		m := memberFromRow(row)
		m.Picks = picksByMember[row.ID]
		s.Members = append(s.Members, m)
	}

	var invRows []invitationTableModel
	invQuery := `SELECT id, series_id, email, invited_by, invited_at, status
FROM invitations WHERE series_id = $1 ORDER BY invited_at, id`
	if err := r.db.SelectContext(ctx, &invRows, invQuery, s.ID); err != nil {
		return fmt.Errorf("list series invitations: %w", err)
	}
	s.Invitations = make([]series.Invitation, 0, len(invRows))
	for _, row := range invRows {
		s.Invitations = append(s.Invitations, invitationFromRow(row))
	}
	return nil
}
