package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req submitPickRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pick, err := h.pickService.SubmitPick(ctx, usecase.SubmitPickInput{
		UserID:   principal.UserID,
		SeriesID: seriesID,
		MemberID: req.MemberID,
		TeamID:   req.TeamID,
		OnBehalf: req.OnBehalf,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit pick failed", "series_id", seriesID, "member_id", req.MemberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(ctx, pick))
}

func (h *Handler) GetPickStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPickStatus")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	statuses, err := h.pickService.Status(ctx, principal.UserID, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pick status failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pickStatusDTO, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, pickStatusToDTO(ctx, st))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWeekSchedule")
	defer span.End()

	sport := schedule.Sport(strings.ToLower(strings.TrimSpace(r.PathValue("sport"))))
	weekNumber, err := strconv.Atoi(strings.TrimSpace(r.PathValue("week")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be a number", usecase.ErrInvalidInput))
		return
	}

	week, err := h.pickService.WeekSchedule(ctx, sport, weekNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get week schedule failed", "sport", sport, "week", weekNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekToDTO(ctx, week))
}

type submitPickRequest struct {
	MemberID string `json:"memberId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	OnBehalf bool   `json:"onBehalf"`
}

type pickStatusDTO struct {
	SeriesID          string   `json:"seriesId"`
	MemberID          string   `json:"memberId"`
	LivesRemaining    int      `json:"livesRemaining"`
	IsEliminated      bool     `json:"isEliminated"`
	UsedTeams         []string `json:"usedTeams"`
	HasPickedThisWeek bool     `json:"hasPickedThisWeek"`
	CurrentPick       *pickDTO `json:"currentPick,omitempty"`
	Deadline          string   `json:"deadline"`
	CanPick           bool     `json:"canPick"`
}

type scheduleGameDTO struct {
	HomeTeamID    string  `json:"homeTeamId"`
	AwayTeamID    string  `json:"awayTeamId"`
	KickoffAt     string  `json:"kickoffAt"`
	HomeSpread    float64 `json:"homeSpread"`
	OverUnder     float64 `json:"overUnder"`
	HomeMoneyline int     `json:"homeMoneyline"`
	AwayMoneyline int     `json:"awayMoneyline"`
	IsComplete    bool    `json:"isComplete"`
	HomeScore     *int    `json:"homeScore,omitempty"`
	AwayScore     *int    `json:"awayScore,omitempty"`
}

type weekDTO struct {
	Sport    string            `json:"sport"`
	Number   int               `json:"number"`
	Season   int               `json:"season"`
	Games    []scheduleGameDTO `json:"games"`
	ByeTeams []string          `json:"byeTeams"`
}

func pickStatusToDTO(ctx context.Context, st survivor.Status) pickStatusDTO {
	ctx, span := startSpan(ctx, "httpapi.pickStatusToDTO")
	defer span.End()

	out := pickStatusDTO{
		SeriesID:          st.SeriesID,
		MemberID:          st.MemberID,
		LivesRemaining:    st.LivesRemaining,
		IsEliminated:      st.IsEliminated,
		UsedTeams:         append([]string(nil), st.UsedTeams...),
		HasPickedThisWeek: st.HasPickedThisWeek,
		Deadline:          st.Deadline.UTC().Format(time.RFC3339),
		CanPick:           st.CanPick,
	}
	if st.CurrentPick != nil {
		dto := pickToDTO(ctx, *st.CurrentPick)
		out.CurrentPick = &dto
	}
	return out
}

func weekToDTO(ctx context.Context, week schedule.Week) weekDTO {
	_, span := startSpan(ctx, "httpapi.weekToDTO")
	defer span.End()

	games := make([]scheduleGameDTO, 0, len(week.Games))
	for _, g := range week.Games {
		games = append(games, scheduleGameDTO{
			HomeTeamID:    g.HomeTeamID,
			AwayTeamID:    g.AwayTeamID,
			KickoffAt:     g.KickoffAt.UTC().Format(time.RFC3339),
			HomeSpread:    g.HomeSpread,
			OverUnder:     g.OverUnder,
			HomeMoneyline: g.HomeMoneyline,
			AwayMoneyline: g.AwayMoneyline,
			IsComplete:    g.IsComplete,
			HomeScore:     g.HomeScore,
			AwayScore:     g.AwayScore,
		})
	}

	return weekDTO{
		Sport:    string(week.Sport),
		Number:   week.Number,
		Season:   week.Season,
		Games:    games,
		ByeTeams: append([]string(nil), week.ByeTeams...),
	}
}
