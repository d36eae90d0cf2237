package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req createSeriesRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.seriesService.CreateSeries(ctx, usecase.CreateSeriesInput{
		UserID:      principal.UserID,
		UserName:    principal.Name,
		UserPicture: principal.Picture,
		Name:        req.Name,
		Description: req.Description,
		Sport:       req.Sport,
		Competition: req.Competition,
		GameType:    req.GameType,
		Season:      req.Season,
		Settings:    req.Settings.toDomain(),
		PrizeValue:  req.PrizeValue,
		ShowPrize:   req.ShowPrizeValue,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create series failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seriesToDTO(ctx, created))
}

func (h *Handler) ListMySeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMySeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	items, err := h.seriesService.ListMySeries(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list series failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]seriesDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seriesToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	item, err := h.seriesService.GetSeries(ctx, principal.UserID, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get series failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesToDTO(ctx, item))
}

func (h *Handler) JoinSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinSeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	member, err := h.seriesService.JoinSeries(ctx, principal.UserID, principal.Name, principal.Picture, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "join series failed", "series_id", seriesID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(ctx, member))
}

func (h *Handler) LeaveSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeaveSeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	memberID := strings.TrimSpace(r.PathValue("memberID"))
	if err := h.seriesService.LeaveSeries(ctx, principal.UserID, seriesID, memberID); err != nil {
		h.logger.WarnContext(ctx, "leave series failed", "series_id", seriesID, "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) DeactivateSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeactivateSeries")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	if err := h.seriesService.DeactivateSeries(ctx, principal.UserID, seriesID); err != nil {
		h.logger.WarnContext(ctx, "deactivate series failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deactivated"})
}

func (h *Handler) UpdateSeriesSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeriesSettings")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req updateSeriesSettingsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	settings := req.Settings.toDomain()
	if settings == nil {
		settings = &series.Settings{}
	}
	if err := h.seriesService.UpdateSettings(ctx, usecase.UpdateSeriesSettingsInput{
		UserID:     principal.UserID,
		SeriesID:   seriesID,
		Settings:   *settings,
		PrizeValue: req.PrizeValue,
		ShowPrize:  req.ShowPrizeValue,
	}); err != nil {
		h.logger.WarnContext(ctx, "update series settings failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) AdvanceSeriesWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdvanceSeriesWeek")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	week, err := h.seriesService.AdvanceWeek(ctx, principal.UserID, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "advance series week failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"currentWeek": week})
}

type createSeriesRequest struct {
	Name           string           `json:"name" validate:"required,max=100"`
	Description    string           `json:"description" validate:"max=500"`
	Sport          string           `json:"sport" validate:"omitempty,oneof=nfl soccer"`
	Competition    string           `json:"competition" validate:"max=100"`
	GameType       string           `json:"gameType" validate:"omitempty,oneof=survivor playoff_pool last_man_standing"`
	Season         int              `json:"season" validate:"omitempty,min=2000,max=2100"`
	Settings       *settingsPayload `json:"settings"`
	PrizeValue     int64            `json:"prizeValue" validate:"min=0"`
	ShowPrizeValue bool             `json:"showPrizeValue"`
}

type updateSeriesSettingsRequest struct {
	Settings       *settingsPayload `json:"settings" validate:"required"`
	PrizeValue     int64            `json:"prizeValue" validate:"min=0"`
	ShowPrizeValue bool             `json:"showPrizeValue"`
}

type settingsPayload struct {
	StartingWeek         int   `json:"startingWeek" validate:"omitempty,min=1,max=18"`
	LivesPerPlayer       int   `json:"livesPerPlayer" validate:"omitempty,min=1,max=5"`
	MaxTeamUses          int   `json:"maxTeamUses" validate:"omitempty,min=1,max=5"`
	TieCountsAsWin       *bool `json:"tieCountsAsWin"`
	AllowMultipleEntries bool  `json:"allowMultipleEntries"`
	MaxEntriesPerPlayer  int   `json:"maxEntriesPerPlayer" validate:"omitempty,min=1,max=10"`
}

func (p *settingsPayload) toDomain() *series.Settings {
	if p == nil {
		return nil
	}
	s := series.Settings{
		StartingWeek:         p.StartingWeek,
		LivesPerPlayer:       p.LivesPerPlayer,
		MaxTeamUses:          p.MaxTeamUses,
		AllowMultipleEntries: p.AllowMultipleEntries,
		MaxEntriesPerPlayer:  p.MaxEntriesPerPlayer,
	}
	if p.TieCountsAsWin != nil {
		s.TieCountsAsWin = *p.TieCountsAsWin
		s.TieSet = true
	}
	return &s
}

type seriesDTO struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description,omitempty"`
	CreatedBy      string      `json:"createdBy"`
	CreatedAt      string      `json:"createdAt"`
	Sport          string      `json:"sport"`
	Competition    string      `json:"competition,omitempty"`
	GameType       string      `json:"gameType"`
	Season         int         `json:"season"`
	CurrentWeek    int         `json:"currentWeek"`
	IsActive       bool        `json:"isActive"`
	PrizeValue     int64       `json:"prizeValue"`
	ShowPrizeValue bool        `json:"showPrizeValue"`
	Settings       settingsDTO `json:"settings"`
	Members        []memberDTO `json:"members"`
}

type settingsDTO struct {
	StartingWeek         int  `json:"startingWeek"`
	LivesPerPlayer       int  `json:"livesPerPlayer"`
	MaxTeamUses          int  `json:"maxTeamUses"`
	TieCountsAsWin       bool `json:"tieCountsAsWin"`
	AllowMultipleEntries bool `json:"allowMultipleEntries"`
	MaxEntriesPerPlayer  int  `json:"maxEntriesPerPlayer"`
}

type memberDTO struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName,omitempty"`
	UserPicture    string    `json:"userPicture,omitempty"`
	Role           string    `json:"role"`
	Entry          int       `json:"entry"`
	LivesRemaining int       `json:"livesRemaining"`
	IsEliminated   bool      `json:"isEliminated"`
	JoinedAt       string    `json:"joinedAt"`
	Picks          []pickDTO `json:"picks"`
}

type pickDTO struct {
	Week       int    `json:"week"`
	TeamID     string `json:"teamId"`
	Result     string `json:"result"`
	IsAutoPick bool   `json:"isAutoPick"`
	PickedAt   string `json:"pickedAt"`
}

func seriesToDTO(ctx context.Context, v series.Series) seriesDTO {
	ctx, span := startSpan(ctx, "httpapi.seriesToDTO")
	defer span.End()

	members := make([]memberDTO, 0, len(v.Members))
	for _, m := range v.Members {
		members = append(members, memberToDTO(ctx, m))
	}

	return seriesDTO{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		CreatedBy:      v.CreatedBy,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
		Sport:          string(v.Sport),
		Competition:    v.Competition,
		GameType:       string(v.GameType),
		Season:         v.Season,
		CurrentWeek:    v.CurrentWeek,
		IsActive:       v.IsActive,
		PrizeValue:     v.PrizeValue,
		ShowPrizeValue: v.ShowPrizeValue,
		Settings: settingsDTO{
			StartingWeek:         v.Settings.StartingWeek,
			LivesPerPlayer:       v.Settings.LivesPerPlayer,
			MaxTeamUses:          v.Settings.MaxTeamUses,
			TieCountsAsWin:       v.Settings.TieCountsAsWin,
			AllowMultipleEntries: v.Settings.AllowMultipleEntries,
			MaxEntriesPerPlayer:  v.Settings.MaxEntriesPerPlayer,
		},
		Members: members,
	}
}

func memberToDTO(ctx context.Context, m series.Member) memberDTO {
	ctx, span := startSpan(ctx, "httpapi.memberToDTO")
	defer span.End()

	picks := make([]pickDTO, 0, len(m.Picks))
	for _, p := range m.Picks {
		picks = append(picks, pickToDTO(ctx, p))
	}

	return memberDTO{
		ID:             m.ID,
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserPicture:    m.UserPicture,
		Role:           string(m.Role),
		Entry:          m.Entry,
		LivesRemaining: m.LivesRemaining,
		IsEliminated:   m.IsEliminated,
		JoinedAt:       m.JoinedAt.UTC().Format(time.RFC3339),
		Picks:          picks,
	}
}

func pickToDTO(ctx context.Context, p series.Pick) pickDTO {
	_, span := startSpan(ctx, "httpapi.pickToDTO")
	defer span.End()

	return pickDTO{
		Week:       p.Week,
		TeamID:     p.TeamID,
		Result:     string(p.Result),
		IsAutoPick: p.IsAutoPick,
		PickedAt:   p.PickedAt.UTC().Format(time.RFC3339),
	}
}
