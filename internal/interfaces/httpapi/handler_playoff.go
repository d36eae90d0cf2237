package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func (h *Handler) CreatePlayoffPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayoffPool")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req createPlayoffPoolRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pool, err := h.playoffService.CreatePool(ctx, usecase.CreatePlayoffPoolInput{
		UserID:   principal.UserID,
		SeriesID: seriesID,
		Seeding: playoff.Seeding{
			AFC: playoff.ConferenceSeeding(req.AFCSeeds),
			NFC: playoff.ConferenceSeeding(req.NFCSeeds),
		},
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create playoff pool failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, poolToDTO(ctx, pool))
}

func (h *Handler) GetPlayoffPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayoffPool")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	pool, err := h.playoffService.GetPool(ctx, principal.UserID, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get playoff pool failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, poolToDTO(ctx, pool))
}

func (h *Handler) JoinPlayoffPool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinPlayoffPool")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	member, err := h.playoffService.JoinPool(ctx, principal.UserID, principal.Name, principal.Picture, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "join playoff pool failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, poolMemberToDTO(ctx, member))
}

func (h *Handler) SubmitPlayoffPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPlayoffPicks")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req submitPlayoffPicksRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	picks := make([]playoff.Pick, 0, len(req.Picks))
	for _, p := range req.Picks {
		picks = append(picks, playoff.Pick{
			GameID:          p.GameID,
			PickedWinnerID:  p.PickedWinnerID,
			PredictedMargin: p.PredictedMargin,
		})
	}

	complete, err := h.playoffService.SubmitPicks(ctx, usecase.SubmitPlayoffPicksInput{
		UserID:   principal.UserID,
		SeriesID: seriesID,
		Stage:    playoff.Stage(req.Stage),
		Picks:    picks,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit playoff picks failed", "series_id", seriesID, "stage", req.Stage, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"stageComplete": complete})
}

func (h *Handler) ReportPlayoffGameResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportPlayoffGameResult")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	gameID := strings.TrimSpace(r.PathValue("gameID"))
	var req reportPlayoffGameRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	game, err := h.playoffService.ReportGameResult(ctx, usecase.ReportPlayoffGameInput{
		UserID:    principal.UserID,
		SeriesID:  seriesID,
		GameID:    gameID,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report playoff game failed", "series_id", seriesID, "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playoffGameToDTO(ctx, game))
}

func (h *Handler) GetPlayoffStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayoffStandings")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	rows, err := h.playoffService.Standings(ctx, principal.UserID, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get playoff standings failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			UserID:         row.UserID,
			UserName:       row.UserName,
			UserPicture:    row.UserPicture,
			TotalPoints:    row.TotalPoints,
			PossiblePoints: row.PossiblePoints,
			Rank:           row.Rank,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type createPlayoffPoolRequest struct {
	AFCSeeds []string `json:"afcSeeds" validate:"required,len=7,dive,required"`
	NFCSeeds []string `json:"nfcSeeds" validate:"required,len=7,dive,required"`
}

type submitPlayoffPicksRequest struct {
	Stage string             `json:"stage" validate:"required,oneof=stage_1 stage_2"`
	Picks []playoffPickInput `json:"picks" validate:"required,min=1,dive"`
}

type playoffPickInput struct {
	GameID          string `json:"gameId" validate:"required"`
	PickedWinnerID  string `json:"pickedWinnerId" validate:"required"`
	PredictedMargin int    `json:"predictedMargin" validate:"required,min=1"`
}

type reportPlayoffGameRequest struct {
	HomeScore int `json:"homeScore" validate:"min=0"`
	AwayScore int `json:"awayScore" validate:"min=0"`
}

type playoffPoolDTO struct {
	SeriesID string              `json:"seriesId"`
	Season   int                 `json:"season"`
	AFCSeeds []string            `json:"afcSeeds"`
	NFCSeeds []string            `json:"nfcSeeds"`
	Games    []playoffGameDTO    `json:"games"`
	Members  []playoffMemberDTO  `json:"members"`
}

type playoffGameDTO struct {
	ID         string  `json:"id"`
	Round      string  `json:"round"`
	Conference string  `json:"conference"`
	GameNumber int     `json:"gameNumber"`
	AwayTeamID string  `json:"awayTeamId,omitempty"`
	HomeTeamID string  `json:"homeTeamId,omitempty"`
	KickoffAt  *string `json:"kickoffAt,omitempty"`
	IsComplete bool    `json:"isComplete"`
	HomeScore  *int    `json:"homeScore,omitempty"`
	AwayScore  *int    `json:"awayScore,omitempty"`
	WinnerID   string  `json:"winnerId,omitempty"`
}

type playoffMemberDTO struct {
	UserID      string             `json:"userId"`
	UserName    string             `json:"userName,omitempty"`
	UserPicture string             `json:"userPicture,omitempty"`
	JoinedAt    string             `json:"joinedAt"`
	Picks       []playoffPickDTO   `json:"picks"`
	Results     []playoffResultDTO `json:"results"`
}

type playoffPickDTO struct {
	GameID          string `json:"gameId"`
	Round           string `json:"round"`
	PickedWinnerID  string `json:"pickedWinnerId"`
	PredictedMargin int    `json:"predictedMargin"`
	PickedAt        string `json:"pickedAt"`
}

type playoffResultDTO struct {
	GameID          string `json:"gameId"`
	PickedWinnerID  string `json:"pickedWinnerId"`
	PredictedMargin int    `json:"predictedMargin"`
	ActualWinnerID  string `json:"actualWinnerId"`
	ActualMargin    int    `json:"actualMargin"`
	WinnerPoints    int    `json:"winnerPoints"`
	MarginPoints    int    `json:"marginPoints"`
	TotalPoints     int    `json:"totalPoints"`
}

type standingRowDTO struct {
	UserID         string `json:"userId"`
	UserName       string `json:"userName,omitempty"`
	UserPicture    string `json:"userPicture,omitempty"`
	TotalPoints    int    `json:"totalPoints"`
	PossiblePoints int    `json:"possiblePoints"`
	Rank           int    `json:"rank"`
}

func poolToDTO(ctx context.Context, p playoff.Pool) playoffPoolDTO {
	ctx, span := startSpan(ctx, "httpapi.poolToDTO")
	defer span.End()

	games := make([]playoffGameDTO, 0, len(p.Games))
	for _, g := range p.Games {
		games = append(games, playoffGameToDTO(ctx, g))
	}
	members := make([]playoffMemberDTO, 0, len(p.Members))
	for _, m := range p.Members {
		members = append(members, poolMemberToDTO(ctx, m))
	}

	return playoffPoolDTO{
		SeriesID: p.SeriesID,
		Season:   p.Season,
		AFCSeeds: append([]string(nil), p.Seeding.AFC[:]...),
		NFCSeeds: append([]string(nil), p.Seeding.NFC[:]...),
		Games:    games,
		Members:  members,
	}
}

func playoffGameToDTO(ctx context.Context, g playoff.Game) playoffGameDTO {
	_, span := startSpan(ctx, "httpapi.playoffGameToDTO")
	defer span.End()

	dto := playoffGameDTO{
		ID:         g.ID,
		Round:      string(g.Round),
		Conference: string(g.Conference),
		GameNumber: g.GameNumber,
		AwayTeamID: g.AwayTeamID,
		HomeTeamID: g.HomeTeamID,
		IsComplete: g.IsComplete,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		WinnerID:   g.WinnerID,
	}
	if g.KickoffAt != nil {
		formatted := g.KickoffAt.UTC().Format(time.RFC3339)
		dto.KickoffAt = &formatted
	}
	return dto
}

func poolMemberToDTO(ctx context.Context, m playoff.Member) playoffMemberDTO {
	_, span := startSpan(ctx, "httpapi.poolMemberToDTO")
	defer span.End()

	picks := make([]playoffPickDTO, 0, len(m.Picks))
	for _, p := range m.Picks {
		picks = append(picks, playoffPickDTO{
			GameID:          p.GameID,
			Round:           string(p.Round),
			PickedWinnerID:  p.PickedWinnerID,
			PredictedMargin: p.PredictedMargin,
			PickedAt:        p.PickedAt.UTC().Format(time.RFC3339),
		})
	}
	results := make([]playoffResultDTO, 0, len(m.Results))
	for _, res := range m.Results {
		results = append(results, playoffResultDTO{
			GameID:          res.GameID,
			PickedWinnerID:  res.PickedWinnerID,
			PredictedMargin: res.PredictedMargin,
			ActualWinnerID:  res.ActualWinnerID,
			ActualMargin:    res.ActualMargin,
			WinnerPoints:    res.WinnerPoints,
			MarginPoints:    res.MarginPoints,
			TotalPoints:     res.TotalPoints,
		})
	}

	return playoffMemberDTO{
		UserID:      m.UserID,
		UserName:    m.UserName,
		UserPicture: m.UserPicture,
		JoinedAt:    m.JoinedAt.UTC().Format(time.RFC3339),
		Picks:       picks,
		Results:     results,
	}
}
