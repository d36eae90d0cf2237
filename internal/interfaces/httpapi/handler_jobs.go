package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func (h *Handler) RunAutoPickSweepJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAutoPickSweepJob")
	defer span.End()

	req, err := decodeInternalJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.MaxWorkers <= 0 {
		req.MaxWorkers = h.autoPickWorkers
	}

	result, err := h.autoPickService.Sweep(ctx, usecase.AutoPickSweepInput{
		SeriesID:   req.SeriesID,
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "run auto pick sweep job failed", "series_id", req.SeriesID, "dry_run", req.DryRun, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RunGradeWeekJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunGradeWeekJob")
	defer span.End()

	req, err := decodeInternalJobRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.SeriesID == "" {
		writeError(ctx, w, fmt.Errorf("%w: series_id is required", usecase.ErrInvalidInput))
		return
	}
	if req.Week < 1 {
		writeError(ctx, w, fmt.Errorf("%w: week must be at least 1", usecase.ErrInvalidInput))
		return
	}

	summary, err := h.resultService.GradeFromSchedule(ctx, req.SeriesID, req.Week)
	if err != nil {
		h.logger.WarnContext(ctx, "run grade week job failed", "series_id", req.SeriesID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekResultSummaryDTO{
		Graded:     summary.Graded,
		Eliminated: summary.Eliminated,
	})
}

type internalJobRequest struct {
	SeriesID   string `json:"series_id"`
	Week       int    `json:"week"`
	MaxWorkers int    `json:"max_workers"`
	DryRun     bool   `json:"dry_run"`
}

func decodeInternalJobRequest(r *http.Request) (internalJobRequest, error) {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req internalJobRequest
	if err := decoder.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return internalJobRequest{}, nil
		}
		return internalJobRequest{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return req, nil
}
