package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pickemhq/survivor-pool/internal/domain/survivor"
	"github.com/pickemhq/survivor-pool/internal/usecase"
)

func (h *Handler) ReportWeekResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReportWeekResults")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req reportWeekResultsRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	outcomes := make(map[string]survivor.Outcome, len(req.Outcomes))
	for teamID, outcome := range req.Outcomes {
		outcomes[teamID] = survivor.Outcome(outcome)
	}

	summary, err := h.resultService.ReportWeekResults(ctx, usecase.ReportWeekResultsInput{
		UserID:   principal.UserID,
		SeriesID: seriesID,
		Week:     req.Week,
		Outcomes: outcomes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "report week results failed", "series_id", seriesID, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weekResultSummaryDTO{
		Graded:     summary.Graded,
		Eliminated: summary.Eliminated,
	})
}

type reportWeekResultsRequest struct {
	Week     int               `json:"week" validate:"required,min=1"`
	Outcomes map[string]string `json:"outcomes" validate:"required,min=1"`
}

type weekResultSummaryDTO struct {
	Graded     int `json:"graded"`
	Eliminated int `json:"eliminated"`
}
