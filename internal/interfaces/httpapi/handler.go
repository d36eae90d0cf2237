package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/pickemhq/survivor-pool/internal/usecase"
)

type Handler struct {
	seriesService     *usecase.SeriesService
	pickService       *usecase.PickService
	resultService     *usecase.ResultService
	playoffService    *usecase.PlayoffService
	invitationService *usecase.InvitationService
	autoPickService   *usecase.AutoPickService
	autoPickWorkers   int
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	seriesService *usecase.SeriesService,
	pickService *usecase.PickService,
	resultService *usecase.ResultService,
	playoffService *usecase.PlayoffService,
	invitationService *usecase.InvitationService,
	autoPickService *usecase.AutoPickService,
	autoPickWorkers int,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		seriesService:     seriesService,
		pickService:       pickService,
		resultService:     resultService,
		playoffService:    playoffService,
		invitationService: invitationService,
		autoPickService:   autoPickService,
		autoPickWorkers:   autoPickWorkers,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeBody(body io.Reader, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
