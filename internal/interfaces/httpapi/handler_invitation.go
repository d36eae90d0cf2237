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

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InviteMember")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	seriesID := strings.TrimSpace(r.PathValue("seriesID"))
	var req inviteMemberRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	invitation, err := h.invitationService.InviteMember(ctx, usecase.InviteMemberInput{
		UserID:   principal.UserID,
		SeriesID: seriesID,
		Email:    req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "invite member failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, invitationToDTO(ctx, invitation))
}

func (h *Handler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RespondInvitation")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	invitationID := strings.TrimSpace(r.PathValue("invitationID"))
	var req respondInvitationRequest
	if err := decodeBody(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.invitationService.Respond(ctx, usecase.RespondInvitationInput{
		UserID:       principal.UserID,
		UserName:     principal.Name,
		UserPicture:  principal.Picture,
		InvitationID: invitationID,
		Accept:       req.Accept,
	}); err != nil {
		h.logger.WarnContext(ctx, "respond invitation failed", "invitation_id", invitationID, "accept", req.Accept, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := "declined"
	if req.Accept {
		status = "accepted"
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": status})
}

type inviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type respondInvitationRequest struct {
	Accept bool `json:"accept"`
}

type invitationDTO struct {
	ID        string `json:"id"`
	SeriesID  string `json:"seriesId"`
	Email     string `json:"email"`
	InvitedBy string `json:"invitedBy"`
	InvitedAt string `json:"invitedAt"`
	Status    string `json:"status"`
}

func invitationToDTO(ctx context.Context, v series.Invitation) invitationDTO {
	_, span := startSpan(ctx, "httpapi.invitationToDTO")
	defer span.End()

	return invitationDTO{
		ID:        v.ID,
		SeriesID:  v.SeriesID,
		Email:     v.Email,
		InvitedBy: v.InvitedBy,
		InvitedAt: v.InvitedAt.UTC().Format(time.RFC3339),
		Status:    string(v.Status),
	}
}
