package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
	idgen "github.com/pickemhq/survivor-pool/internal/platform/id"
)

type InviteMemberInput struct {
	UserID   string
	SeriesID string
	Email    string
}

type RespondInvitationInput struct {
	UserID       string
	UserName     string
	UserPicture  string
	InvitationID string
	Accept       bool
}

type InvitationService struct {
	seriesRepo series.Repository
	idGen      idgen.Generator
	now        func() time.Time
}

func NewInvitationService(seriesRepo series.Repository, idGen idgen.Generator) *InvitationService {
	return &InvitationService{
		seriesRepo: seriesRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *InvitationService) InviteMember(ctx context.Context, input InviteMemberInput) (series.Invitation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InvitationService.InviteMember")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.SeriesID = strings.TrimSpace(input.SeriesID)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.UserID == "" {
		return series.Invitation{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.SeriesID == "" {
		return series.Invitation{}, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return series.Invitation{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, input.SeriesID)
	if err != nil {
		return series.Invitation{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return series.Invitation{}, fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsAdmin(input.UserID) {
		return series.Invitation{}, fmt.Errorf("%w: only an admin can invite members", ErrUnauthorized)
	}
	for _, inv := range item.Invitations {
		if inv.Email == input.Email && inv.Status == series.InvitationPending {
			return series.Invitation{}, fmt.Errorf("%w: an invitation for %s is already pending", ErrInvalidInput, input.Email)
		}
	}

	invitationID, err := s.idGen.NewID()
	if err != nil {
		return series.Invitation{}, fmt.Errorf("generate invitation id: %w", err)
	}
	invitation := series.Invitation{
		ID:        invitationID,
		SeriesID:  input.SeriesID,
		Email:     input.Email,
		InvitedBy: input.UserID,
		InvitedAt: s.now().UTC(),
		Status:    series.InvitationPending,
	}
	if err := s.seriesRepo.CreateInvitation(ctx, invitation); err != nil {
		return series.Invitation{}, fmt.Errorf("create invitation: %w", err)
	}
	return invitation, nil
}

// Respond settles a pending invitation. Accepting one also enrolls the user
// as a member with a fresh entry.
func (s *InvitationService) Respond(ctx context.Context, input RespondInvitationInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.InvitationService.Respond")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.InvitationID = strings.TrimSpace(input.InvitationID)
	if input.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.InvitationID == "" {
		return fmt.Errorf("%w: invitation id is required", ErrInvalidInput)
	}

	invitation, exists, err := s.seriesRepo.GetInvitation(ctx, input.InvitationID)
	if err != nil {
		return fmt.Errorf("get invitation: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: invitation not found", ErrNotFound)
	}
	if invitation.Status != series.InvitationPending {
		return fmt.Errorf("%w: invitation has already been %s", ErrInvalidInput, invitation.Status)
	}

	if !input.Accept {
		if err := s.seriesRepo.SetInvitationStatus(ctx, invitation.ID, series.InvitationDeclined); err != nil {
			return fmt.Errorf("decline invitation: %w", err)
		}
		return nil
	}

	item, exists, err := s.seriesRepo.GetByID(ctx, invitation.SeriesID)
	if err != nil {
		return fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: series not found", ErrNotFound)
	}
	if !item.IsActive {
		return fmt.Errorf("%w: series is no longer active", ErrInvalidInput)
	}

	settings := series.ResolveSettings(&item.Settings)
	entries := item.MembersOfUser(input.UserID)
	if len(entries) > 0 && !settings.AllowMultipleEntries {
		return fmt.Errorf("%w: you already joined this series", ErrInvalidInput)
	}
	if len(entries) >= settings.MaxEntriesPerPlayer && settings.AllowMultipleEntries {
		return fmt.Errorf("%w: entry limit of %d reached", ErrInvalidInput, settings.MaxEntriesPerPlayer)
	}

	memberID, err := s.idGen.NewID()
	if err != nil {
		return fmt.Errorf("generate member id: %w", err)
	}
	member := series.Member{
		ID:             memberID,
		UserID:         input.UserID,
		UserName:       strings.TrimSpace(input.UserName),
		UserPicture:    strings.TrimSpace(input.UserPicture),
		Role:           series.RoleMember,
		Entry:          len(entries) + 1,
		LivesRemaining: settings.LivesPerPlayer,
		JoinedAt:       s.now().UTC(),
	}
	if err := s.seriesRepo.AddMember(ctx, invitation.SeriesID, member); err != nil {
		return fmt.Errorf("add series member: %w", err)
	}
	if err := s.seriesRepo.SetInvitationStatus(ctx, invitation.ID, series.InvitationAccepted); err != nil {
		return fmt.Errorf("accept invitation: %w", err)
	}
	return nil
}
