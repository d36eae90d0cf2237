package series

import "context"

// Repository describes series persistence needs from use cases.
//
// UpsertPick is the one operation with an atomicity contract: at most one
// pick row may exist per (series, member, week), and concurrent writes for
// the same key must resolve to a single surviving row.
type Repository interface {
	GetByID(ctx context.Context, seriesID string) (Series, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Series, error)
	ListActive(ctx context.Context) ([]Series, error)
	Create(ctx context.Context, s Series) error
	SetActive(ctx context.Context, seriesID string, active bool) error
	UpdateSettings(ctx context.Context, seriesID string, settings Settings, prizeValue int64, showPrize bool) error
	SetCurrentWeek(ctx context.Context, seriesID string, week int) error

	AddMember(ctx context.Context, seriesID string, m Member) error
	RemoveMember(ctx context.Context, seriesID, memberID string) error
	UpdateMemberStanding(ctx context.Context, seriesID, memberID string, livesRemaining int, eliminated bool) error

	UpsertPick(ctx context.Context, seriesID, memberID string, p Pick) error
	SetPickResult(ctx context.Context, seriesID, memberID string, week int, result PickResult) error

	CreateInvitation(ctx context.Context, inv Invitation) error
	GetInvitation(ctx context.Context, invitationID string) (Invitation, bool, error)
	SetInvitationStatus(ctx context.Context, invitationID string, status InvitationStatus) error
}
