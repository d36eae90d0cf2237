package series

import (
	"fmt"
	"time"

	"github.com/pickemhq/survivor-pool/internal/domain/schedule"
)

// GameType selects which rule engine a series runs under.
type GameType string

const (
	GameTypeSurvivor        GameType = "survivor"
	GameTypePlayoffPool     GameType = "playoff_pool"
	GameTypeLastManStanding GameType = "last_man_standing"
)

// AllGameTypes is used for payload validation.
var AllGameTypes = map[GameType]struct{}{
	GameTypeSurvivor:        {},
	GameTypePlayoffPool:     {},
	GameTypeLastManStanding: {},
}

// UsesSurvivorRules reports whether the series runs the weekly survivor
// engine. Last man standing is the single-life variant of the same game.
func (t GameType) UsesSurvivorRules() bool {
	return t == GameTypeSurvivor || t == GameTypeLastManStanding
}

// PickResult is the graded state of a weekly pick. Ties never persist:
// they resolve to win or loss through Settings.TieCountsAsWin.
type PickResult string

const (
	PickPending PickResult = "pending"
	PickWin     PickResult = "win"
	PickLoss    PickResult = "loss"
)

// Role of a member inside a series.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// InvitationStatus tracks an invitation's lifecycle. Accepted and declined
// are terminal.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Series is a survivor, last-man-standing, or playoff pool with its
// members and invitations. Competition is a free-text label for the
// competition the schedule tracks, e.g. "NFL" or "Premier League".
type Series struct {
	ID             string
	Name           string
	Description    string
	CreatedBy      string
	CreatedAt      time.Time
	Sport          schedule.Sport
	Competition    string
	GameType       GameType
	Season         int
	CurrentWeek    int
	IsActive       bool
	Settings       Settings
	PrizeValue     int64
	ShowPrizeValue bool
	Members        []Member
	Invitations    []Invitation
}

func (s Series) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("series id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("series name is required")
	}
	if s.CreatedBy == "" {
		return fmt.Errorf("series creator is required")
	}
	if _, ok := schedule.AllSports[s.Sport]; !ok {
		return fmt.Errorf("unknown sport: %s", s.Sport)
	}
	if _, ok := AllGameTypes[s.GameType]; !ok {
		return fmt.Errorf("unknown game type: %s", s.GameType)
	}
	if s.Season <= 0 {
		return fmt.Errorf("series season is required")
	}
	if s.CurrentWeek < 1 {
		return fmt.Errorf("series current week must be at least 1")
	}
	return s.Settings.Validate()
}

// MemberByID finds a member entry by its entry id.
func (s Series) MemberByID(memberID string) (Member, bool) {
	for _, m := range s.Members {
		if m.ID == memberID {
			return m, true
		}
	}
	return Member{}, false
}

// MembersOfUser returns every entry a user holds in the series. More than
// one only occurs when Settings.AllowMultipleEntries is set.
func (s Series) MembersOfUser(userID string) []Member {
	var out []Member
	for _, m := range s.Members {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

// IsAdmin reports whether userID administers the series.
func (s Series) IsAdmin(userID string) bool {
	if userID == s.CreatedBy {
		return true
	}
	for _, m := range s.Members {
		if m.UserID == userID && m.Role == RoleAdmin {
			return true
		}
	}
	return false
}

// Member is one entry in a series. A user playing multiple entries appears
// once per entry, each with its own lives and pick history.
type Member struct {
	ID             string
	UserID         string
	UserName       string
	UserPicture    string
	Role           Role
	Entry          int
	LivesRemaining int
	IsEliminated   bool
	JoinedAt       time.Time
	Picks          []Pick
}

func (m Member) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("member id is required")
	}
	if m.UserID == "" {
		return fmt.Errorf("member user id is required")
	}
	if m.Entry < 1 {
		return fmt.Errorf("member entry number must be at least 1")
	}
	if m.LivesRemaining < 0 {
		return fmt.Errorf("member lives cannot be negative")
	}
	return nil
}

// PickAt returns the member's pick for the given week, if any.
func (m Member) PickAt(week int) (Pick, bool) {
	for _, p := range m.Picks {
		if p.Week == week {
			return p, true
		}
	}
	return Pick{}, false
}

// TeamUses counts how many of the member's picks use teamID, skipping the
// week given by excludeWeek. Pass a negative excludeWeek to count all picks.
func (m Member) TeamUses(teamID string, excludeWeek int) int {
	n := 0
	for _, p := range m.Picks {
		if p.Week == excludeWeek {
			continue
		}
		if p.TeamID == teamID {
			n++
		}
	}
	return n
}

// UsedTeams lists the distinct teams the member has picked, in pick order.
func (m Member) UsedTeams() []string {
	seen := make(map[string]struct{}, len(m.Picks))
	var out []string
	for _, p := range m.Picks {
		if _, ok := seen[p.TeamID]; ok {
			continue
		}
		seen[p.TeamID] = struct{}{}
		out = append(out, p.TeamID)
	}
	return out
}

// Pick is one weekly survivor selection. At most one pick exists per
// (series, member, week); replacements overwrite in place.
type Pick struct {
	Week       int
	TeamID     string
	Result     PickResult
	IsAutoPick bool
	PickedAt   time.Time
}

func (p Pick) Validate() error {
	if p.Week < 1 {
		return fmt.Errorf("pick week must be at least 1")
	}
	if p.TeamID == "" {
		return fmt.Errorf("pick team id is required")
	}
	switch p.Result {
	case PickPending, PickWin, PickLoss:
	default:
		return fmt.Errorf("unknown pick result: %s", p.Result)
	}
	return nil
}

// Invitation invites an email address into a series.
type Invitation struct {
	ID        string
	SeriesID  string
	Email     string
	InvitedBy string
	InvitedAt time.Time
	Status    InvitationStatus
}

func (i Invitation) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("invitation id is required")
	}
	if i.SeriesID == "" {
		return fmt.Errorf("invitation series id is required")
	}
	if i.Email == "" {
		return fmt.Errorf("invitation email is required")
	}
	if i.InvitedBy == "" {
		return fmt.Errorf("invitation inviter is required")
	}
	switch i.Status {
	case InvitationPending, InvitationAccepted, InvitationDeclined:
	default:
		return fmt.Errorf("unknown invitation status: %s", i.Status)
	}
	return nil
}
