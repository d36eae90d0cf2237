package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pickemhq/survivor-pool/internal/domain/series"
)

// SeriesRepository is the in-memory adapter used by tests and local runs.
// Writes clone on the way in and reads clone on the way out so callers can
// never alias repository state.
type SeriesRepository struct {
	mu          sync.RWMutex
	items       map[string]series.Series
	invitations map[string]series.Invitation
}

func NewSeriesRepository() *SeriesRepository {
	return &SeriesRepository{
		items:       make(map[string]series.Series),
		invitations: make(map[string]series.Invitation),
	}
}

func (r *SeriesRepository) GetByID(_ context.Context, seriesID string) (series.Series, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[seriesID]
	if !ok {
		return series.Series{}, false, nil
	}
	return cloneSeries(item), true, nil
}

func (r *SeriesRepository) ListByUser(_ context.Context, userID string) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []series.Series
	for _, item := range r.items {
		for _, m := range item.Members {
			if m.UserID == userID {
				out = append(out, cloneSeries(item))
				break
			}
		}
	}
	return out, nil
}

func (r *SeriesRepository) ListActive(_ context.Context) ([]series.Series, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []series.Series
	for _, item := range r.items {
		if item.IsActive {
			out = append(out, cloneSeries(item))
		}
	}
	return out, nil
}

func (r *SeriesRepository) Create(_ context.Context, s series.Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[s.ID]; exists {
		return fmt.Errorf("series %s already exists", s.ID)
	}
	r.items[s.ID] = cloneSeries(s)
	return nil
}

func (r *SeriesRepository) SetActive(_ context.Context, seriesID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	item.IsActive = active
	r.items[seriesID] = item
	return nil
}

func (r *SeriesRepository) UpdateSettings(_ context.Context, seriesID string, settings series.Settings, prizeValue int64, showPrize bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	item.Settings = settings
	item.PrizeValue = prizeValue
	item.ShowPrizeValue = showPrize
	r.items[seriesID] = item
	return nil
}

func (r *SeriesRepository) SetCurrentWeek(_ context.Context, seriesID string, week int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	item.CurrentWeek = week
	r.items[seriesID] = item
	return nil
}

func (r *SeriesRepository) AddMember(_ context.Context, seriesID string, m series.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	for _, existing := range item.Members {
		if existing.ID == m.ID {
			return fmt.Errorf("member %s already exists in series %s", m.ID, seriesID)
		}
	}
	item.Members = append(item.Members, cloneMember(m))
	r.items[seriesID] = item
	return nil
}

func (r *SeriesRepository) RemoveMember(_ context.Context, seriesID, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	kept := item.Members[:0:0]
	for _, m := range item.Members {
		if m.ID != memberID {
			kept = append(kept, m)
		}
	}
	item.Members = kept
	r.items[seriesID] = item
	return nil
}

func (r *SeriesRepository) UpdateMemberStanding(_ context.Context, seriesID, memberID string, livesRemaining int, eliminated bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	for i := range item.Members {
		if item.Members[i].ID == memberID {
			item.Members[i].LivesRemaining = livesRemaining
			item.Members[i].IsEliminated = eliminated
			r.items[seriesID] = item
			return nil
		}
	}
	return fmt.Errorf("member %s not found in series %s", memberID, seriesID)
}

func (r *SeriesRepository) UpsertPick(_ context.Context, seriesID, memberID string, p series.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	for i := range item.Members {
		if item.Members[i].ID != memberID {
			continue
		}
		for j := range item.Members[i].Picks {
			if item.Members[i].Picks[j].Week == p.Week {
				item.Members[i].Picks[j] = p
				r.items[seriesID] = item
				return nil
			}
		}
		item.Members[i].Picks = append(item.Members[i].Picks, p)
		r.items[seriesID] = item
		return nil
	}
	return fmt.Errorf("member %s not found in series %s", memberID, seriesID)
}

func (r *SeriesRepository) SetPickResult(_ context.Context, seriesID, memberID string, week int, result series.PickResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[seriesID]
	if !ok {
		return fmt.Errorf("series %s not found", seriesID)
	}
	for i := range item.Members {
		if item.Members[i].ID != memberID {
			continue
		}
		for j := range item.Members[i].Picks {
			if item.Members[i].Picks[j].Week == week {
				item.Members[i].Picks[j].Result = result
				r.items[seriesID] = item
				return nil
			}
		}
		return fmt.Errorf("no pick for member %s week %d", memberID, week)
	}
	return fmt.Errorf("member %s not found in series %s", memberID, seriesID)
}

func (r *SeriesRepository) CreateInvitation(_ context.Context, inv series.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[inv.SeriesID]
	if !ok {
		return fmt.Errorf("series %s not found", inv.SeriesID)
	}
	if _, exists := r.invitations[inv.ID]; exists {
		return fmt.Errorf("invitation %s already exists", inv.ID)
	}
	r.invitations[inv.ID] = inv
	item.Invitations = append(item.Invitations, inv)
	r.items[inv.SeriesID] = item
	return nil
}

func (r *SeriesRepository) GetInvitation(_ context.Context, invitationID string) (series.Invitation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inv, ok := r.invitations[invitationID]
	if !ok {
		return series.Invitation{}, false, nil
	}
	return inv, true, nil
}

func (r *SeriesRepository) SetInvitationStatus(_ context.Context, invitationID string, status series.InvitationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.invitations[invitationID]
	if !ok {
		return fmt.Errorf("invitation %s not found", invitationID)
	}
	inv.Status = status
	r.invitations[invitationID] = inv

	if item, ok := r.items[inv.SeriesID]; ok {
		for i := range item.Invitations {
			if item.Invitations[i].ID == invitationID {
				item.Invitations[i].Status = status
			}
		}
		r.items[inv.SeriesID] = item
	}
	return nil
}

func cloneSeries(item series.Series) series.Series {
	copied := item
	copied.Members = make([]series.Member, len(item.Members))
	for i, m := range item.Members {
		copied.Members[i] = cloneMember(m)
	}
	copied.Invitations = append([]series.Invitation(nil), item.Invitations...)
	return copied
}

func cloneMember(m series.Member) series.Member {
	copied := m
	copied.Picks = append([]series.Pick(nil), m.Picks...)
	return copied
}
