package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pickemhq/survivor-pool/internal/domain/playoff"
)

// PlayoffRepository is the in-memory playoff pool adapter.
type PlayoffRepository struct {
	mu    sync.RWMutex
	pools map[string]playoff.Pool
}

func NewPlayoffRepository() *PlayoffRepository {
	return &PlayoffRepository{pools: make(map[string]playoff.Pool)}
}

func (r *PlayoffRepository) GetPool(_ context.Context, seriesID string) (playoff.Pool, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pool, ok := r.pools[seriesID]
	if !ok {
		return playoff.Pool{}, false, nil
	}
	return clonePool(pool), true, nil
}

func (r *PlayoffRepository) CreatePool(_ context.Context, p playoff.Pool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pools[p.SeriesID]; exists {
		return fmt.Errorf("playoff pool for series %s already exists", p.SeriesID)
	}
	r.pools[p.SeriesID] = clonePool(p)
	return nil
}

func (r *PlayoffRepository) UpsertGames(_ context.Context, seriesID string, games []playoff.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool, ok := r.pools[seriesID]
	if !ok {
		return fmt.Errorf("playoff pool for series %s not found", seriesID)
	}

	byID := make(map[string]int, len(pool.Games))
	for i, g := range pool.Games {
		byID[g.ID] = i
	}
	for _, g := range games {
		if i, exists := byID[g.ID]; exists {
			pool.Games[i] = g
			continue
		}
		pool.Games = append(pool.Games, g)
	}
	r.pools[seriesID] = pool
	return nil
}

func (r *PlayoffRepository) AddMember(_ context.Context, seriesID string, m playoff.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool, ok := r.pools[seriesID]
	if !ok {
		return fmt.Errorf("playoff pool for series %s not found", seriesID)
	}
	for _, existing := range pool.Members {
		if existing.UserID == m.UserID {
			return fmt.Errorf("user %s already joined pool %s", m.UserID, seriesID)
		}
	}
	pool.Members = append(pool.Members, cloneMemberP(m))
	r.pools[seriesID] = pool
	return nil
}

func (r *PlayoffRepository) UpsertPicks(_ context.Context, seriesID, userID string, picks []playoff.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool, ok := r.pools[seriesID]
	if !ok {
		return fmt.Errorf("playoff pool for series %s not found", seriesID)
	}
	for i := range pool.Members {
		if pool.Members[i].UserID != userID {
			continue
		}
		for _, p := range picks {
			replaced := false
			for j := range pool.Members[i].Picks {
				if pool.Members[i].Picks[j].GameID == p.GameID {
					pool.Members[i].Picks[j] = p
					replaced = true
					break
				}
			}
			if !replaced {
				pool.Members[i].Picks = append(pool.Members[i].Picks, p)
			}
		}
		r.pools[seriesID] = pool
		return nil
	}
	return fmt.Errorf("user %s is not a member of pool %s", userID, seriesID)
}

func (r *PlayoffRepository) AppendResults(_ context.Context, seriesID, userID string, results []playoff.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pool, ok := r.pools[seriesID]
	if !ok {
		return fmt.Errorf("playoff pool for series %s not found", seriesID)
	}
	for i := range pool.Members {
		if pool.Members[i].UserID != userID {
			continue
		}
		pool.Members[i].Results = append(pool.Members[i].Results, results...)
		r.pools[seriesID] = pool
		return nil
	}
	return fmt.Errorf("user %s is not a member of pool %s", userID, seriesID)
}

func clonePool(p playoff.Pool) playoff.Pool {
	copied := p
	copied.Games = append([]playoff.Game(nil), p.Games...)
	copied.Members = make([]playoff.Member, len(p.Members))
	for i, m := range p.Members {
		copied.Members[i] = cloneMemberP(m)
	}
	return copied
}

func cloneMemberP(m playoff.Member) playoff.Member {
	copied := m
	copied.Picks = append([]playoff.Pick(nil), m.Picks...)
	copied.Results = append([]playoff.Result(nil), m.Results...)
	return copied
}
