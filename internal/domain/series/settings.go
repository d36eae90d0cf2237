package series

import "fmt"

// Settings stores the per-series survivor parameters. Legacy rows persisted
// before a field existed load with the zero value; ResolveSettings maps those
// back to the defaults so old and new series play by the same rules.
type Settings struct {
	StartingWeek         int
	LivesPerPlayer       int
	MaxTeamUses          int
	TieCountsAsWin       bool
	AllowMultipleEntries bool
	MaxEntriesPerPlayer  int

	// TieSet distinguishes an explicit TieCountsAsWin=false from an absent
	// value during resolution. Persisted rows always carry it set.
	TieSet bool
}

func DefaultSettings() Settings {
	return Settings{
		StartingWeek:         1,
		LivesPerPlayer:       2,
		MaxTeamUses:          1,
		TieCountsAsWin:       true,
		AllowMultipleEntries: false,
		MaxEntriesPerPlayer:  1,
		TieSet:               true,
	}
}

// ResolveSettings fills every unset field of partial from the defaults.
// A nil partial resolves to DefaultSettings. Explicit false booleans are
// honored: AllowMultipleEntries defaults to false anyway, and TieCountsAsWin
// uses TieSet to tell "explicitly false" from "never stored".
func ResolveSettings(partial *Settings) Settings {
	resolved := DefaultSettings()
	if partial == nil {
		return resolved
	}
	if partial.StartingWeek > 0 {
		resolved.StartingWeek = partial.StartingWeek
	}
	if partial.LivesPerPlayer > 0 {
		resolved.LivesPerPlayer = partial.LivesPerPlayer
	}
	if partial.MaxTeamUses > 0 {
		resolved.MaxTeamUses = partial.MaxTeamUses
	}
	if partial.TieSet {
		resolved.TieCountsAsWin = partial.TieCountsAsWin
	}
	resolved.AllowMultipleEntries = partial.AllowMultipleEntries
	if partial.MaxEntriesPerPlayer > 0 {
		resolved.MaxEntriesPerPlayer = partial.MaxEntriesPerPlayer
	}
	return resolved
}

func (s Settings) Validate() error {
	if s.StartingWeek < 1 {
		return fmt.Errorf("starting week must be at least 1")
	}
	if s.LivesPerPlayer < 1 {
		return fmt.Errorf("lives per player must be at least 1")
	}
	if s.MaxTeamUses < 1 {
		return fmt.Errorf("max team uses must be at least 1")
	}
	if s.MaxEntriesPerPlayer < 1 {
		return fmt.Errorf("max entries per player must be at least 1")
	}
	if !s.AllowMultipleEntries && s.MaxEntriesPerPlayer > 1 {
		return fmt.Errorf("max entries above 1 requires multiple entries enabled")
	}
	return nil
}
