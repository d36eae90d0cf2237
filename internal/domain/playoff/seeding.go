package playoff

import "fmt"

// ConferenceSeeding holds the seven seeded teams of one conference,
// index 0 = the #1 seed with the first-round bye.
type ConferenceSeeding [7]string

// SeedOf returns a team's seed number, or 8 when the team is not seeded,
// so unseeded teams sort behind every real seed.
func (c ConferenceSeeding) SeedOf(teamID string) int {
	for i, t := range c {
		if t == teamID {
			return i + 1
		}
	}
	return 8
}

// Seeding is the full postseason field.
type Seeding struct {
	AFC ConferenceSeeding
	NFC ConferenceSeeding
}

func (s Seeding) Validate() error {
	if err := validateConference(s.AFC, ConferenceAFC); err != nil {
		return err
	}
	return validateConference(s.NFC, ConferenceNFC)
}

func validateConference(c ConferenceSeeding, name Conference) error {
	seen := make(map[string]struct{}, len(c))
	for i, t := range c {
		if t == "" {
			return fmt.Errorf("%s seed %d is empty", name, i+1)
		}
		if _, ok := seen[t]; ok {
			return fmt.Errorf("%s seeds repeat team %s", name, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}
