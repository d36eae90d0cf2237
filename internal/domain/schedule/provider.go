package schedule

import "context"

// Provider describes schedule and odds lookup needs from use cases.
// Rule evaluation works on the returned Week snapshot so a single fetch
// covers a whole validation or sweep pass.
type Provider interface {
	WeekSchedule(ctx context.Context, sport Sport, week int) (Week, error)
}
