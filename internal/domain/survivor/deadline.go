package survivor

import "time"

// lockZone is fixed at UTC-5. Lock times do not shift with daylight saving.
var lockZone = time.FixedZone("UTC-5", -5*60*60)

const lockHour = 13

// NextDeadline returns the upcoming pick lock: the next Saturday at 13:00 in
// the lock zone. At or after 13:00 on a Saturday the deadline rolls to the
// following week. Pure in its input, so wall-clock drift never caches a stale
// deadline.
func NextDeadline(now time.Time) time.Time {
	local := now.In(lockZone)
	days := int((time.Saturday - local.Weekday() + 7) % 7)
	deadline := time.Date(local.Year(), local.Month(), local.Day()+days, lockHour, 0, 0, 0, lockZone)
	if !deadline.After(local) {
		deadline = deadline.AddDate(0, 0, 7)
	}
	return deadline
}
