package playoff

import "context"

// Repository describes playoff pool persistence needs from use cases.
// UpsertPicks replaces the member's picks for the given game ids in one
// write; partial stage saves and resubmissions both go through it.
type Repository interface {
	GetPool(ctx context.Context, seriesID string) (Pool, bool, error)
	CreatePool(ctx context.Context, p Pool) error
	UpsertGames(ctx context.Context, seriesID string, games []Game) error

	AddMember(ctx context.Context, seriesID string, m Member) error
	UpsertPicks(ctx context.Context, seriesID, userID string, picks []Pick) error
	AppendResults(ctx context.Context, seriesID, userID string, results []Result) error
}
