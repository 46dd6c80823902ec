package repositories

import "context"

// RowSource fetches the raw resume table from whichever store a deployment
// uses. Rows map positionally: 0 name, 1 content, 2 status, 3 path. A fetch
// failure is returned as an error so callers can tell an unreachable store
// apart from an honestly empty one.
//
// Implementations hold a single client handle built at construction time and
// must be safe for concurrent use across requests.
type RowSource interface {
	GetRange(ctx context.Context) ([][]string, error)
}
