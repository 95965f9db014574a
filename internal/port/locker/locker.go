package locker

import "context"

// AdvisoryLocker serializes read-modify-write sequences that the store cannot
// express as a single statement, keyed by an application-chosen int64.
type AdvisoryLocker interface {
	WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error
}
