package idempotency

import "context"

// Store remembers responses for replayed mutation requests keyed by the
// caller-supplied Idempotency-Key header.
type Store interface {
	Check(ctx context.Context, key string) (result []byte, found bool, err error)
	Record(ctx context.Context, key, agentID, opType string, result []byte) error
}
