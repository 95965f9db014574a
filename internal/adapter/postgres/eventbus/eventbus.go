package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alanyang/skillswap/internal/domain/event"
	porteventbus "github.com/alanyang/skillswap/internal/port/eventbus"
)

// Channel names carry a prefix so the exchange can share a database with
// other applications without NOTIFY collisions.
const channelPrefix = "skillswap_"

// EventBus fans exchange events out through Postgres NOTIFY/LISTEN, so every
// server instance sees events regardless of which instance published them.
type EventBus struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *EventBus {
	return &EventBus{pool: pool}
}

func (b *EventBus) Publish(ctx context.Context, e event.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.Type, err)
	}
	name := channelPrefix + string(event.ChannelFor(e.Type))
	if _, err := b.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, name, string(payload)); err != nil {
		return fmt.Errorf("notify %s: %w", name, err)
	}
	return nil
}

// Subscribe dedicates a pooled connection to LISTEN on the channel and
// invokes handler for each decoded event until the subscription is cancelled.
// Payloads that fail to decode are dropped.
func (b *EventBus) Subscribe(ctx context.Context, ch event.Channel, handler porteventbus.Handler) (porteventbus.Subscription, error) {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire conn for listen: %w", err)
	}

	name := channelPrefix + string(ch)
	if _, err := conn.Exec(ctx, "LISTEN "+name); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", name, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer func() {
			conn.Exec(context.Background(), "UNLISTEN "+name) //nolint:errcheck
			conn.Release()
			close(sub.done)
		}()
		for {
			n, err := conn.Conn().WaitForNotification(subCtx)
			if err != nil {
				if subCtx.Err() != nil {
					return
				}
				continue
			}
			var e event.Event
			if err := json.Unmarshal([]byte(n.Payload), &e); err != nil {
				continue
			}
			handler(subCtx, e)
		}
	}()

	return sub, nil
}

type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Unsubscribe stops the listener and waits for its connection to be released.
func (s *subscription) Unsubscribe() {
	s.cancel()
	<-s.done
}
