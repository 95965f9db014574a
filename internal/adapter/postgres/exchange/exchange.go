package exchange

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	domainrequest "github.com/alanyang/skillswap/internal/domain/request"
	domaintransfer "github.com/alanyang/skillswap/internal/domain/transfer"
	portexchange "github.com/alanyang/skillswap/internal/port/exchange"
)

// Recorder writes the compound share mutation in a single transaction, so a
// store failure mid-sequence cannot leave the transfer log and the counters
// disagreeing.
type Recorder struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

func (r *Recorder) RecordShare(ctx context.Context, rec portexchange.ShareRecord) (domaintransfer.Transfer, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("beginning share transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()

	var created domaintransfer.Transfer
	err = tx.QueryRow(ctx, `
		INSERT INTO transfers (skill_id, skill_name, from_agent_id, to_agent_id, status, occurred_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, skill_id, skill_name, from_agent_id, to_agent_id, status, occurred_at`,
		rec.SkillID, rec.SkillName, rec.FromAgentID, rec.ToAgentID,
		string(domaintransfer.StatusCompleted), now,
	).Scan(
		&created.ID, &created.SkillID, &created.SkillName, &created.FromAgentID,
		&created.ToAgentID, &created.Status, &created.Timestamp,
	)
	if err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("inserting transfer: %w", err)
	}

	// Atomic in-place increments; no read-then-write, so concurrent shares
	// touching the same agents cannot lose updates.
	if _, err := tx.Exec(ctx,
		`UPDATE agents SET total_shares = total_shares + 1 WHERE id = $1`, rec.FromAgentID); err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("incrementing total_shares: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE agents SET total_receives = total_receives + 1 WHERE id = $1`, rec.ToAgentID); err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("incrementing total_receives: %w", err)
	}

	if rec.SkillID != nil {
		if _, err := tx.Exec(ctx,
			`UPDATE skills SET times_shared = times_shared + 1 WHERE id = $1`, *rec.SkillID); err != nil {
			return domaintransfer.Transfer{}, fmt.Errorf("incrementing times_shared: %w", err)
		}
	}

	// Fulfillment is unconditional: the skill name is not checked against the
	// request and an already-fulfilled request is overwritten. Documented
	// behavior carried over from the original protocol.
	if rec.RequestID != nil {
		if _, err := tx.Exec(ctx, `
			UPDATE requests SET status = $1, fulfilled_by = $2, fulfilled_at = $3
			WHERE id = $4`,
			string(domainrequest.StatusFulfilled), rec.FromAgentID, now, *rec.RequestID); err != nil {
			return domaintransfer.Transfer{}, fmt.Errorf("fulfilling request: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domaintransfer.Transfer{}, fmt.Errorf("committing share transaction: %w", err)
	}
	return created, nil
}
