package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AugmentLogRepo records LLM API calls for later inspection.
type AugmentLogRepo struct {
	db *sqlx.DB
}

// Append stores one request record.
func (r *AugmentLogRepo) Append(ctx context.Context, data AugmentRequestData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO augment_requests (provider, model, purpose, input_tokens,
		                               output_tokens, latency_ms, success,
		                               error_message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("append augment request: %w", err)
	}
	return nil
}

// Totals returns (calls, failures, totalTokens) across the log.
func (r *AugmentLogRepo) Totals(ctx context.Context) (calls int, failures int, tokens int, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(input_tokens + output_tokens), 0)
		 FROM augment_requests`)
	if err := row.Scan(&calls, &failures, &tokens); err != nil {
		return 0, 0, 0, fmt.Errorf("augment totals: %w", err)
	}
	return calls, failures, tokens, nil
}
