package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SymbolProgressRepo handles database operations for symbol mastery state.
type SymbolProgressRepo struct {
	db *sqlx.DB
}

type symbolProgressRow struct {
	ID            int64  `db:"id"`
	UserID        string `db:"user_id"`
	SymbolID      string `db:"symbol_id"`
	StudyCount    int    `db:"study_count"`
	IsMastered    bool   `db:"is_mastered"`
	MasteryLevel  int    `db:"mastery_level"`
	LastStudiedAt int64  `db:"last_studied_at"`
	NextReviewAt  int64  `db:"next_review_at"`
}

func (r symbolProgressRow) toModel() *SymbolProgress {
	return &SymbolProgress{
		ID:            r.ID,
		UserID:        r.UserID,
		SymbolID:      r.SymbolID,
		StudyCount:    r.StudyCount,
		IsMastered:    r.IsMastered,
		MasteryLevel:  r.MasteryLevel,
		LastStudiedAt: time.Unix(r.LastStudiedAt, 0).UTC(),
		NextReviewAt:  time.Unix(r.NextReviewAt, 0).UTC(),
	}
}

// Get returns the progress record for (userID, symbolID), or ErrNotFound.
func (r *SymbolProgressRepo) Get(ctx context.Context, userID, symbolID string) (*SymbolProgress, error) {
	var row symbolProgressRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, symbol_id, study_count, is_mastered,
		        mastery_level, last_studied_at, next_review_at
		 FROM symbol_progress WHERE user_id = ? AND symbol_id = ?`,
		userID, symbolID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get symbol progress: %w", err)
	}
	return row.toModel(), nil
}

// Create inserts a new progress record and assigns its ID.
func (r *SymbolProgressRepo) Create(ctx context.Context, p *SymbolProgress) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO symbol_progress (user_id, symbol_id, study_count, is_mastered,
		                              mastery_level, last_studied_at, next_review_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.SymbolID, p.StudyCount, p.IsMastered,
		p.MasteryLevel, p.LastStudiedAt.Unix(), p.NextReviewAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create symbol progress: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("symbol progress insert id: %w", err)
	}
	p.ID = id
	return nil
}

// Update persists the mutable fields of an existing record.
func (r *SymbolProgressRepo) Update(ctx context.Context, p *SymbolProgress) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE symbol_progress SET
			study_count = ?, is_mastered = ?, mastery_level = ?,
			last_studied_at = ?, next_review_at = ?
		 WHERE id = ?`,
		p.StudyCount, p.IsMastered, p.MasteryLevel,
		p.LastStudiedAt.Unix(), p.NextReviewAt.Unix(), p.ID,
	)
	if err != nil {
		return fmt.Errorf("update symbol progress: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update symbol progress rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DueOrUnmastered returns records that are either not yet mastered or due
// for review, capped to limit. Unmastered symbols come first, then by
// review date, so the cap keeps the most relevant items.
func (r *SymbolProgressRepo) DueOrUnmastered(ctx context.Context, userID string, now time.Time, limit int) ([]*SymbolProgress, error) {
	var rows []symbolProgressRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, user_id, symbol_id, study_count, is_mastered,
		        mastery_level, last_studied_at, next_review_at
		 FROM symbol_progress
		 WHERE user_id = ? AND (is_mastered = 0 OR next_review_at <= ?)
		 ORDER BY is_mastered ASC, next_review_at ASC
		 LIMIT ?`,
		userID, now.Unix(), limit)
	if err != nil {
		return nil, fmt.Errorf("due symbols: %w", err)
	}
	out := make([]*SymbolProgress, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

// MasteryCounts returns (mastered, tracked) counts for a learner.
func (r *SymbolProgressRepo) MasteryCounts(ctx context.Context, userID string) (mastered int, tracked int, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(is_mastered), 0), COUNT(*)
		 FROM symbol_progress WHERE user_id = ?`, userID)
	if err := row.Scan(&mastered, &tracked); err != nil {
		return 0, 0, fmt.Errorf("symbol mastery counts: %w", err)
	}
	return mastered, tracked, nil
}
