package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// MistakeRepo handles database operations for mistake records.
type MistakeRepo struct {
	db *sqlx.DB
}

type mistakeRow struct {
	ID             int64         `db:"id"`
	UserID         string        `db:"user_id"`
	QuestionID     int64         `db:"question_id"`
	WrongAnswer    string        `db:"wrong_answer"`
	ErrorCount     int           `db:"error_count"`
	ReviewStage    int           `db:"review_stage"`
	LastReviewedAt sql.NullInt64 `db:"last_reviewed_at"`
	NextReviewAt   int64         `db:"next_review_at"`
	CreatedAt      int64         `db:"created_at"`
}

func (r mistakeRow) toModel() *MistakeRecord {
	m := &MistakeRecord{
		ID:           r.ID,
		UserID:       r.UserID,
		QuestionID:   r.QuestionID,
		WrongAnswer:  r.WrongAnswer,
		ErrorCount:   r.ErrorCount,
		ReviewStage:  r.ReviewStage,
		NextReviewAt: time.Unix(r.NextReviewAt, 0).UTC(),
		CreatedAt:    time.Unix(r.CreatedAt, 0).UTC(),
	}
	if r.LastReviewedAt.Valid {
		t := time.Unix(r.LastReviewedAt.Int64, 0).UTC()
		m.LastReviewedAt = &t
	}
	return m
}

func nullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

// GetByUserQuestion returns the record for (userID, questionID), or ErrNotFound.
func (r *MistakeRepo) GetByUserQuestion(ctx context.Context, userID string, questionID int64) (*MistakeRecord, error) {
	var row mistakeRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, question_id, wrong_answer, error_count,
		        review_stage, last_reviewed_at, next_review_at, created_at
		 FROM mistakes WHERE user_id = ? AND question_id = ?`,
		userID, questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mistake: %w", err)
	}
	return row.toModel(), nil
}

// GetByID returns the record with the given row ID, or ErrNotFound.
func (r *MistakeRepo) GetByID(ctx context.Context, id int64) (*MistakeRecord, error) {
	var row mistakeRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, user_id, question_id, wrong_answer, error_count,
		        review_stage, last_reviewed_at, next_review_at, created_at
		 FROM mistakes WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mistake: %w", err)
	}
	return row.toModel(), nil
}

// Create inserts a new mistake record and assigns its ID. The
// UNIQUE(user_id, question_id) constraint guarantees one logical record
// per question per learner.
func (r *MistakeRepo) Create(ctx context.Context, m *MistakeRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO mistakes (user_id, question_id, wrong_answer, error_count,
		                       review_stage, last_reviewed_at, next_review_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.QuestionID, m.WrongAnswer, m.ErrorCount,
		m.ReviewStage, nullUnix(m.LastReviewedAt), m.NextReviewAt.Unix(), m.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create mistake: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("mistake insert id: %w", err)
	}
	m.ID = id
	return nil
}

// Update persists the mutable fields of an existing record.
func (r *MistakeRepo) Update(ctx context.Context, m *MistakeRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE mistakes SET
			wrong_answer = ?, error_count = ?, review_stage = ?,
			last_reviewed_at = ?, next_review_at = ?
		 WHERE id = ?`,
		m.WrongAnswer, m.ErrorCount, m.ReviewStage,
		nullUnix(m.LastReviewedAt), m.NextReviewAt.Unix(), m.ID,
	)
	if err != nil {
		return fmt.Errorf("update mistake: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update mistake rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type dueMistakeRow struct {
	mistakeRow
	Content string `db:"content"`
	Pinyin  string `db:"pinyin"`
}

// Due returns all records for userID with next_review_at <= now, joined
// with question content, ordered ascending by next_review_at (oldest-due
// first). The INNER JOIN drops records whose question no longer exists.
func (r *MistakeRepo) Due(ctx context.Context, userID string, now time.Time) ([]*DueMistake, error) {
	var rows []dueMistakeRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT m.id, m.user_id, m.question_id, m.wrong_answer, m.error_count,
		        m.review_stage, m.last_reviewed_at, m.next_review_at, m.created_at,
		        q.content, q.pinyin
		 FROM mistakes m
		 JOIN questions q ON m.question_id = q.id
		 WHERE m.user_id = ? AND m.next_review_at <= ?
		 ORDER BY m.next_review_at ASC, m.id ASC`,
		userID, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("due mistakes: %w", err)
	}
	out := make([]*DueMistake, len(rows))
	for i, row := range rows {
		out[i] = &DueMistake{
			MistakeRecord: *row.mistakeRow.toModel(),
			Content:       row.Content,
			Pinyin:        row.Pinyin,
		}
	}
	return out, nil
}

// CountByUser returns the number of tracked mistakes and the total error
// count for a learner. Used by the stats command.
func (r *MistakeRepo) CountByUser(ctx context.Context, userID string) (records int, errorsTotal int, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(error_count), 0)
		 FROM mistakes WHERE user_id = ?`, userID)
	if err := row.Scan(&records, &errorsTotal); err != nil {
		return 0, 0, fmt.Errorf("count mistakes: %w", err)
	}
	return records, errorsTotal, nil
}
