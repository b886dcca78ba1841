package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// QuestionRepo handles database operations for the question bank.
type QuestionRepo struct {
	db *sqlx.DB
}

type questionRow struct {
	ID        int64  `db:"id"`
	Content   string `db:"content"`
	Pinyin    string `db:"pinyin"`
	Category  string `db:"category"`
	CreatedAt int64  `db:"created_at"`
}

func (r questionRow) toModel() *Question {
	return &Question{
		ID:        r.ID,
		Content:   r.Content,
		Pinyin:    r.Pinyin,
		Category:  r.Category,
		CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
	}
}

// Create inserts a new question and assigns its ID.
func (r *QuestionRepo) Create(ctx context.Context, q *Question) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (content, pinyin, category, created_at)
		 VALUES (?, ?, ?, ?)`,
		q.Content, q.Pinyin, q.Category, q.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("create question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("question insert id: %w", err)
	}
	q.ID = id
	return nil
}

// GetByID returns the question with the given ID, or ErrNotFound.
func (r *QuestionRepo) GetByID(ctx context.Context, id int64) (*Question, error) {
	var row questionRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, content, pinyin, category, created_at
		 FROM questions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return row.toModel(), nil
}

// GetByContent returns the question with the given content, or ErrNotFound.
// Used to avoid duplicating AI-generated questions that already exist.
func (r *QuestionRepo) GetByContent(ctx context.Context, content string) (*Question, error) {
	var row questionRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, content, pinyin, category, created_at
		 FROM questions WHERE content = ? LIMIT 1`, content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question by content: %w", err)
	}
	return row.toModel(), nil
}

// List returns questions ordered by ID, capped to limit (0 = unlimited).
func (r *QuestionRepo) List(ctx context.Context, limit int) ([]*Question, error) {
	query := `SELECT id, content, pinyin, category, created_at
		 FROM questions ORDER BY id`
	var rows []questionRow
	var err error
	if limit > 0 {
		err = r.db.SelectContext(ctx, &rows, query+` LIMIT ?`, limit)
	} else {
		err = r.db.SelectContext(ctx, &rows, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	out := make([]*Question, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

// Count returns the number of questions in the bank.
func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
