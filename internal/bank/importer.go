package bank

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wenqi/pindrill/internal/pinyin"
	"github.com/wenqi/pindrill/internal/store"
)

// Repo is the persistence surface the importer needs.
// *store.QuestionRepo satisfies it.
type Repo interface {
	Create(ctx context.Context, q *store.Question) error
	GetByContent(ctx context.Context, content string) (*store.Question, error)
}

// ImportConfig describes where question rows live in the source file.
// Column indices are zero-based.
type ImportConfig struct {
	Path           string
	Sheet          string // xlsx only
	ContentColumn  int
	PinyinColumn   int
	CategoryColumn int
	StartRow       int // 1-based first data row; defaults skip a header row
}

// DefaultImportConfig returns the standard layout: content, pinyin,
// category in the first three columns, header in row 1.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		Path:           path,
		Sheet:          "Sheet1",
		ContentColumn:  0,
		PinyinColumn:   1,
		CategoryColumn: 2,
		StartRow:       2,
	}
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// Import loads questions from an .xlsx or .csv file. Rows missing
// content or pinyin are reported in Errors; rows whose content already
// exists in the bank are counted as Skipped. Pinyin is normalized, so
// numeric-tone sources come out in diacritic form.
func Import(ctx context.Context, repo Repo, cfg ImportConfig, now time.Time) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(cfg.Path))
	if ext == ".csv" {
		return importCSV(ctx, repo, cfg, now)
	}
	return importExcel(ctx, repo, cfg, now)
}

func importExcel(ctx context.Context, repo Repo, cfg ImportConfig, now time.Time) (*ImportResult, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", cfg.Sheet, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		importRow(ctx, repo, cfg, row, i+1, now, result)
	}
	return result, nil
}

func importCSV(ctx context.Context, repo Repo, cfg ImportConfig, now time.Time) (*ImportResult, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	result := &ImportResult{}
	for line := 1; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		if line < cfg.StartRow {
			continue
		}
		importRow(ctx, repo, cfg, row, line, now, result)
	}
	return result, nil
}

// importRow validates and upserts a single source row into the bank.
func importRow(ctx context.Context, repo Repo, cfg ImportConfig, row []string, line int, now time.Time, result *ImportResult) {
	result.Processed++

	content := strings.TrimSpace(cell(row, cfg.ContentColumn))
	reading := pinyin.Normalize(cell(row, cfg.PinyinColumn))
	category := strings.TrimSpace(cell(row, cfg.CategoryColumn))

	if content == "" || reading == "" {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing content or pinyin", line))
		return
	}

	_, err := repo.GetByContent(ctx, content)
	switch {
	case err == nil:
		result.Skipped++
		return
	case !errors.Is(err, store.ErrNotFound):
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}

	q := &store.Question{
		Content:   content,
		Pinyin:    reading,
		Category:  category,
		CreatedAt: now,
	}
	if err := repo.Create(ctx, q); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}
	result.Created++
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
