package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wenqi/pindrill/internal/store"
)

var importedAt = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

type mockRepo struct {
	byContent map[string]*store.Question
	nextID    int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{byContent: make(map[string]*store.Question)}
}

func (m *mockRepo) Create(_ context.Context, q *store.Question) error {
	m.nextID++
	q.ID = m.nextID
	m.byContent[q.Content] = q
	return nil
}

func (m *mockRepo) GetByContent(_ context.Context, content string) (*store.Question, error) {
	if q, ok := m.byContent[content]; ok {
		return q, nil
	}
	return nil, store.ErrNotFound
}

func writeCSV(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.csv")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestImport_CSV(t *testing.T) {
	path := writeCSV(t, "content,pinyin,category\n你好,ni3 hao3,hsk1\n中国,zhong1 guo2,hsk1\n")
	repo := newMockRepo()

	res, err := Import(context.Background(), repo, DefaultImportConfig(path), importedAt)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.Empty(t, res.Errors)

	q := repo.byContent["你好"]
	require.NotNil(t, q)
	assert.Equal(t, "nǐ hǎo", q.Pinyin, "pinyin normalized to diacritics")
	assert.Equal(t, "hsk1", q.Category)
}

func TestImport_CSVSkipsExistingAndReportsBadRows(t *testing.T) {
	path := writeCSV(t, "content,pinyin,category\n你好,ni3 hao3,hsk1\n,mei2,hsk1\n谢谢,,hsk1\n")
	repo := newMockRepo()
	require.NoError(t, repo.Create(context.Background(), &store.Question{Content: "你好", Pinyin: "nǐ hǎo"}))

	res, err := Import(context.Background(), repo, DefaultImportConfig(path), importedAt)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Errors, 2)
}

func TestImport_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.xlsx")
	f := excelize.NewFile()
	rows := [][]any{
		{"content", "pinyin", "category"},
		{"上海", "shang4 hai3", "city"},
		{"北京", "bei3 jing1", "city"},
	}
	for i, row := range rows {
		for j, val := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, val))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	repo := newMockRepo()
	res, err := Import(context.Background(), repo, DefaultImportConfig(path), importedAt)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	require.NotNil(t, repo.byContent["上海"])
	assert.Equal(t, "shàng hǎi", repo.byContent["上海"].Pinyin)
}

func TestImport_MissingFile(t *testing.T) {
	cfg := DefaultImportConfig(filepath.Join(t.TempDir(), "absent.xlsx"))
	_, err := Import(context.Background(), newMockRepo(), cfg, importedAt)
	require.Error(t, err)
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newMockRepo()

	first, err := Seed(context.Background(), repo, importedAt)
	require.NoError(t, err)
	assert.Equal(t, len(starterSet), first.Created)
	assert.Equal(t, 0, first.Skipped)

	second, err := Seed(context.Background(), repo, importedAt)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, len(starterSet), second.Skipped)
}
