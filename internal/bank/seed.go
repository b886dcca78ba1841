package bank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

// seedEntry is one built-in starter question. Pinyin is stored in final
// diacritic form so seeding skips normalization.
type seedEntry struct {
	content  string
	pinyin   string
	category string
}

// starterSet is a small HSK1-level bank so a fresh install has material
// to drill before any import.
var starterSet = []seedEntry{
	{"你好", "nǐ hǎo", "hsk1"},
	{"谢谢", "xiè xie", "hsk1"},
	{"再见", "zài jiàn", "hsk1"},
	{"中国", "zhōng guó", "hsk1"},
	{"老师", "lǎo shī", "hsk1"},
	{"学生", "xué shēng", "hsk1"},
	{"朋友", "péng yǒu", "hsk1"},
	{"妈妈", "mā ma", "hsk1"},
	{"爸爸", "bà ba", "hsk1"},
	{"喜欢", "xǐ huan", "hsk1"},
	{"吃饭", "chī fàn", "hsk1"},
	{"喝水", "hē shuǐ", "hsk1"},
	{"上海", "shàng hǎi", "hsk1"},
	{"北京", "běi jīng", "hsk1"},
	{"知道", "zhī dào", "hsk1"},
	{"时候", "shí hou", "hsk1"},
	{"现在", "xiàn zài", "hsk1"},
	{"什么", "shén me", "hsk1"},
	{"认识", "rèn shi", "hsk2"},
	{"说话", "shuō huà", "hsk2"},
	{"唱歌", "chàng gē", "hsk2"},
	{"绿色", "lǜ sè", "hsk2"},
	{"雪人", "xuě rén", "hsk2"},
	{"女儿", "nǚ ér", "hsk2"},
}

// Seed inserts the built-in starter questions, skipping any whose
// content is already in the bank. Safe to run repeatedly.
func Seed(ctx context.Context, repo Repo, now time.Time) (*ImportResult, error) {
	result := &ImportResult{}
	for _, e := range starterSet {
		result.Processed++

		_, err := repo.GetByContent(ctx, e.content)
		switch {
		case err == nil:
			result.Skipped++
			continue
		case !errors.Is(err, store.ErrNotFound):
			return result, fmt.Errorf("seed %q: %w", e.content, err)
		}

		q := &store.Question{
			Content:   e.content,
			Pinyin:    e.pinyin,
			Category:  e.category,
			CreatedAt: now,
		}
		if err := repo.Create(ctx, q); err != nil {
			return result, fmt.Errorf("seed %q: %w", e.content, err)
		}
		result.Created++
	}
	return result, nil
}
