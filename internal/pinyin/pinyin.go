// Package pinyin converts numeric-tone pinyin to diacritic form and
// provides the answer-equivalence comparison used throughout pindrill.
package pinyin

import (
	"strings"
	"unicode"
)

// toneMarks maps a base vowel to its four tone variants (tones 1-4).
var toneMarks = map[rune][4]rune{
	'a': {'ā', 'á', 'ǎ', 'à'},
	'e': {'ē', 'é', 'ě', 'è'},
	'i': {'ī', 'í', 'ǐ', 'ì'},
	'o': {'ō', 'ó', 'ǒ', 'ò'},
	'u': {'ū', 'ú', 'ǔ', 'ù'},
	'ü': {'ǖ', 'ǘ', 'ǚ', 'ǜ'},
}

// plainForms maps every tone-marked vowel back to its unmarked base.
var plainForms = map[rune]rune{}

func init() {
	for base, marked := range toneMarks {
		for _, r := range marked {
			plainForms[r] = base
		}
	}
}

// Render converts numeric-tone pinyin ("ni3 hao3") to diacritic form
// ("nǐ hǎo"). Tokens without a trailing tone digit pass through unchanged.
// Tone 5 (and 0) is the neutral tone and carries no mark. The letter 'v'
// is accepted as shorthand for 'ü'.
func Render(numeric string) string {
	fields := strings.Fields(numeric)
	for i, f := range fields {
		fields[i] = renderSyllable(f)
	}
	return strings.Join(fields, " ")
}

func renderSyllable(s string) string {
	if s == "" {
		return s
	}

	last := rune(s[len(s)-1])
	if last < '0' || last > '5' {
		return strings.ReplaceAll(s, "v", "ü")
	}

	tone := int(last - '0')
	body := strings.ReplaceAll(s[:len(s)-1], "v", "ü")

	if tone == 0 || tone == 5 {
		return body
	}

	runes := []rune(body)
	idx := markIndex(runes)
	if idx < 0 {
		return body
	}

	if marked, ok := toneMarks[runes[idx]]; ok {
		runes[idx] = marked[tone-1]
	}
	return string(runes)
}

// markIndex picks the vowel that carries the tone mark. Standard placement:
// 'a' wins, then 'e', then the 'o' of "ou"; otherwise the last vowel
// (which covers "iu" and "ui" taking the mark on the trailing letter).
func markIndex(runes []rune) int {
	lastVowel := -1
	for i, r := range runes {
		switch r {
		case 'a':
			return i
		case 'e':
			return i
		case 'o':
			if i+1 < len(runes) && runes[i+1] == 'u' {
				return i
			}
			lastVowel = i
		case 'i', 'u', 'ü':
			lastVowel = i
		}
	}
	return lastVowel
}

// Strip removes tone marks, returning bare-letter pinyin ("nǐ" -> "ni").
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if plain, ok := plainForms[r]; ok {
			r = plain
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize prepares a pinyin string for comparison: lowercase, numeric
// tones rendered to diacritics, interior whitespace collapsed to single
// spaces, edges trimmed.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.ContainsFunc(s, unicode.IsDigit) {
		s = Render(s)
	}
	return strings.Join(strings.Fields(s), " ")
}

// Equivalent reports whether two pinyin strings match after normalization.
// Either side may use numeric-tone or diacritic notation.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
