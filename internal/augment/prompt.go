package augment

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Mandarin Chinese tutor creating pinyin reading practice for a learner.

Rules:
- Generate short, common words or two-character phrases in simplified Chinese.
- Each item targets the confusion patterns shown in the learner's recent mistakes: similar initials (zh/z, ch/c, sh/s, n/l), similar finals (an/ang, en/eng, in/ing), or the same tones the learner got wrong.
- Pinyin must use numeric tone notation: the tone digit 1-4 follows each syllable, neutral tone is 5 or no digit. Separate syllables with spaces. Write u-umlaut as v (e.g. lv4 for 绿).
- Every item must be a real, everyday word a beginner would encounter. No proper nouns, no rare characters.
- Do not repeat any word from the recent mistakes list.
- Return exactly the requested number of items.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d practice items.\n", input.Count)

	b.WriteString("\nRecent mistakes by this learner:\n")
	b.WriteString(buildMistakes(input.Mistakes, cfg.MaxContextMistakes))

	return b.String()
}

// buildMistakes formats the mistake context for the prompt. The list
// arrives oldest-due first; only the first N entries are kept.
func buildMistakes(mistakes []ContextMistake, max int) string {
	if len(mistakes) == 0 {
		return "None"
	}

	if max > 0 && len(mistakes) > max {
		mistakes = mistakes[:max]
	}

	var b strings.Builder
	for i, m := range mistakes {
		fmt.Fprintf(&b, "%d. %s (correct: %s, answered: %s)\n",
			i+1, m.QuestionContent, m.CorrectPinyin, m.WrongPinyin)
	}
	return strings.TrimRight(b.String(), "\n")
}
