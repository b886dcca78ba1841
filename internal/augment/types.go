package augment

// ContextMistake is one recent mistake passed to the generator as context.
// The generator uses these to produce supplements that probe the same
// confusion patterns.
type ContextMistake struct {
	QuestionContent string
	CorrectPinyin   string
	WrongPinyin     string
}

// Input describes what to generate.
type Input struct {
	// Mistakes is the recent-mistake context. At most MaxContextMistakes
	// entries are sent; older entries are dropped first.
	Mistakes []ContextMistake

	// Count is the desired number of supplement items.
	Count int
}

// Supplement is one accepted AI-generated practice item. It has no
// database identity until the learner actually misses it.
type Supplement struct {
	// ID is an ephemeral identifier, unique within the process.
	ID string

	// Content is the hanzi text to read aloud.
	Content string

	// Pinyin is the correct reading with diacritic tone marks.
	Pinyin string
}
