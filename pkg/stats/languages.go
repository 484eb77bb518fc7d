package stats

// LanguageTally counts occurrences per language display name while
// remembering first-seen insertion order. Display order is decided later by
// the list renderer's optional sort; the tally itself never reorders.
type LanguageTally struct {
	counts map[string]int
	names  []string
}

// NewLanguageTally creates an empty language tally.
func NewLanguageTally() *LanguageTally {
	return &LanguageTally{
		counts: make(map[string]int),
	}
}

// Add records one occurrence of the given language. Empty names represent
// "no primary language" and are ignored.
func (t *LanguageTally) Add(language string) {
	if language == "" {
		return
	}

	if _, seen := t.counts[language]; !seen {
		t.names = append(t.names, language)
	}

	t.counts[language]++
}

// Names returns language names in first-seen order.
func (t *LanguageTally) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}

// Count returns the occurrence count for a language.
func (t *LanguageTally) Count(language string) int {
	return t.counts[language]
}

// Total returns the number of recorded occurrences across all languages.
func (t *LanguageTally) Total() int {
	total := 0
	for _, count := range t.counts {
		total += count
	}

	return total
}

// Top returns the language with the highest count, or "" when the tally is
// empty. Ties resolve to the earliest inserted language.
func (t *LanguageTally) Top() string {
	top := ""
	best := 0

	for _, name := range t.names {
		if t.counts[name] > best {
			top = name
			best = t.counts[name]
		}
	}

	return top
}

// Len returns the number of distinct languages.
func (t *LanguageTally) Len() int {
	return len(t.names)
}
