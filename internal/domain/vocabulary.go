package domain

// Vocabulary maps a lower-case lemma to the vocabulary labels it is allowed
// with. A Vocabulary is never mutated after it has been built; replacing the
// active word list means swapping the whole value.
type Vocabulary map[string][]string

// Get returns the allowed labels for lemma.
func (v Vocabulary) Get(lemma string) ([]string, bool) {
	labels, ok := v[lemma]
	return labels, ok
}

// Len returns the number of lemmas.
func (v Vocabulary) Len() int { return len(v) }

// Level is one selectable word list.
type Level struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// WordList is a stored word list as shown in the level selector.
type WordList struct {
	Slug string
	Name string
}
