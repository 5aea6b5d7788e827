package domain

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
)

// Tagger tag vocabulary. Values are case-sensitive and must match exactly
// what a Tagger emits; the label mapping table refers to them by value.
const (
	TagWord         = "Word"
	TagPunctuation  = "Punctuation"
	TagWhitespace   = "Whitespace"
	TagNoun         = "Noun"
	TagVerb         = "Verb"
	TagAdjective    = "Adjective"
	TagAdverb       = "Adverb"
	TagPreposition  = "Preposition"
	TagConjunction  = "Conjunction"
	TagDeterminer   = "Determiner"
	TagPronoun      = "Pronoun"
	TagCopula       = "Copula"
	TagModal        = "Modal"
	TagInterjection = "Interjection"
	TagAuxiliary    = "Auxiliary"
	TagValue        = "Value"
	TagNumericValue = "NumericValue"
	TagCardinal     = "Cardinal"
	TagOrdinal      = "Ordinal"
	TagInfinitive   = "Infinitive"
)

// TagSet is an unordered set of tagger tags.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from the given tags.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Intersects reports whether s and other share at least one tag.
func (s TagSet) Intersects(other TagSet) bool {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	for t := range small {
		if big.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}

func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}

// TaggedToken is one unit of tagger output.
type TaggedToken struct {
	Text  string `json:"text"`
	Tags  TagSet `json:"tags"`
	Lemma string `json:"lemma"`
}

// EffectiveLemma returns the tagger lemma, falling back to the lower-cased
// surface text when the tagger produced none.
func (t TaggedToken) EffectiveLemma() string {
	if t.Lemma != "" {
		return t.Lemma
	}
	return strings.ToLower(t.Text)
}

// Tagger splits text into tagged tokens. Concatenating the Text of the
// returned tokens must reproduce the input.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]TaggedToken, error)
}
