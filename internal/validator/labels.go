// Package validator decides which tokens of a tagged document are covered
// by the active vocabulary.
package validator

import (
	"maps"
	"slices"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Vocabulary labels with special handling.
const (
	LabelInfinitiveTo = "infinitive-to"
	LabelPreposition  = "preposition"
)

// labelTags maps a vocabulary-file label to the tagger tags it stands for.
// The tag values must match the tagger's own vocabulary exactly; a typo here
// silently makes the label unmatchable.
var labelTags = map[string]domain.TagSet{
	"adverb":          domain.NewTagSet(domain.TagAdverb),
	"verb":            domain.NewTagSet(domain.TagVerb),
	"adjective":       domain.NewTagSet(domain.TagAdjective),
	"noun":            domain.NewTagSet(domain.TagNoun),
	LabelPreposition:  domain.NewTagSet(domain.TagPreposition),
	"conjunction":     domain.NewTagSet(domain.TagConjunction),
	"determiner":      domain.NewTagSet(domain.TagDeterminer),
	"pronoun":         domain.NewTagSet(domain.TagPronoun),
	"be-verb":         domain.NewTagSet(domain.TagCopula),
	"modal-auxiliary": domain.NewTagSet(domain.TagModal),
	"interjection":    domain.NewTagSet(domain.TagInterjection),
	"do-verb":         domain.NewTagSet(domain.TagVerb, domain.TagAuxiliary),
	"number":          domain.NewTagSet(domain.TagValue, domain.TagNumericValue, domain.TagCardinal, domain.TagOrdinal),
	"have-verb":       domain.NewTagSet(domain.TagVerb, domain.TagAuxiliary),
	LabelInfinitiveTo: domain.NewTagSet(domain.TagInfinitive),
}

// TagsFor returns the tagger tags equivalent to a vocabulary label.
// Unknown labels report false and never match any token.
func TagsFor(label string) (domain.TagSet, bool) {
	tags, ok := labelTags[label]
	return tags, ok
}

// Labels returns every known vocabulary label in lexical order.
func Labels() []string {
	return slices.Sorted(maps.Keys(labelTags))
}
