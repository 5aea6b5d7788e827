package validator

import (
	"slices"
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// IsWord reports whether a token is subject to vocabulary checking: it carries
// the generic word tag and is neither punctuation nor whitespace.
func IsWord(tok domain.TaggedToken) bool {
	return tok.Tags.Has(domain.TagWord) &&
		!tok.Tags.Has(domain.TagPunctuation) &&
		!tok.Tags.Has(domain.TagWhitespace)
}

// IsValid decides whether a single token is allowed by vocab.
//
// Structural tokens are always valid. A word is valid when its lemma is in
// the vocabulary with at least one label whose tagger tags intersect the
// token's tags. "to" is matched only through the infinitive-to and
// preposition labels, according to how the tagger disambiguated it.
func IsValid(tok domain.TaggedToken, vocab domain.Vocabulary) bool {
	if !IsWord(tok) {
		return true
	}

	labels, ok := vocab.Get(tok.EffectiveLemma())
	if !ok {
		return false
	}

	if strings.EqualFold(tok.Text, "to") {
		return isValidTo(tok.Tags, labels)
	}

	for _, label := range labels {
		tags, ok := TagsFor(label)
		if !ok {
			continue
		}
		if tags.Intersects(tok.Tags) {
			return true
		}
	}
	return false
}

func isValidTo(tags domain.TagSet, labels []string) bool {
	if tags.Has(domain.TagInfinitive) && slices.Contains(labels, LabelInfinitiveTo) {
		return true
	}
	if tags.Has(domain.TagPreposition) && slices.Contains(labels, LabelPreposition) {
		return true
	}
	return false
}
