// Package tagger is the built-in English part-of-speech tagger. It combines a
// closed-class lexicon, an irregular form table and suffix rules, so it needs
// no external service and never fails.
package tagger

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Tagger implements domain.Tagger.
type Tagger struct {
	lex *lexicon
}

// New creates a Tagger.
func New() *Tagger {
	return &Tagger{lex: newLexicon()}
}

var _ domain.Tagger = (*Tagger)(nil)

// Tag splits text into tokens and tags each of them. Whitespace and
// punctuation are emitted as their own tokens, so the token texts
// concatenate back to text.
func (t *Tagger) Tag(_ context.Context, text string) ([]domain.TaggedToken, error) {
	spans := tokenize(text)
	tokens := make([]domain.TaggedToken, len(spans))

	for i, sp := range spans {
		switch sp.kind {
		case spanSpace:
			tokens[i] = domain.TaggedToken{Text: sp.text, Tags: domain.NewTagSet(domain.TagWhitespace)}
		case spanPunct:
			tokens[i] = domain.TaggedToken{Text: sp.text, Tags: domain.NewTagSet(domain.TagPunctuation)}
		default:
			lemma, tags := t.lex.analyse(lookupKey(sp.text))
			tags[domain.TagWord] = struct{}{}
			tokens[i] = domain.TaggedToken{Text: sp.text, Tags: tags, Lemma: lemma}
		}
	}

	t.resolveTo(tokens)
	return tokens, nil
}

// resolveTo tags each "to" as an infinitive marker when the next word is a
// verb in its base form, and as a preposition otherwise.
func (t *Tagger) resolveTo(tokens []domain.TaggedToken) {
	for i := range tokens {
		if !strings.EqualFold(tokens[i].Text, "to") {
			continue
		}
		tag := domain.TagPreposition
		if next, ok := nextWord(tokens, i); ok && next.Tags.Has(domain.TagVerb) &&
			next.Lemma == lookupKey(next.Text) {
			tag = domain.TagInfinitive
		}
		tokens[i].Tags = domain.NewTagSet(domain.TagWord, tag)
		tokens[i].Lemma = "to"
	}
}

func nextWord(tokens []domain.TaggedToken, i int) (domain.TaggedToken, bool) {
	for j := i + 1; j < len(tokens); j++ {
		switch {
		case tokens[j].Tags.Has(domain.TagWhitespace):
			continue
		case tokens[j].Tags.Has(domain.TagWord):
			return tokens[j], true
		default:
			return domain.TaggedToken{}, false
		}
	}
	return domain.TaggedToken{}, false
}

func lookupKey(text string) string {
	return domain.NormalizeText(norm.NFKC.String(text))
}

// analyse returns the lemma and tags of a normalised word form.
func (lx *lexicon) analyse(key string) (string, domain.TagSet) {
	if tags, ok := numericTags(key); ok {
		return key, tags
	}
	if base, ok := lx.contractionBase(key); ok {
		return lx.analyse(base)
	}
	if lemma, tags := lx.known(key); len(tags) > 0 {
		return lemma, tags
	}
	return lx.inflected(key)
}

func numericTags(key string) (domain.TagSet, bool) {
	digits := strings.TrimRightFunc(key, unicode.IsLetter)
	if digits == "" || !unicode.IsDigit(rune(digits[0])) {
		return nil, false
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return nil, false
		}
	}
	switch suffix := key[len(digits):]; suffix {
	case "":
		return domain.NewTagSet(domain.TagValue, domain.TagNumericValue, domain.TagCardinal), true
	case "st", "nd", "rd", "th":
		return domain.NewTagSet(domain.TagValue, domain.TagNumericValue, domain.TagOrdinal), true
	}
	return nil, false
}

var cliticSuffixes = []string{"'s", "'m", "'re", "'ve", "'ll", "'d"}

// contractionBase reduces a contracted form to the word carrying its meaning:
// "don't" to "do", "can't" to "can", "she's" to "she".
func (lx *lexicon) contractionBase(key string) (string, bool) {
	if !strings.Contains(key, "'") {
		return "", false
	}
	if base, ok := contractionStems[key]; ok {
		return base, true
	}
	if base, ok := strings.CutSuffix(key, "n't"); ok && base != "" {
		return base, true
	}
	for _, s := range cliticSuffixes {
		if base, ok := strings.CutSuffix(key, s); ok && base != "" {
			return base, true
		}
	}
	return "", false
}

// known collects every listed reading of key.
func (lx *lexicon) known(key string) (string, domain.TagSet) {
	tags := domain.TagSet{}
	lemma := ""
	setLemma := func(l string) {
		if lemma == "" {
			lemma = l
		}
	}

	if e, ok := lx.closed[key]; ok {
		for _, tag := range e.tags {
			tags[tag] = struct{}{}
		}
		setLemma(e.lemma)
	}
	if lx.verbs[key] {
		tags[domain.TagVerb] = struct{}{}
		setLemma(key)
	}
	if lx.nouns[key] {
		tags[domain.TagNoun] = struct{}{}
		setLemma(key)
	}
	if base, ok := irregularVerbs[key]; ok {
		tags[domain.TagVerb] = struct{}{}
		setLemma(base)
	}
	if base, ok := irregularNouns[key]; ok {
		tags[domain.TagNoun] = struct{}{}
		setLemma(base)
	}
	if base, ok := irregularAdjectives[key]; ok {
		tags[domain.TagAdjective] = struct{}{}
		setLemma(base)
	}

	return lemma, tags
}

// inflected applies suffix rules to an open-class word. Unrecognised words
// are read as nouns.
func (lx *lexicon) inflected(key string) (string, domain.TagSet) {
	switch {
	case len(key) > 4 && strings.HasSuffix(key, "ly"):
		return key, domain.NewTagSet(domain.TagAdverb)

	case len(key) > 4 && strings.HasSuffix(key, "ing"):
		return lx.verbStem(key, "ing"), domain.NewTagSet(domain.TagVerb)

	case len(key) > 3 && strings.HasSuffix(key, "ed"):
		return lx.verbStem(key, "ed"), domain.NewTagSet(domain.TagVerb, domain.TagAdjective)

	case len(key) > 3 && strings.HasSuffix(key, "est"):
		if base, ok := lx.adjectiveStem(key, "est"); ok {
			return base, domain.NewTagSet(domain.TagAdjective)
		}

	case len(key) > 3 && strings.HasSuffix(key, "er"):
		if base, ok := lx.adjectiveStem(key, "er"); ok {
			return base, domain.NewTagSet(domain.TagAdjective)
		}

	case len(key) > 2 && strings.HasSuffix(key, "s") && !strings.HasSuffix(key, "ss"):
		base := lx.pluralStem(key)
		if lx.isVerb(base) {
			tags := domain.NewTagSet(domain.TagVerb)
			if lx.nouns[base] {
				tags[domain.TagNoun] = struct{}{}
			}
			return base, tags
		}
		return base, domain.NewTagSet(domain.TagNoun)
	}

	for _, s := range adjectiveSuffixes {
		if len(key) > len(s)+2 && strings.HasSuffix(key, s) {
			return key, domain.NewTagSet(domain.TagAdjective)
		}
	}

	return key, domain.NewTagSet(domain.TagNoun)
}

// verbStem strips suffix and picks the base form, preferring a known verb:
// "making" to "make", "stopped" to "stop", "tried" to "try".
func (lx *lexicon) verbStem(key, suffix string) string {
	stem := strings.TrimSuffix(key, suffix)
	candidates := []string{stem, stem + "e"}
	if undoubled, ok := undouble(stem); ok {
		candidates = append(candidates, undoubled)
	}
	if base, ok := strings.CutSuffix(stem, "i"); ok && suffix == "ed" {
		candidates = append(candidates, base+"y")
	}
	for _, c := range candidates {
		if lx.isVerb(c) {
			return c
		}
	}
	if undoubled, ok := undouble(stem); ok {
		return undoubled
	}
	return stem
}

// adjectiveStem reverses comparative and superlative endings of known
// adjectives: "bigger" to "big", "nicer" to "nice", "happiest" to "happy".
func (lx *lexicon) adjectiveStem(key, suffix string) (string, bool) {
	stem := strings.TrimSuffix(key, suffix)
	candidates := []string{stem, stem + "e"}
	if undoubled, ok := undouble(stem); ok {
		candidates = append(candidates, undoubled)
	}
	if base, ok := strings.CutSuffix(stem, "i"); ok {
		candidates = append(candidates, base+"y")
	}
	for _, c := range candidates {
		if e, ok := lx.closed[c]; ok && containsTag(e.tags, domain.TagAdjective) {
			return c, true
		}
	}
	return "", false
}

// pluralStem strips a plural or third-person "s": "cities" to "city",
// "watches" to "watch", "books" to "book".
func (lx *lexicon) pluralStem(key string) string {
	switch {
	case len(key) > 4 && strings.HasSuffix(key, "ies"):
		return strings.TrimSuffix(key, "ies") + "y"
	case strings.HasSuffix(key, "es"):
		stem := strings.TrimSuffix(key, "es")
		for _, end := range []string{"s", "x", "z", "ch", "sh", "o"} {
			if strings.HasSuffix(stem, end) {
				return stem
			}
		}
	}
	return strings.TrimSuffix(key, "s")
}

func undouble(stem string) (string, bool) {
	n := len(stem)
	if n < 3 || stem[n-1] != stem[n-2] || strings.ContainsRune("aeiouls", rune(stem[n-1])) {
		return "", false
	}
	return stem[:n-1], true
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
