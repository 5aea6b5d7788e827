package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

func word(text, lemma string, tags ...string) domain.TaggedToken {
	return domain.TaggedToken{
		Text:  text,
		Lemma: lemma,
		Tags:  domain.NewTagSet(append([]string{domain.TagWord}, tags...)...),
	}
}

func TestIsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tok  domain.TaggedToken
		want bool
	}{
		{"plain word", word("home", "home", domain.TagNoun), true},
		{"no word tag", domain.TaggedToken{Text: "x", Tags: domain.NewTagSet(domain.TagNoun)}, false},
		{"punctuation", word(".", "", domain.TagPunctuation), false},
		{"whitespace", domain.TaggedToken{Text: " ", Tags: domain.NewTagSet(domain.TagWhitespace)}, false},
		{"nil tags", domain.TaggedToken{Text: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsWord(tt.tok))
		})
	}
}

func TestIsValid_StructuralTokensAlwaysValid(t *testing.T) {
	t.Parallel()

	tokens := []domain.TaggedToken{
		{Text: ".", Tags: domain.NewTagSet(domain.TagPunctuation)},
		{Text: ",", Tags: domain.NewTagSet(domain.TagWord, domain.TagPunctuation)},
		{Text: "\n", Tags: domain.NewTagSet(domain.TagWhitespace)},
		{Text: "  ", Tags: domain.NewTagSet(domain.TagWord, domain.TagWhitespace)},
		{Text: "???", Tags: domain.NewTagSet()},
	}
	vocabs := []domain.Vocabulary{nil, {}, {"go": {"verb"}}}

	for _, tok := range tokens {
		for _, v := range vocabs {
			assert.True(t, IsValid(tok, v), "token %q with vocabulary %v", tok.Text, v)
		}
	}
}

func TestIsValid_AbsentLemmaInvalid(t *testing.T) {
	t.Parallel()

	vocab := domain.Vocabulary{"go": {"verb"}, "home": {"noun"}}

	for _, tok := range []domain.TaggedToken{
		word("cat", "cat", domain.TagNoun),
		word("ran", "run", domain.TagVerb),
		word("Went", "", domain.TagVerb),
	} {
		assert.False(t, IsValid(tok, vocab), "token %q", tok.Text)
	}
}

func TestIsValid_LabelMatching(t *testing.T) {
	t.Parallel()

	vocab := domain.Vocabulary{
		"study": {"noun", "verb"},
		"fast":  {"adjective"},
		"be":    {"be-verb"},
		"do":    {"do-verb"},
		"have":  {"have-verb"},
		"can":   {"modal-auxiliary"},
		"three": {"number"},
		"odd":   {"misspelled-label"},
		"empty": {},
	}

	tests := []struct {
		name string
		tok  domain.TaggedToken
		want bool
	}{
		{"first label matches", word("study", "study", domain.TagNoun), true},
		{"second label matches", word("studied", "study", domain.TagVerb, "PastTense"), true},
		{"no label matches", word("fast", "fast", domain.TagAdverb), false},
		{"copula", word("is", "be", domain.TagCopula, domain.TagVerb), true},
		{"auxiliary do", word("does", "do", domain.TagAuxiliary), true},
		{"main verb have", word("has", "have", domain.TagVerb), true},
		{"modal", word("can", "can", domain.TagModal), true},
		{"modal as noun", word("can", "can", domain.TagNoun), false},
		{"number cardinal", word("three", "three", domain.TagCardinal, domain.TagValue), true},
		{"unknown label never matches", word("odd", "odd", domain.TagAdjective), false},
		{"lemma with no labels", word("empty", "empty", domain.TagAdjective), false},
		{"lemma fallback to lower-cased surface", word("Study", "", domain.TagNoun), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValid(tt.tok, vocab))
		})
	}
}

func TestIsValid_LabelOrderIrrelevant(t *testing.T) {
	t.Parallel()

	tok := word("walk", "walk", domain.TagVerb)
	a := domain.Vocabulary{"walk": {"noun", "verb"}}
	b := domain.Vocabulary{"walk": {"verb", "noun"}}

	assert.Equal(t, IsValid(tok, a), IsValid(tok, b))
	assert.True(t, IsValid(tok, a))
}

func TestIsValid_To(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		labels []string
		tok    domain.TaggedToken
		want   bool
	}{
		{"infinitive allowed", []string{"infinitive-to"}, word("to", "to", domain.TagInfinitive), true},
		{"preposition tagged, only infinitive allowed", []string{"infinitive-to"}, word("to", "to", domain.TagPreposition), false},
		{"preposition allowed", []string{"preposition"}, word("to", "to", domain.TagPreposition), true},
		{"infinitive tagged, only preposition allowed", []string{"preposition"}, word("to", "to", domain.TagInfinitive), false},
		{"both allowed, capitalised", []string{"preposition", "infinitive-to"}, word("To", "to", domain.TagInfinitive), true},
		{"generic path bypassed", []string{"adverb"}, word("to", "to", domain.TagAdverb), false},
		{"neither tag", []string{"preposition", "infinitive-to"}, word("to", "to", domain.TagNoun), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vocab := domain.Vocabulary{"to": tt.labels}
			assert.Equal(t, tt.want, IsValid(tt.tok, vocab))
		})
	}
}

func TestIsValid_ToAbsentFromVocabulary(t *testing.T) {
	t.Parallel()

	tok := word("to", "to", domain.TagInfinitive)
	assert.False(t, IsValid(tok, domain.Vocabulary{"go": {"verb"}}))
}
