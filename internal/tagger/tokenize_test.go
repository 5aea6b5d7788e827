package tagger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func spanTexts(spans []span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.text
	}
	return out
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"sentence", "I go home.", []string{"I", " ", "go", " ", "home", "."}},
		{"whitespace runs", "a  \n\tb", []string{"a", "  \n\t", "b"}},
		{"contraction", "don't stop", []string{"don't", " ", "stop"}},
		{"curly apostrophe", "don’t", []string{"don’t"}},
		{"hyphenated", "well-known", []string{"well-known"}},
		{"trailing hyphen", "pre- and", []string{"pre", "-", " ", "and"}},
		{"decimal", "3.5 kg", []string{"3.5", " ", "kg"}},
		{"thousands", "1,000", []string{"1,000"}},
		{"sentence end after digit", "it is 5.", []string{"it", " ", "is", " ", "5", "."}},
		{"punctuation run", "wait...", []string{"wait", ".", ".", "."}},
		{"quotes", `"hi"`, []string{`"`, "hi", `"`}},
		{"accents", "café au lait", []string{"café", " ", "au", " ", "lait"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tokenize(tt.input)
			assert.Equal(t, tt.want, spanTexts(got))
			assert.Equal(t, tt.input, strings.Join(spanTexts(got), ""))
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	t.Parallel()

	got := tokenize("Hi, you")
	want := []spanKind{spanWord, spanPunct, spanSpace, spanWord}
	kinds := make([]spanKind, len(got))
	for i, s := range got {
		kinds[i] = s.kind
	}
	assert.Equal(t, want, kinds)
}
