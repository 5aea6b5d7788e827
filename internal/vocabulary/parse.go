package vocabulary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Parse decodes a vocabulary file: a JSON object whose keys are lemmas and
// whose values are arrays of vocabulary labels, e.g.
//
//	{"go": ["verb"], "study": ["noun", "verb"]}
//
// Keys are normalised with domain.NormalizeText; keys that normalise to the
// same lemma have their labels merged.
func Parse(r io.Reader) (domain.Vocabulary, error) {
	var raw map[string][]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode json: expected an object, got null")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode json: unexpected data after the top-level object")
	}

	vocab := make(domain.Vocabulary, len(raw))
	for key, labels := range raw {
		lemma := domain.NormalizeText(key)
		if lemma == "" {
			continue
		}
		merged := vocab[lemma]
		if merged == nil {
			merged = make([]string, 0, len(labels))
		}
		for _, l := range labels {
			if !slices.Contains(merged, l) {
				merged = append(merged, l)
			}
		}
		vocab[lemma] = merged
	}

	return vocab, nil
}

// Encode writes v in the vocabulary file format with sorted keys.
func Encode(w io.Writer, v domain.Vocabulary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]string(v)); err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}
	return nil
}
