// Package ngsl parses frequency-ordered word list CSV files (NGSL layout:
// headword first, vocabulary labels second) and grades them into CEFR bands.
// Pure functions: readers in, entries out. No database dependencies.
package ngsl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Bands lists the CEFR bands in ascending order.
var Bands = []string{"A1", "A2", "B1", "B2"}

// Entry is one headword of the list.
type Entry struct {
	Headword string
	Labels   []string
	Rank     int
	CEFR     string
}

// Result is the outcome of Parse.
type Result struct {
	Entries []Entry
	// Skipped counts rows with an empty headword.
	Skipped int
	// Unlabelled counts headwords that had no labels.
	Unlabelled int
}

// Parse reads a CSV with a header row. Each row's first column is the
// headword, the second holds labels separated by ';' or whitespace. Ranks are
// assigned in row order; a repeated headword keeps its first rank and merges
// labels.
func Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	var res Result
	index := make(map[string]int)
	rank := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read row: %w", err)
		}

		if len(record) == 0 {
			continue
		}

		word := domain.NormalizeText(record[0])
		if word == "" {
			res.Skipped++
			continue
		}

		var labels []string
		if len(record) > 1 {
			labels = splitLabels(record[1])
		}

		if i, ok := index[word]; ok {
			res.Entries[i].Labels = mergeLabels(res.Entries[i].Labels, labels)
			continue
		}

		rank++
		index[word] = len(res.Entries)
		res.Entries = append(res.Entries, Entry{
			Headword: word,
			Labels:   labels,
			Rank:     rank,
			CEFR:     cefrForRank(rank),
		})
	}

	for _, e := range res.Entries {
		if len(e.Labels) == 0 {
			res.Unlabelled++
		}
	}

	return res, nil
}

// Cumulative returns one vocabulary per band; each band includes every
// entry of the lower bands. Unlabelled entries are left out.
func Cumulative(entries []Entry) map[string]domain.Vocabulary {
	out := make(map[string]domain.Vocabulary, len(Bands))
	for i, band := range Bands {
		vocab := domain.Vocabulary{}
		for _, e := range entries {
			if len(e.Labels) == 0 {
				continue
			}
			if slices.Index(Bands, e.CEFR) <= i {
				vocab[e.Headword] = e.Labels
			}
		}
		out[band] = vocab
	}
	return out
}

func splitLabels(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '|'
	})
	var labels []string
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(labels, f) {
			labels = append(labels, f)
		}
	}
	return labels
}

func mergeLabels(a, b []string) []string {
	for _, l := range b {
		if !slices.Contains(a, l) {
			a = append(a, l)
		}
	}
	return a
}

// cefrForRank maps a 1-based frequency rank to a CEFR band.
//
//	1-500     → A1
//	501-1200  → A2
//	1201-2000 → B1
//	2001+     → B2
func cefrForRank(rank int) string {
	switch {
	case rank <= 500:
		return "A1"
	case rank <= 1200:
		return "A2"
	case rank <= 2000:
		return "B1"
	default:
		return "B2"
	}
}
