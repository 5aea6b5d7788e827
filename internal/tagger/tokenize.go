package tagger

import "unicode"

type spanKind int

const (
	spanWord spanKind = iota
	spanSpace
	spanPunct
)

type span struct {
	text string
	kind spanKind
}

// tokenize splits s into runs of word characters, runs of whitespace and
// single punctuation or symbol characters. Concatenating the spans yields s.
//
// Apostrophes and hyphens join letters inside a word ("don't", "well-known");
// '.' and ',' join digits ("3.5", "1,000").
func tokenize(s string) []span {
	rs := []rune(s)
	out := make([]span, 0, len(rs)/3+1)

	for i := 0; i < len(rs); {
		r := rs[i]
		j := i + 1

		switch {
		case unicode.IsSpace(r):
			for j < len(rs) && unicode.IsSpace(rs[j]) {
				j++
			}
			out = append(out, span{text: string(rs[i:j]), kind: spanSpace})

		case isWordRune(r):
			for j < len(rs) {
				if isWordRune(rs[j]) {
					j++
					continue
				}
				if j+1 < len(rs) && joins(rs[j-1], rs[j], rs[j+1]) {
					j += 2
					continue
				}
				break
			}
			out = append(out, span{text: string(rs[i:j]), kind: spanWord})

		default:
			out = append(out, span{text: string(r), kind: spanPunct})
		}

		i = j
	}

	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func joins(prev, mid, next rune) bool {
	switch mid {
	case '\'', '’', 'ʼ', '-':
		return isWordRune(prev) && isWordRune(next)
	case '.', ',':
		return unicode.IsDigit(prev) && unicode.IsDigit(next)
	}
	return false
}
