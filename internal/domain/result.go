package domain

import "strings"

// Annotation is the validity verdict for one token, with its surface text
// kept verbatim (unescaped).
type Annotation struct {
	Text  string `json:"text"`
	Valid bool   `json:"valid"`
}

// ValidationResult is the outcome of validating one document.
type ValidationResult struct {
	WordCount   int          `json:"wordCount"`
	Annotations []Annotation `json:"annotations"`
}

// InvalidWords returns the surface text of every invalid annotation in order.
func (r ValidationResult) InvalidWords() []string {
	var out []string
	for _, a := range r.Annotations {
		if !a.Valid {
			out = append(out, a.Text)
		}
	}
	return out
}

// Text reassembles the annotated document.
func (r ValidationResult) Text() string {
	var b strings.Builder
	for _, a := range r.Annotations {
		b.WriteString(a.Text)
	}
	return b.String()
}
