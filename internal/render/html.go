// Package render turns a validation result into decorated output: HTML for
// the web client and styled text for the terminal.
package render

import (
	"html"
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// InvalidClass is the CSS class of highlighted out-of-vocabulary words.
const InvalidClass = "invalid"

// HTML renders the annotated text with every invalid span wrapped in
// <mark class="invalid">. Text is escaped; newlines become <br>.
func HTML(res domain.ValidationResult) string {
	var b strings.Builder
	for _, a := range res.Annotations {
		text := strings.ReplaceAll(html.EscapeString(a.Text), "\n", "<br>")
		if a.Valid {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<mark class="` + InvalidClass + `">`)
		b.WriteString(text)
		b.WriteString("</mark>")
	}
	return b.String()
}
