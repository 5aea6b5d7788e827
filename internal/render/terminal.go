package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Terminal renders results for a terminal.
type Terminal struct {
	invalid lipgloss.Style
	summary lipgloss.Style
}

// NewTerminal creates a Terminal with the default styles: invalid words in
// bold red with an underline.
func NewTerminal() *Terminal {
	return &Terminal{
		invalid: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("9")),
		summary: lipgloss.NewStyle().Faint(true),
	}
}

// Text renders the annotated text with invalid words highlighted.
func (t *Terminal) Text(res domain.ValidationResult) string {
	var b strings.Builder
	for _, a := range res.Annotations {
		if a.Valid {
			b.WriteString(a.Text)
			continue
		}
		b.WriteString(t.invalid.Render(a.Text))
	}
	return b.String()
}

// Summary renders the word count line together with the invalid words.
func (t *Terminal) Summary(res domain.ValidationResult) string {
	invalid := res.InvalidWords()
	line := fmt.Sprintf("%d words, %d outside the vocabulary", res.WordCount, len(invalid))
	if len(invalid) > 0 {
		line += ": " + strings.Join(invalid, ", ")
	}
	return t.summary.Render(line)
}
