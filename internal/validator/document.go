package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

// Validate tags text once and checks every token against vocab.
// Blank text short-circuits without calling the tagger. The only error
// returned is a tagger failure, wrapped with domain.ErrTagger.
func Validate(ctx context.Context, text string, tagger domain.Tagger, vocab domain.Vocabulary) (domain.ValidationResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ValidationResult{Annotations: []domain.Annotation{}}, nil
	}

	tokens, err := tagger.Tag(ctx, text)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("%w: %w", domain.ErrTagger, err)
	}

	return ValidateTokens(tokens, vocab), nil
}

// ValidateTokens produces one annotation per token in document order and
// counts the tokens that are words. Surface text is copied verbatim.
func ValidateTokens(tokens []domain.TaggedToken, vocab domain.Vocabulary) domain.ValidationResult {
	result := domain.ValidationResult{
		Annotations: make([]domain.Annotation, 0, len(tokens)),
	}

	for _, tok := range tokens {
		if IsWord(tok) {
			result.WordCount++
		}
		result.Annotations = append(result.Annotations, domain.Annotation{
			Text:  tok.Text,
			Valid: IsValid(tok, vocab),
		})
	}

	return result
}
