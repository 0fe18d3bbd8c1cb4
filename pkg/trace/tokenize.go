package trace

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer splits trace records into case-folded fields.
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	lower cases.Caser
}

// NewTokenizer creates a Tokenizer using language-neutral lowercasing.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{lower: cases.Lower(language.Und)}
}

// Tokenize lowercases raw and splits it on Unicode whitespace.
// Leading, trailing and repeated whitespace produce no empty fields.
func (t *Tokenizer) Tokenize(raw string) []string {
	return strings.Fields(t.lower.String(raw))
}
