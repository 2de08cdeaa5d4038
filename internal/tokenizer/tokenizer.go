// Package tokenizer converts raw text into the fixed-length integer
// sequences the emotion model consumes. Encoding is deterministic and
// never fails: any string input produces a sequence of exactly the
// configured length.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/samcharles93/emotive/internal/vocab"
)

// DefaultMaxLength matches the sequence length the emotion model was
// trained with.
const DefaultMaxLength = 80

// Tokenizer encodes text against an immutable vocabulary. Safe for
// concurrent use.
type Tokenizer struct {
	vocab     *vocab.Vocabulary
	maxLength int
}

// New returns a Tokenizer over v producing sequences of maxLength
// tokens. A non-positive maxLength falls back to DefaultMaxLength.
func New(v *vocab.Vocabulary, maxLength int) *Tokenizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Tokenizer{vocab: v, maxLength: maxLength}
}

// MaxLength returns the fixed sequence length.
func (t *Tokenizer) MaxLength() int { return t.maxLength }

// Normalize lowercases text, drops every rune outside [a-z] and
// whitespace, collapses whitespace runs to single spaces, and trims.
// Normalizing an already-normalized string returns it unchanged.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Encode maps text to a sequence of exactly MaxLength vocabulary
// indices: normalized words beyond MaxLength are dropped, shorter
// inputs are right-padded with the pad index. Words absent from the
// vocabulary map to the unknown index. Text that normalizes to nothing
// yields a pure-padding sequence; rejecting empty raw input is the
// caller's precondition, not the tokenizer's.
func (t *Tokenizer) Encode(text string) []int32 {
	seq := make([]int32, t.maxLength)
	words := strings.Split(Normalize(text), " ")
	n := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		if n == t.maxLength {
			break
		}
		seq[n] = t.vocab.Lookup(w)
		n++
	}
	return seq
}

// TokensUsed counts the non-padding entries of an encoded sequence.
func TokensUsed(seq []int32) int {
	n := 0
	for _, id := range seq {
		if id != vocab.PadIndex {
			n++
		}
	}
	return n
}
