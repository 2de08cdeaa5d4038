// Package emotion implements the text emotion classification pipeline:
// fixed-length tokenization feeds an injected inference backend and the
// resulting class probabilities are formatted into labeled reports.
package emotion

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/samcharles93/emotive/internal/tokenizer"
)

// Inferencer is the boundary over whatever runtime turns a token
// sequence into class probabilities. The pipeline neither knows nor
// controls how the vector is produced.
type Inferencer interface {
	Infer(ctx context.Context, seq []int32) ([]float32, error)
}

// InferencerFunc adapts a function to the Inferencer interface.
type InferencerFunc func(ctx context.Context, seq []int32) ([]float32, error)

func (f InferencerFunc) Infer(ctx context.Context, seq []int32) ([]float32, error) {
	return f(ctx, seq)
}

// Classifier runs the full tokenize → infer → format pipeline. The
// vocabulary and label list are fixed at construction, so one
// Classifier may serve many requests concurrently as long as the
// backend allows it.
type Classifier struct {
	tok     *tokenizer.Tokenizer
	backend Inferencer
	labels  []string
	model   string
}

// NewClassifier wires a tokenizer, an inference backend, the ordered
// label list matching the model's output classes, and the model
// identifier echoed in reports.
func NewClassifier(tok *tokenizer.Tokenizer, backend Inferencer, labels []string, model string) *Classifier {
	return &Classifier{
		tok:     tok,
		backend: backend,
		labels:  append([]string(nil), labels...),
		model:   model,
	}
}

// Labels returns the classifier's label list in model output order.
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Classify runs one request against the classifier's configured label
// list. Blank raw text is rejected up front with ErrEmptyText; text
// that merely normalizes to nothing (digits, punctuation) still goes
// through as a pure-padding sequence, matching the trained pipeline's
// behavior.
func (c *Classifier) Classify(ctx context.Context, text string) (*Report, error) {
	return c.ClassifyWithLabels(ctx, text, nil)
}

// ClassifyWithLabels is Classify with a per-request label list
// override; nil keeps the configured labels. The override must still
// match the model's output class count.
func (c *Classifier) ClassifyWithLabels(ctx context.Context, text string, labels []string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if labels == nil {
		labels = c.labels
	}

	seq := c.tok.Encode(text)

	raw, err := c.backend.Infer(ctx, seq)
	if err != nil {
		return nil, &InferenceError{Err: err}
	}

	pred, err := Format(raw, labels)
	if err != nil {
		return nil, err
	}

	return &Report{
		Success:    true,
		Emotion:    pred.Emotion,
		Confidence: pred.Confidence,
		Scores:     pred.Scores,
		Model:      c.model,
		TextLength: utf8.RuneCountInString(text),
		TokensUsed: tokenizer.TokensUsed(seq),
	}, nil
}
