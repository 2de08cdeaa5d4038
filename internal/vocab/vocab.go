// Package vocab provides the static word-to-index vocabulary used to
// encode text for the emotion model. A Vocabulary is built once and
// never mutated afterwards.
package vocab

import (
	"bufio"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Reserved indices. Index 0 pads sequences to their fixed length,
// index 1 stands in for any word absent from the vocabulary.
const (
	PadIndex     int32 = 0
	UnknownIndex int32 = 1
)

// Markers used by the text vocabulary format for the reserved indices.
const (
	PadToken     = "<PAD>"
	UnknownToken = "<UNK>"
)

// Vocabulary maps lowercase words to positive int32 indices.
type Vocabulary struct {
	index map[string]int32
}

// New builds a Vocabulary from an explicit word list. Words are
// assigned sequential indices starting at 2, the first index after the
// reserved pad and unknown slots. Duplicate words keep their first
// index.
func New(words []string) *Vocabulary {
	index := make(map[string]int32, len(words))
	next := UnknownIndex + 1
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := index[w]; ok {
			continue
		}
		index[w] = next
		next++
	}
	return &Vocabulary{index: index}
}

// LoadJSON reads a vocab.json file produced by the training pipeline:
// a single JSON object mapping word to integer index.
func LoadJSON(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	var raw map[string]int32
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("vocab: parse %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("vocab: %s contains no entries", path)
	}
	index := make(map[string]int32, len(raw))
	for w, id := range raw {
		if w == PadToken || w == UnknownToken {
			continue
		}
		if id < 0 {
			return nil, fmt.Errorf("vocab: negative index %d for word %q", id, w)
		}
		index[w] = id
	}
	return &Vocabulary{index: index}, nil
}

// LoadText reads a plain-text vocabulary where each line is a token and
// the line number (0-indexed) is its index. The first two lines must be
// the pad and unknown markers so the reserved indices line up.
func LoadText(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	index := make(map[string]int32, 4096)
	var lineno int32
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tok := scanner.Text()
		switch lineno {
		case PadIndex:
			if tok != PadToken {
				return nil, fmt.Errorf("vocab: line 0 of %s must be %s, got %q", path, PadToken, tok)
			}
		case UnknownIndex:
			if tok != UnknownToken {
				return nil, fmt.Errorf("vocab: line 1 of %s must be %s, got %q", path, UnknownToken, tok)
			}
		default:
			if tok != "" {
				index[tok] = lineno
			}
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read %s: %w", path, err)
	}
	if lineno <= UnknownIndex+1 {
		return nil, fmt.Errorf("vocab: %s has no entries beyond the reserved tokens", path)
	}
	return &Vocabulary{index: index}, nil
}

// Lookup returns the index for word, or UnknownIndex if the word is not
// in the vocabulary.
func (v *Vocabulary) Lookup(word string) int32 {
	if id, ok := v.index[word]; ok {
		return id
	}
	return UnknownIndex
}

// Contains reports whether word is in the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.index[word]
	return ok
}

// Size returns the number of words in the vocabulary, excluding the
// reserved pad and unknown slots.
func (v *Vocabulary) Size() int {
	return len(v.index)
}
