// Package textutil normalizes extracted text for PDF rendering.
package textutil

import (
	"strings"
	"unicode"
)

// MaxChunk is the longest paragraph emitted by Chunk. Longer text is split on
// word boundaries so no single rendered paragraph grows unbounded.
const MaxChunk = 2000

// punctuationFolds maps typographic Unicode punctuation to ASCII equivalents.
// Office documents are full of smart quotes and dashes that some PDF viewers
// render with fallback glyphs.
var punctuationFolds = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	" ", " ", // non-breaking space
	"•", "*", // bullet
	"®", "(R)",
	"™", "(TM)",
	"©", "(c)",
)

// Clean folds typographic punctuation, strips non-printable characters, and
// collapses runs of whitespace into single spaces.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = punctuationFolds.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case unicode.IsPrint(r):
			b.WriteRune(r)
			lastSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

// Chunk splits text into pieces of at most MaxChunk characters, breaking on
// word boundaries. Text at or under the limit is returned as a single piece.
func Chunk(text string) []string {
	if len(text) <= MaxChunk {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > MaxChunk {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// Lines splits text into cleaned, non-empty lines.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if cleaned := Clean(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
