package docbind

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/alnah/go-docbind/internal/textutil"
)

// extractText reads a plain-text file as one text block per non-empty line.
// Lines longer than textutil.MaxChunk are split on word boundaries.
func extractText(path string) ([]Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the scanned directory
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrTextDecode, path)
	}

	var blocks []Block
	for _, line := range textutil.Lines(string(data)) {
		for _, chunk := range textutil.Chunk(line) {
			blocks = append(blocks, TextBlock{Text: chunk})
		}
	}

	return blocks, nil
}
