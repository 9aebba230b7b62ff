package docbind

import (
	"fmt"
	"time"
)

// extractorFor returns the handler for a kind. The mapping is total over the
// declared kinds; an unknown kind is a programming error surfaced as
// ErrUnsupportedFormat by the caller.
func extractorFor(kind Kind) func(path string) ([]Block, error) {
	switch kind {
	case KindText:
		return extractText
	case KindPDF:
		return extractPDF
	case KindDocx:
		return extractDocx
	case KindXLSX:
		return extractXLSX
	case KindImage:
		return extractImage
	}
	return nil
}

// extractDocument converts one input file into one Document. Any extraction
// failure is caught here, at the narrowest scope that knows the file: the
// returned document carries a failure marker instead of content, and the
// error is reported to the caller for logging. One bad file never aborts the
// batch.
func extractDocument(f InputFile, at time.Time) (Document, error) {
	handler := extractorFor(f.Kind)
	if handler == nil {
		err := fmt.Errorf("%w: %q", ErrUnsupportedFormat, f.Ext)
		return failedDocument(f, at, err), err
	}

	blocks, err := handler(f.Path)
	if err != nil {
		// Double-wrap so callers can match both ErrExtract and the
		// format-specific cause (e.g. ErrTextDecode) with errors.Is.
		wrapped := fmt.Errorf("%w (%s): %w", ErrExtract, f.Name, err)
		return failedDocument(f, at, wrapped), wrapped
	}

	return Document{
		Source:      f,
		Kind:        f.Kind,
		Blocks:      blocks,
		ProcessedAt: at,
	}, nil
}
