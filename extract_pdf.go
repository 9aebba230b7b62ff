package docbind

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/alnah/go-docbind/internal/textutil"
)

// extractPDF extracts text per page in page order. Each non-empty page
// becomes one or more text blocks labeled with its page number. Embedded
// images and tables are not extracted; text is the minimum bar for PDF
// sections.
//
// The pdf parser panics on some malformed files, so the whole extraction is
// wrapped in a recover that converts the panic into an ordinary extraction
// error for the per-file isolation path.
func extractPDF(path string) (blocks []Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("parsing %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	total := reader.NumPage()
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// A single unreadable page does not fail the file.
			blocks = append(blocks, FailureBlock{
				Name:   fmt.Sprintf("page %d", pageNum),
				Reason: pageErr.Error(),
			})
			continue
		}

		cleaned := textutil.Clean(text)
		if cleaned == "" {
			continue
		}

		label := fmt.Sprintf("Page %d", pageNum)
		for _, chunk := range textutil.Chunk(cleaned) {
			blocks = append(blocks, TextBlock{Text: chunk, Label: label})
			label = "" // label only the first chunk of a page
		}
	}

	return blocks, nil
}
