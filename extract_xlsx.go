package docbind

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-docbind/internal/textutil"
)

// extractXLSX emits one table block per worksheet in workbook sheet order.
// The sheet name is recorded as the table caption. The first non-empty row
// is treated as the header; remaining rows form the body. Empty sheets
// produce no block.
func extractXLSX(path string) ([]Block, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	var blocks []Block
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		var kept [][]string
		for _, row := range rows {
			cleaned := make([]string, len(row))
			empty := true
			for i, c := range row {
				cleaned[i] = textutil.Clean(c)
				if cleaned[i] != "" {
					empty = false
				}
			}
			if !empty {
				kept = append(kept, cleaned)
			}
		}
		if len(kept) == 0 {
			continue
		}

		blocks = append(blocks, TableBlock{
			Caption: sheet,
			Header:  kept[0],
			Rows:    kept[1:],
		})
	}

	return blocks, nil
}
