package docbind

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/alnah/go-docbind/internal/textutil"
)

// docx files are OPC zip archives; the document body lives in a fixed part.
const docxDocumentPart = "word/document.xml"

// docxMediaPrefix is where embedded images live inside the archive.
const docxMediaPrefix = "word/media/"

// extractDocx extracts paragraphs and tables from a DOCX file in document
// order, then appends embedded images. Inline images are NOT interleaved at
// their original paragraph position: WordprocessingML references media parts
// through relationship IDs, and resolving those to positions buys nothing for
// a concatenated compilation, so images are appended after the text in media
// part order. Table first rows are treated as headers.
func extractDocx(path string) ([]Block, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the scanned directory
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx archive: %w", err)
	}

	var docPart *zip.File
	for _, zf := range zr.File {
		if zf.Name == docxDocumentPart {
			docPart = zf
			break
		}
	}
	if docPart == nil {
		return nil, fmt.Errorf("docx archive has no %s", docxDocumentPart)
	}

	rc, err := docPart.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", docxDocumentPart, err)
	}
	defer rc.Close()

	blocks, err := parseDocumentXML(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docxDocumentPart, err)
	}

	images, err := extractDocxMedia(zr)
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, images...)

	return blocks, nil
}

// extractDocxMedia returns image blocks for the archive's media parts, in
// sorted part-name order for reproducible output.
func extractDocxMedia(zr *zip.Reader) ([]Block, error) {
	var media []*zip.File
	for _, zf := range zr.File {
		if !strings.HasPrefix(zf.Name, docxMediaPrefix) {
			continue
		}
		if _, err := KindForExtension(path.Ext(zf.Name)); err != nil {
			continue // skip non-image media (e.g. embedded ole objects)
		}
		media = append(media, zf)
	}
	sort.Slice(media, func(i, j int) bool { return media[i].Name < media[j].Name })

	var blocks []Block
	for _, zf := range media {
		rc, err := zf.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", zf.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", zf.Name, err)
		}

		name := path.Base(zf.Name)
		w, h, format, probeErr := probeImage(data)
		if probeErr != nil {
			// An unreadable embedded image degrades to a notice, the
			// surrounding document still extracts.
			blocks = append(blocks, FailureBlock{Name: name, Reason: probeErr.Error()})
			continue
		}
		blocks = append(blocks, ImageBlock{
			Name:   name,
			Data:   data,
			Width:  w,
			Height: h,
			Format: format,
		})
	}
	return blocks, nil
}

// parseDocumentXML walks the WordprocessingML token stream and emits text
// blocks for w:p elements and table blocks for w:tbl elements, in document
// order. Only top-level tables become table blocks; the text of a table
// nested inside a cell folds into that cell.
func parseDocumentXML(r io.Reader) ([]Block, error) {
	dec := xml.NewDecoder(r)

	var blocks []Block
	var para strings.Builder
	var cell strings.Builder
	var rows [][]string
	var currentRow []string
	inPara := false
	inCell := false
	inText := false
	tableDepth := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					rows = nil
				}
			case "tr":
				if tableDepth == 1 {
					currentRow = nil
				}
			case "tc":
				if tableDepth == 1 {
					cell.Reset()
					inCell = true
				}
			case "p":
				if tableDepth == 0 {
					para.Reset()
					inPara = true
				} else if inCell && cell.Len() > 0 {
					cell.WriteByte(' ')
				}
			case "t":
				inText = true
			case "tab":
				writeDocxText(&para, &cell, "\t", inPara, inCell, tableDepth)
			case "br", "cr":
				writeDocxText(&para, &cell, " ", inPara, inCell, tableDepth)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth--
				if tableDepth == 0 {
					if tb, ok := tableFromRows(rows); ok {
						blocks = append(blocks, tb)
					}
				}
			case "tr":
				if tableDepth == 1 && currentRow != nil {
					rows = append(rows, currentRow)
				}
			case "tc":
				if tableDepth == 1 {
					currentRow = append(currentRow, textutil.Clean(cell.String()))
					inCell = false
				}
			case "p":
				if tableDepth == 0 && inPara {
					if text := textutil.Clean(para.String()); text != "" {
						for _, chunk := range textutil.Chunk(text) {
							blocks = append(blocks, TextBlock{Text: chunk})
						}
					}
					inPara = false
				}
			case "t":
				inText = false
			}

		case xml.CharData:
			if inText {
				writeDocxText(&para, &cell, string(t), inPara, inCell, tableDepth)
			}
		}
	}

	return blocks, nil
}

// writeDocxText routes run text into the active cell or paragraph.
func writeDocxText(para, cell *strings.Builder, s string, inPara, inCell bool, tableDepth int) {
	switch {
	case tableDepth > 0 && inCell:
		cell.WriteString(s)
	case inPara:
		para.WriteString(s)
	}
}

// tableFromRows converts raw rows into a TableBlock, treating the first row
// as the header. Returns false for tables with no content.
func tableFromRows(rows [][]string) (TableBlock, bool) {
	var kept [][]string
	for _, row := range rows {
		for _, c := range row {
			if c != "" {
				kept = append(kept, row)
				break
			}
		}
	}
	if len(kept) == 0 {
		return TableBlock{}, false
	}

	return TableBlock{
		Header: kept[0],
		Rows:   kept[1:],
	}, true
}
