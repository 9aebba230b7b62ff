package docbind

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies the handler for a supported file format.
type Kind string

// Supported document kinds.
const (
	KindPDF   Kind = "pdf"
	KindDocx  Kind = "docx"
	KindXLSX  Kind = "xlsx"
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// kindByExtension maps lowercase file extensions to kinds.
var kindByExtension = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindDocx,
	".xlsx": KindXLSX,
	".txt":  KindText,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".png":  KindImage,
	".gif":  KindImage,
}

// KindForExtension returns the kind handling the given file extension.
// Matching is case-insensitive. Returns ErrUnsupportedFormat for any
// extension outside the supported set; the scanner uses this to skip
// unsupported files silently.
func KindForExtension(ext string) (Kind, error) {
	k, ok := kindByExtension[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return k, nil
}

// InputFile is a discovered file to compile. Immutable once created by Scan.
type InputFile struct {
	Path    string    // absolute or scan-relative path on disk
	RelPath string    // path relative to the scanned directory
	Name    string    // base name, used as the section display name
	Ext     string    // lowercase extension including the dot
	Kind    Kind      // handler selected by extension
	ModTime time.Time // last modification time, shown in the metadata block
}

// Block is one unit of extracted content. The concrete types are TextBlock,
// TableBlock, ImageBlock, and FailureBlock.
type Block interface {
	isBlock()
}

// TextBlock is one paragraph of extracted text.
type TextBlock struct {
	Text  string
	Label string // optional caption, e.g. "Page 3" for PDF pages
}

// TableBlock is one extracted table. Rows may be ragged; the renderer pads
// short rows to the widest row.
type TableBlock struct {
	Caption string // e.g. worksheet name
	Header  []string
	Rows    [][]string
}

// ImageBlock is one extracted image. The normalizer replaces Data, Width,
// Height, and Format in place; no other block is ever mutated after creation.
type ImageBlock struct {
	Name       string
	Data       []byte
	Width      int
	Height     int
	Format     string // as declared by the file header, e.g. "png"
	Normalized bool
}

// FailureBlock marks content that could not be processed. It renders as a
// visible notice in the output instead of aborting the batch.
type FailureBlock struct {
	Name   string // file or image name the failure refers to
	Reason string
}

func (TextBlock) isBlock()    {}
func (TableBlock) isBlock()   {}
func (ImageBlock) isBlock()   {}
func (FailureBlock) isBlock() {}

// Document is the extracted form of one input file.
type Document struct {
	Source      InputFile
	Kind        Kind
	Blocks      []Block
	Failed      bool      // extraction failed; Blocks holds a failure marker
	ProcessedAt time.Time // per-file processing timestamp
}

// failedDocument builds the failure-marker document for a file whose
// extraction failed. The marker references the file by name so the notice in
// the output PDF is self-describing.
func failedDocument(f InputFile, at time.Time, err error) Document {
	return Document{
		Source: f,
		Kind:   f.Kind,
		Blocks: []Block{FailureBlock{
			Name:   f.Name,
			Reason: err.Error(),
		}},
		Failed:      true,
		ProcessedAt: at,
	}
}

// SectionResult reports the outcome of one file's section.
type SectionResult struct {
	File     InputFile
	Kind     Kind
	Blocks   int
	Failed   bool
	Err      error // extraction error when Failed, nil otherwise
	Duration time.Duration
}

// Result holds the compiled output.
type Result struct {
	HTML        []byte // intermediate HTML, kept for debugging
	PDF         []byte // empty when compiled via CompileHTML
	SourceDir   string
	GeneratedAt time.Time
	Sections    []SectionResult
}

// Failures counts sections that carry a failure marker.
func (r *Result) Failures() int {
	n := 0
	for _, s := range r.Sections {
		if s.Failed {
			n++
		}
	}
	return n
}
