package docbind

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// defaultTitle is the fixed title page header.
const defaultTitle = "Document Compilation"

// titleTimeFormat renders the compilation timestamp on the title page.
const titleTimeFormat = "Monday, January 2, 2006 at 3:04:05 PM"

// metaTimeFormat renders per-file timestamps in metadata blocks.
const metaTimeFormat = time.RFC3339

// renderData is the view model for the document template.
type renderData struct {
	Title       string
	GeneratedAt string
	SourceDir   string
	CSS         template.CSS
	Sections    []sectionView
}

type sectionView struct {
	Index  int
	Name   string
	Meta   metaView
	Blocks []blockView
}

// metaView is the per-document metadata block: filename, detected type,
// original path, and timestamps.
type metaView struct {
	Name      string
	Kind      string
	Path      string
	Modified  string
	Processed string
}

// blockView is a single rendered content block. Kind selects the branch in
// the template; only the fields for that kind are set.
type blockView struct {
	Kind     string // "text", "table", "image", "failure"
	Label    string
	Text     string
	Caption  string
	Header   []string
	Rows     [][]string
	ImageURI template.URL
	ImageAlt string
	Name     string
	Reason   string
}

// documentTemplate lays out the title page and one section per document,
// metadata first, separated by horizontal rules.
var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
</head>
<body>
<div class="title-page">
<h1>{{.Title}}</h1>
<p>Generated on {{.GeneratedAt}}</p>
<p>Source Directory: {{.SourceDir}}</p>
</div>
{{range .Sections}}<hr class="doc-separator">
<section class="doc-section" id="section-{{.Index}}">
<div class="metadata">
<p>File: {{.Meta.Name}}</p>
<p>Type: {{.Meta.Kind}}</p>
<p>Path: {{.Meta.Path}}</p>
<p>Last Modified: {{.Meta.Modified}}</p>
<p>Processed: {{.Meta.Processed}}</p>
</div>
{{range .Blocks}}{{if eq .Kind "text"}}{{if .Label}}<p class="block-label">{{.Label}}</p>
{{end}}<p>{{.Text}}</p>
{{else if eq .Kind "table"}}{{if .Caption}}<p class="table-caption">{{.Caption}}</p>
{{end}}<table>
{{if .Header}}<thead><tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr></thead>
{{end}}<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
{{else if eq .Kind "image"}}<figure>
<img src="{{.ImageURI}}" alt="{{.ImageAlt}}">
<figcaption>{{.ImageAlt}}</figcaption>
</figure>
{{else if eq .Kind "failure"}}<div class="failure">
<p>Processing failed: {{.Name}}</p>
<p>{{.Reason}}</p>
</div>
{{end}}{{end}}</section>
{{end}}</body>
</html>
`))

// renderHTML assembles the full HTML document from extracted documents in
// scan order.
func renderHTML(docs []Document, sourceDir string, generatedAt time.Time) (string, error) {
	data := renderData{
		Title:       defaultTitle,
		GeneratedAt: generatedAt.Format(titleTimeFormat),
		SourceDir:   sourceDir,
		CSS:         template.CSS(buildDocumentCSS()),
		Sections:    make([]sectionView, 0, len(docs)),
	}

	for i, doc := range docs {
		data.Sections = append(data.Sections, buildSectionView(i+1, doc))
	}

	var buf strings.Builder
	if err := documentTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering document template: %w", err)
	}
	return buf.String(), nil
}

func buildSectionView(index int, doc Document) sectionView {
	s := sectionView{
		Index: index,
		Name:  doc.Source.Name,
		Meta: metaView{
			Name:      doc.Source.Name,
			Kind:      strings.ToUpper(strings.TrimPrefix(doc.Source.Ext, ".")),
			Path:      doc.Source.RelPath,
			Modified:  doc.Source.ModTime.Format(metaTimeFormat),
			Processed: doc.ProcessedAt.Format(metaTimeFormat),
		},
	}

	for _, b := range doc.Blocks {
		s.Blocks = append(s.Blocks, buildBlockView(b))
	}
	return s
}

func buildBlockView(b Block) blockView {
	switch block := b.(type) {
	case TextBlock:
		return blockView{Kind: "text", Text: block.Text, Label: block.Label}
	case TableBlock:
		header, rows := padTable(block.Header, block.Rows)
		return blockView{
			Kind:    "table",
			Caption: block.Caption,
			Header:  header,
			Rows:    rows,
		}
	case ImageBlock:
		return blockView{
			Kind:     "image",
			ImageURI: imageDataURI(block),
			ImageAlt: block.Name,
		}
	case FailureBlock:
		return blockView{Kind: "failure", Name: block.Name, Reason: block.Reason}
	}
	return blockView{Kind: "failure", Name: "unknown block", Reason: fmt.Sprintf("unhandled block type %T", b)}
}

// padTable pads the header and every row with empty cells so all rows share
// the width of the widest row.
func padTable(header []string, rows [][]string) ([]string, [][]string) {
	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padRow := func(row []string) []string {
		if len(row) >= width {
			return row
		}
		padded := make([]string, width)
		copy(padded, row)
		return padded
	}

	if header != nil {
		header = padRow(header)
	}
	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = padRow(row)
	}
	return header, padded
}

// imageDataURI embeds image bytes as a data: URI so the rendered page needs
// no external files.
func imageDataURI(img ImageBlock) template.URL {
	mime := "image/" + img.Format
	// #nosec G203 -- base64 of bytes we produced, no untrusted markup
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data))
}
