package docbind

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestExtractDocxParagraphs(t *testing.T) {
	t.Parallel()

	body := `<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Split </w:t></w:r><w:r><w:t>across runs.</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t></w:t></w:r></w:p>` // empty paragraph, no block
	path := filepath.Join(t.TempDir(), "doc.docx")
	writeDocxFixture(t, path, body, nil)

	blocks, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extractDocx: %v", err)
	}

	want := []string{"First paragraph.", "Split across runs."}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(blocks), len(want), blocks)
	}
	for i, w := range want {
		tb, ok := blocks[i].(TextBlock)
		if !ok {
			t.Fatalf("blocks[%d] type %T, want TextBlock", i, blocks[i])
		}
		if tb.Text != w {
			t.Errorf("blocks[%d].Text = %q, want %q", i, tb.Text, w)
		}
	}
}

func TestExtractDocxTable(t *testing.T) {
	t.Parallel()

	body := `<w:p><w:r><w:t>Intro</w:t></w:r></w:p>` +
		`<w:tbl>` +
		`<w:tr><w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Qty</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:p><w:r><w:t>Bolt</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>12</w:t></w:r></w:p></w:tc></w:tr>` +
		`</w:tbl>` +
		`<w:p><w:r><w:t>Outro</w:t></w:r></w:p>`
	path := filepath.Join(t.TempDir(), "table.docx")
	writeDocxFixture(t, path, body, nil)

	blocks, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extractDocx: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 (text, table, text): %+v", len(blocks), blocks)
	}

	tbl, ok := blocks[1].(TableBlock)
	if !ok {
		t.Fatalf("blocks[1] type %T, want TableBlock", blocks[1])
	}
	if len(tbl.Header) != 2 || tbl.Header[0] != "Name" || tbl.Header[1] != "Qty" {
		t.Errorf("header = %+v, want [Name Qty] (first row is the header)", tbl.Header)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][0] != "Bolt" || tbl.Rows[0][1] != "12" {
		t.Errorf("rows = %+v, want [[Bolt 12]]", tbl.Rows)
	}

	if tb, ok := blocks[2].(TextBlock); !ok || tb.Text != "Outro" {
		t.Errorf("blocks[2] = %+v, want text block %q after the table", blocks[2], "Outro")
	}
}

func TestExtractDocxMultiParagraphCell(t *testing.T) {
	t.Parallel()

	body := `<w:tbl><w:tr><w:tc>` +
		`<w:p><w:r><w:t>line one</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>line two</w:t></w:r></w:p>` +
		`</w:tc></w:tr></w:tbl>`
	path := filepath.Join(t.TempDir(), "cell.docx")
	writeDocxFixture(t, path, body, nil)

	blocks, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extractDocx: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	tbl := blocks[0].(TableBlock)
	if tbl.Header[0] != "line one line two" {
		t.Errorf("cell = %q, want paragraphs joined with a space", tbl.Header[0])
	}
}

func TestExtractDocxImagesAppendedAfterText(t *testing.T) {
	t.Parallel()

	body := `<w:p><w:r><w:t>Some text</w:t></w:r></w:p>`
	media := map[string][]byte{
		"image2.png": makePNG(t, 3, 2, color.White),
		"image1.png": makePNG(t, 5, 4, color.Black),
		"object.bin": []byte("not an image"), // skipped: unsupported extension
	}
	path := filepath.Join(t.TempDir(), "img.docx")
	writeDocxFixture(t, path, body, media)

	blocks, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extractDocx: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 (text + 2 images): %+v", len(blocks), blocks)
	}

	if _, ok := blocks[0].(TextBlock); !ok {
		t.Errorf("blocks[0] type %T, want TextBlock before images", blocks[0])
	}

	// Media parts come in sorted name order.
	img1 := blocks[1].(ImageBlock)
	if img1.Name != "image1.png" || img1.Width != 5 || img1.Height != 4 {
		t.Errorf("blocks[1] = %s %dx%d, want image1.png 5x4", img1.Name, img1.Width, img1.Height)
	}
	img2 := blocks[2].(ImageBlock)
	if img2.Name != "image2.png" || img2.Width != 3 || img2.Height != 2 {
		t.Errorf("blocks[2] = %s %dx%d, want image2.png 3x2", img2.Name, img2.Width, img2.Height)
	}
}

func TestExtractDocxCorruptMedia(t *testing.T) {
	t.Parallel()

	media := map[string][]byte{"image1.png": []byte("not a png")}
	path := filepath.Join(t.TempDir(), "badimg.docx")
	writeDocxFixture(t, path, `<w:p><w:r><w:t>ok</w:t></w:r></w:p>`, media)

	blocks, err := extractDocx(path)
	if err != nil {
		t.Fatalf("extractDocx: %v (a bad embedded image must not fail the file)", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	fb, ok := blocks[1].(FailureBlock)
	if !ok {
		t.Fatalf("blocks[1] type %T, want FailureBlock", blocks[1])
	}
	if fb.Name != "image1.png" {
		t.Errorf("failure name = %q, want image1.png", fb.Name)
	}
}

func TestExtractDocxCorruptArchive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.docx")
	writeFile(t, path, []byte("PK\x03\x04 definitely truncated"))

	if _, err := extractDocx(path); err == nil {
		t.Error("extractDocx on truncated bytes: error = nil, want error")
	}
}

func TestExtractDocxMissingDocumentPart(t *testing.T) {
	t.Parallel()

	// A valid zip that is not a DOCX.
	path := filepath.Join(t.TempDir(), "empty.docx")
	writeDocxFixtureWithoutDocument(t, path)

	if _, err := extractDocx(path); err == nil {
		t.Error("extractDocx without word/document.xml: error = nil, want error")
	}
}
